package main

import (
	"fmt"
	"math/big"
	"strings"

	cli "github.com/urfave/cli/v2"

	"github.com/xtaci/hexprime/prime"
)

// runCheckCommand handles the "check" CLI command.
func runCheckCommand(c *cli.Context) error {
	if !c.Args().Present() {
		return exitWithExample("check command requires at least one value", exampleCheck)
	}
	values := make([]*big.Int, 0, c.Args().Len())
	for _, arg := range c.Args().Slice() {
		v, err := parseValue(arg)
		if err != nil {
			return exitWithExample(err.Error(), exampleCheck)
		}
		values = append(values, v)
	}
	failed := 0
	for _, v := range values {
		r := prime.Inspect(v)
		if !r.Qualifies() {
			failed++
		}
		if err := writeReport(c.App.Writer, r); err != nil {
			return err
		}
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d values do not qualify", failed, len(values)), 1)
	}
	return nil
}

// parseValue accepts decimal or 0x, 0o and 0b prefixed non-negative integers.
func parseValue(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, fmt.Errorf("invalid value %q", s)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("value %q must not be negative", s)
	}
	return v, nil
}
