package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/awnumar/memguard"
	cli "github.com/urfave/cli/v2"
)

const (
	exampleGenerate = "hexprime -n 5 --seed demo"
	exampleCheck    = "hexprime check 0x4e39b752c62ad251"
)

// main runs generation by default and exposes the check command.
func main() {
	memguard.CatchInterrupt()
	err := newApp(os.Stdout, os.Stderr).Run(os.Args)
	memguard.Purge()
	if err != nil {
		log.Fatal(err)
	}
}

// newApp builds the CLI writing results to stdout and diagnostics to stderr.
func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "hexprime",
		Usage:     "Generate random primes with distinct, non-repeating hex digits and no long bit runs",
		ArgsUsage: "[count]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: defaultCount, EnvVars: []string{envCount}, Usage: "number of primes to generate"},
			&cli.IntFlag{Name: "max-attempts", Aliases: []string{"m"}, Usage: "consecutive rejected candidates allowed per prime (0 selects the built-in bound)"},
			&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: "candidate source: secure, runtime or seeded (default secure, or seeded when --seed is given)"},
			&cli.StringFlag{Name: "seed", Usage: "seed for reproducible output"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a YAML file with generation settings"},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: defaultLogLevel, Usage: "diagnostics level: debug, info, warn or error"},
		},
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Run the primality and digit pattern checks against given values",
				ArgsUsage: "value [value...]",
				Action:    runCheckCommand,
			},
		},
		Action: runGenerateCommand,
	}
}

// exitWithExample formats an error message with an example and exits.
func exitWithExample(message, example string) error {
	return cli.Exit(fmt.Sprintf("%s\nExample: %s", message, example), 1)
}
