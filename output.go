package main

import (
	"fmt"
	"io"
	"math/big"

	"github.com/xtaci/hexprime/prime"
)

// writeResult prints one accepted prime as a hex line.
func writeResult(w io.Writer, p *big.Int) error {
	_, err := fmt.Fprintln(w, prime.FormatHex(p))
	return err
}

// writeReport prints the verdict of every check for one value.
func writeReport(w io.Writer, r prime.Report) error {
	_, err := fmt.Fprintf(w, "%s prime=%t long-bit-run=%t unique-hex-digits=%t no-repeated-nibbles=%t qualifies=%t\n",
		prime.FormatHex(r.Value), r.Prime, r.LongBitRun, r.UniqueHexDigits, r.NoRepeatedNibbles, r.Qualifies())
	return err
}
