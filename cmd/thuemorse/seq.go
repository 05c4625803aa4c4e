package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/justyntemme/thuemorse/pkg/dsp/sequence"
)

func runSeq(args []string, stdout, stderr io.Writer) error {
	var (
		n     int
		start uint64
		table bool
		words bool
	)
	fs := newFlagSet("seq", "[-n 32] [-start 0] [-table] [-words]", stderr)
	fs.IntVar(&n, "n", 32, "number of bits")
	fs.Uint64Var(&start, "start", 0, "index of the first bit")
	fs.BoolVar(&table, "table", false, "list the register and level after each bit")
	fs.BoolVar(&words, "words", false, "also print each full group of eight bits as a byte")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("-n must be positive, got %d", n)
	}

	var bits strings.Builder
	for i := uint64(0); i < uint64(n); i++ {
		bits.WriteByte('0' + sequence.Bit(start+i))
	}
	fmt.Fprintln(stdout, bits.String())
	if words && n >= 8 {
		packed := make([]string, 0, n/8)
		for i := uint64(0); i+8 <= uint64(n); i += 8 {
			packed = append(packed, fmt.Sprintf("0x%02x", sequence.Word(start+i)))
		}
		fmt.Fprintln(stdout, strings.Join(packed, " "))
	}
	if !table {
		return nil
	}

	// the register only holds meaningful history once eight bits are in
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "index\tbit\tregister\tlevel\ttarget")
	var reg uint8
	for i := uint64(0); i < uint64(n); i++ {
		idx := start + i
		bit := sequence.Bit(idx)
		reg = sequence.PushBit(reg, bit)
		v := sequence.Normalize(reg)
		fmt.Fprintf(tw, "%d\t%d\t0x%02x\t%.4f\t%+.4f\n", idx, bit, reg, v, sequence.ToTarget(v))
	}
	return tw.Flush()
}
