package gcode

import (
	"bufio"
	"io"
)

// WriteTo writes the program back out, one raw line per line of input.
// Because every mutation (emit.Splice) operates by replacing a line
// range in Program.Lines, everything outside a splice range is written
// back byte-identical to what Parse read (spec.md §8 invariant 5).
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, l := range p.Lines {
		written, err := bw.WriteString(l.Raw)
		n += int64(written)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}
