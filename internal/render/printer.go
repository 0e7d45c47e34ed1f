// Package render turns wildfire frames into text, terminal cells or pixels.
package render

import (
	"bufio"
	"io"

	"wildfire/internal/sims/wildfire"
)

// Printer dumps every cycle as a scrolling block of text: the grid, one row
// per line, followed by the status line.
type Printer struct {
	w io.Writer
}

// NewPrinter writes frames to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Report prints one cycle.
func (p *Printer) Report(f wildfire.Frame) error {
	bw := bufio.NewWriter(p.w)
	for r := 0; r < f.Grid.N; r++ {
		bw.WriteString(f.Grid.Row(r))
		bw.WriteByte('\n')
	}
	bw.WriteString(wildfire.FormatStatus(f.Config, f.Counters))
	bw.WriteByte('\n')
	return bw.Flush()
}

// Finish prints the closing line when the fires went out.
func (p *Printer) Finish(o wildfire.Outcome) error {
	if !o.FiresOut() {
		return nil
	}
	_, err := io.WriteString(p.w, wildfire.FormatFiresOut(o.Counters)+"\n")
	return err
}
