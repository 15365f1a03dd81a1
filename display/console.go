package display

import (
	"fmt"
	"io"

	"github.com/drake/gridshow/grid"
)

// Console renders the canonical plain form to a writer.
// Write errors are not checked; the stream is assumed good for the
// lifetime of a run.
type Console struct {
	w io.Writer
}

// NewConsole creates a renderer writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Sequence emits every element in index order, each followed by a single
// space, then a newline.
func (c *Console) Sequence(s grid.Sequence) {
	s.Each(func(v int) {
		fmt.Fprintf(c.w, "%d ", v)
	})
	fmt.Fprintln(c.w)
}

// Grid emits each row on its own line, cells in column order, each
// followed by a single space.
func (c *Console) Grid(g grid.Grid) {
	g.EachRow(func(row [grid.Cols]int) {
		for _, v := range row {
			fmt.Fprintf(c.w, "%d ", v)
		}
		fmt.Fprintln(c.w)
	})
}

// Run emits the labeled sequence section followed by the labeled grid
// section. Nothing precedes the first label and nothing follows the
// final row's newline.
func (c *Console) Run(s grid.Sequence, g grid.Grid) {
	fmt.Fprintln(c.w, SequenceLabel)
	c.Sequence(s)
	fmt.Fprintln(c.w, GridLabel)
	c.Grid(g)
}
