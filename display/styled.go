package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/drake/gridshow/display/style"
	"github.com/drake/gridshow/grid"
)

// Styled renders the same content as Console decorated with lipgloss
// styles. Cells are right-aligned to the widest value so grid columns
// line up. Stripping the ANSI codes from its output yields the same
// labels, values, and ordering as the plain form.
type Styled struct {
	w      io.Writer
	styles style.Styles
}

// NewStyled creates a styled renderer writing to w with default styles.
func NewStyled(w io.Writer) *Styled {
	return &Styled{w: w, styles: style.DefaultStyles()}
}

// Sequence emits the elements on one line, space-separated.
func (r *Styled) Sequence(s grid.Sequence) {
	width := widest(s.Values())
	cells := make([]string, 0, s.Len())
	s.Each(func(v int) {
		cells = append(cells, r.cell(v, width))
	})
	fmt.Fprintln(r.w, strings.Join(cells, " "))
}

// Grid emits one line per row, cells aligned across the whole grid.
func (r *Styled) Grid(g grid.Grid) {
	width := 0
	g.EachRow(func(row [grid.Cols]int) {
		if w := widest(row[:]); w > width {
			width = w
		}
	})

	g.EachRow(func(row [grid.Cols]int) {
		cells := make([]string, 0, grid.Cols)
		for _, v := range row {
			cells = append(cells, r.cell(v, width))
		}
		fmt.Fprintln(r.w, strings.Join(cells, " "))
	})
}

// Run emits the labeled sequence section followed by the labeled grid
// section, mirroring Console.Run.
func (r *Styled) Run(s grid.Sequence, g grid.Grid) {
	fmt.Fprintln(r.w, r.styles.Label.Render(SequenceLabel))
	r.Sequence(s)
	fmt.Fprintln(r.w, r.styles.Label.Render(GridLabel))
	r.Grid(g)
}

// cell formats v right-aligned to width terminal columns.
func (r *Styled) cell(v int, width int) string {
	text := strconv.Itoa(v)
	if pad := width - runewidth.StringWidth(text); pad > 0 {
		text = strings.Repeat(" ", pad) + text
	}
	return r.styles.Cell.Render(text)
}

// widest returns the terminal-column width of the widest value.
func widest(vals []int) int {
	max := 0
	for _, v := range vals {
		if w := runewidth.StringWidth(strconv.Itoa(v)); w > max {
			max = w
		}
	}
	return max
}
