package display

import "github.com/drake/gridshow/grid"

// Section labels, emitted before the sequence and grid respectively.
const (
	SequenceLabel = "Array elements:"
	GridLabel     = "Matrix elements:"
)

// Renderer is the contract for the output layer.
// Console produces the canonical plain form; Styled decorates the same
// content for a color-capable terminal.
type Renderer interface {
	Sequence(s grid.Sequence)
	Grid(g grid.Grid)
	Run(s grid.Sequence, g grid.Grid)
}
