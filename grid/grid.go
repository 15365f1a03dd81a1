package grid

// Fixed dimensions for the demo data.
const (
	SequenceLen = 5
	Rows        = 3
	Cols        = 3
)

// Sequence is a fixed-length ordered list of integers.
// It is a plain value type: copies are independent and nothing mutates
// one after construction.
type Sequence [SequenceLen]int

// DefaultSequence returns the sequence 1..5.
func DefaultSequence() Sequence {
	return Sequence{1, 2, 3, 4, 5}
}

// Len returns the number of elements.
func (s Sequence) Len() int {
	return SequenceLen
}

// At returns the element at index i.
func (s Sequence) At(i int) int {
	return s[i]
}

// Values returns a copy of the elements in index order.
func (s Sequence) Values() []int {
	out := make([]int, 0, SequenceLen)
	return append(out, s[:]...)
}

// Each visits every element in index order.
func (s Sequence) Each(fn func(v int)) {
	for _, v := range s {
		fn(v)
	}
}

// Grid is a fixed-size two-dimensional array of integers, stored and
// visited in row-major order.
type Grid [Rows][Cols]int

// DefaultGrid returns the grid with row-major values 1..9.
func DefaultGrid() Grid {
	return Grid{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
}

// Size returns the fixed (rows, cols) dimensions.
func (g Grid) Size() (rows, cols int) {
	return Rows, Cols
}

// At returns the value at row r, column c.
func (g Grid) At(r, c int) int {
	return g[r][c]
}

// Row returns row r as a fixed-size array.
func (g Grid) Row(r int) [Cols]int {
	return g[r]
}

// EachRow visits every row in order, each row's cells in column order.
func (g Grid) EachRow(fn func(row [Cols]int)) {
	for _, row := range g {
		fn(row)
	}
}
