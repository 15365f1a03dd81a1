package grid

import "testing"

func TestDefaultSequenceValues(t *testing.T) {
	s := DefaultSequence()

	if s.Len() != 5 {
		t.Fatalf("expected 5 elements, got %d", s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		if s.At(i) != i+1 {
			t.Errorf("element %d: expected %d, got %d", i, i+1, s.At(i))
		}
	}
}

func TestSequenceEachVisitsIndexOrder(t *testing.T) {
	var visited []int
	DefaultSequence().Each(func(v int) {
		visited = append(visited, v)
	})

	expected := []int{1, 2, 3, 4, 5}
	if len(visited) != len(expected) {
		t.Fatalf("expected %d visits, got %d", len(expected), len(visited))
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("visit %d: expected %d, got %d", i, expected[i], visited[i])
		}
	}
}

func TestSequenceValuesReturnsCopy(t *testing.T) {
	s := DefaultSequence()
	vals := s.Values()
	vals[0] = 99

	if s.At(0) != 1 {
		t.Errorf("mutating Values() result changed the sequence: got %d", s.At(0))
	}
}

func TestDefaultGridRowMajorValues(t *testing.T) {
	g := DefaultGrid()

	rows, cols := g.Size()
	if rows != 3 || cols != 3 {
		t.Fatalf("expected 3x3, got %dx%d", rows, cols)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			expected := r*3 + c + 1
			if g.At(r, c) != expected {
				t.Errorf("cell (%d,%d): expected %d, got %d", r, c, expected, g.At(r, c))
			}
		}
	}
}

func TestGridEachRowOrder(t *testing.T) {
	g := DefaultGrid()

	var rows [][Cols]int
	g.EachRow(func(row [Cols]int) {
		rows = append(rows, row)
	})

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for r := range rows {
		if rows[r] != g.Row(r) {
			t.Errorf("row %d: expected %v, got %v", r, g.Row(r), rows[r])
		}
	}
}
