package sweep

import "fmt"

// Grid is a rectangular matrix of integers. It is read-only input: no
// function in this package mutates it.
type Grid [][]int

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns in the grid, 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Position identifies a single cell by row and column.
type Position struct {
	Row int
	Col int
}

// InBounds reports whether the position lies inside the grid.
func (p Position) InBounds(g Grid) bool {
	return p.Row >= 0 && p.Row < g.Rows() && p.Col >= 0 && p.Col < g.Cols()
}

// Validate checks the preconditions shared by every scan: runLength >= 1,
// at least one row, and rectangularity (all rows the same length as the
// first). It returns an error wrapping ErrInvalidParameter, performing no
// traversal and no partial work.
func Validate(g Grid, runLength int) error {
	if runLength < 1 {
		return fmt.Errorf("%w: run length must be >= 1, got %d", ErrInvalidParameter, runLength)
	}
	if len(g) == 0 {
		return fmt.Errorf("%w: grid has no rows", ErrInvalidParameter)
	}
	cols := len(g[0])
	for i, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: grid is not rectangular: row 0 has %d columns, row %d has %d", ErrInvalidParameter, cols, i, len(row))
		}
	}
	if cols == 0 {
		return fmt.Errorf("%w: grid has no columns", ErrInvalidParameter)
	}
	return nil
}
