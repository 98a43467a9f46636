package sweep

import "iter"

// Enumerate yields every run of runLength cells that fits inside the grid,
// for every starting cell and every direction in dirs. Order is row-major by
// starting cell, then by direction, which keeps results deterministic for
// tests. The sequence is restartable and has no side effects.
//
// The grid must already have passed Validate; Enumerate does not re-check it.
// runLength = 1 yields one single-cell run per starting cell per direction,
// with no special-casing: the duplicates are harmless for a product search
// and collapse naturally under canonical-key deduplication.
func Enumerate(g Grid, runLength int, dirs []Direction) iter.Seq[Run] {
	return EnumerateRows(g, runLength, dirs, 0, g.Rows())
}

// EnumerateRows is Enumerate restricted to starting cells whose row lies in
// [fromRow, toRow). Runs may still extend beyond the band; only the starting
// row is constrained. This is the partitioning primitive for parallel scans:
// the bands of a partition of [0, Rows()) together yield exactly the runs of
// Enumerate, each once.
func EnumerateRows(g Grid, runLength int, dirs []Direction, fromRow, toRow int) iter.Seq[Run] {
	rows, cols := g.Rows(), g.Cols()
	if fromRow < 0 {
		fromRow = 0
	}
	if toRow > rows {
		toRow = rows
	}
	return func(yield func(Run) bool) {
		for r := fromRow; r < toRow; r++ {
			for c := 0; c < cols; c++ {
				for _, d := range dirs {
					endR := r + (runLength-1)*d.DR
					endC := c + (runLength-1)*d.DC
					if endR < 0 || endR >= rows || endC < 0 || endC >= cols {
						continue
					}
					run := Run{Start: Position{Row: r, Col: c}, Dir: d, Length: runLength}
					if !yield(run) {
						return
					}
				}
			}
		}
	}
}
