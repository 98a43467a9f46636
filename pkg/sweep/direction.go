package sweep

// Direction is a unit step (row delta, column delta) along one of the grid's
// axes of traversal.
type Direction struct {
	DR int
	DC int
}

// The four base directions. Their reversals (left, up, up-left, up-right)
// traverse the same lines in the opposite order and are intentionally not
// enumerated; see the package documentation.
var (
	Right     = Direction{DR: 0, DC: 1}
	Down      = Direction{DR: 1, DC: 0}
	DownRight = Direction{DR: 1, DC: 1}
	DownLeft  = Direction{DR: 1, DC: -1}
)

// Reversed returns the opposite direction vector.
func (d Direction) Reversed() Direction {
	return Direction{DR: -d.DR, DC: -d.DC}
}

// BaseDirections returns a fresh slice of the four base directions, in the
// fixed order right, down, down-right, down-left. Callers may modify the
// returned slice freely.
func BaseDirections() []Direction {
	return []Direction{Right, Down, DownRight, DownLeft}
}
