package sweep

import "fmt"

// FindGreatestProduct returns the maximum product of runLength contiguous
// cell values over all runs in the four base directions. Reversing a run
// cannot change its product, so the four base directions cover everything
// the eight directional sweeps would.
//
// It returns an error wrapping ErrInvalidParameter for a malformed grid or
// run length, and an error wrapping ErrNoValidRuns when runLength exceeds
// both grid dimensions so that no run fits. The product accumulates in an
// int64; overflow beyond that wraps around and is not detected.
func FindGreatestProduct(g Grid, runLength int) (int64, error) {
	if err := Validate(g, runLength); err != nil {
		return 0, err
	}

	best := int64(0)
	found := false
	for run := range Enumerate(g, runLength, BaseDirections()) {
		if p := run.Product(g); !found || p > best {
			best = p
			found = true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: run length %d exceeds both grid dimensions (%dx%d)",
			ErrNoValidRuns, runLength, g.Rows(), g.Cols())
	}
	return best, nil
}
