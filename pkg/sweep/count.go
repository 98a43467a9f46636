package sweep

// CountUniqueRuns returns the number of distinct runs of runLength cells in
// the four base directions, where a run and its reverse count as one. Each
// run is reduced to its canonical identity (the lexicographically smaller of
// its value sequence and the reverse) and the identities are counted as a
// set, so two geometrically distinct runs with coincidentally identical
// values also merge: counting is by value sequence, not by position.
//
// It returns an error wrapping ErrInvalidParameter for a malformed grid or
// run length. When runLength exceeds both grid dimensions the count is 0
// with no error.
func CountUniqueRuns(g Grid, runLength int) (int, error) {
	if err := Validate(g, runLength); err != nil {
		return 0, err
	}

	seen := make(map[string]struct{})
	for run := range Enumerate(g, runLength, BaseDirections()) {
		seen[run.CanonicalKey(g)] = struct{}{}
	}
	return len(seen), nil
}
