package sweep

import "errors"

// ErrInvalidParameter reports a malformed grid or run length: a run length
// below 1, a grid with no rows, or a grid whose rows differ in length. It is
// always returned before any traversal starts.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrNoValidRuns reports that the requested run length exceeds both grid
// dimensions, so not a single run fits. Only the product search returns it:
// a zero product is indistinguishable from "no data", whereas an empty set
// has a perfectly well-defined cardinality of zero.
var ErrNoValidRuns = errors.New("no valid runs")
