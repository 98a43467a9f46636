// Package sweep scans rectangular integer grids for contiguous runs of
// cells along the four base directions (right, down, down-right, down-left).
//
// Why only four directions?
//
// Every straight line through a 2D grid can be traversed in two opposite
// orders. The left, up, up-left and up-right sweeps visit exactly the same
// lines as the four base directions, just reversed. Reversing a run never
// changes its product, and the counting operation folds a run and its mirror
// into one canonical identity anyway, so enumerating the reversed four would
// only double the work (and, for counting, corrupt the result).
//
// The package is pure: no I/O, no goroutines, no mutation of the input grid.
// Callers that want to parallelize a scan can partition starting rows with
// EnumerateRows and merge the per-band results themselves, since both
// aggregations (max, set union) are commutative and associative.
package sweep
