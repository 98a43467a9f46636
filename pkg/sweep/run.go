package sweep

import "strconv"

// Run is a contiguous line of Length cells starting at Start and stepping
// along Dir. It carries no cell values of its own; they are derived from the
// grid on demand.
type Run struct {
	Start  Position
	Dir    Direction
	Length int
}

// End returns the position of the run's final cell.
func (r Run) End() Position {
	return Position{
		Row: r.Start.Row + (r.Length-1)*r.Dir.DR,
		Col: r.Start.Col + (r.Length-1)*r.Dir.DC,
	}
}

// Values returns the ordered cell values visited by the run. The run must be
// in-bounds for g, which Enumerate guarantees for the runs it emits.
func (r Run) Values(g Grid) []int {
	vals := make([]int, r.Length)
	for i := 0; i < r.Length; i++ {
		vals[i] = g[r.Start.Row+i*r.Dir.DR][r.Start.Col+i*r.Dir.DC]
	}
	return vals
}

// Product folds the run's cell values into a single int64 product. The
// accumulator is deliberately wider than the cell type; products that exceed
// int64 wrap around per native integer arithmetic.
func (r Run) Product(g Grid) int64 {
	product := int64(1)
	for i := 0; i < r.Length; i++ {
		product *= int64(g[r.Start.Row+i*r.Dir.DR][r.Start.Col+i*r.Dir.DC])
	}
	return product
}

// CanonicalKey serializes the lexicographically smaller of the run's value
// sequence and its reverse. Two runs share a key iff their value sequences
// are equal directly or after reversal, which makes the key usable as a
// deduplication identity that merges a line with its mirror.
func (r Run) CanonicalKey(g Grid) string {
	vals := r.Values(g)
	if reversedLess(vals) {
		reverse(vals)
	}
	buf := make([]byte, 0, len(vals)*4)
	for i, v := range vals {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}

// reversedLess reports whether the reverse of vals is lexicographically
// smaller than vals itself, compared element-wise.
func reversedLess(vals []int) bool {
	n := len(vals)
	for i := 0; i < n; i++ {
		fwd, rev := vals[i], vals[n-1-i]
		if rev != fwd {
			return rev < fwd
		}
	}
	return false
}

func reverse(vals []int) {
	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}
}
