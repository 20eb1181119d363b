// Package eventbox resolves which light indices an event box targets and when
// each of its sub-events fires.
package eventbox

import "math"

const (
	// TypeDivision treats Peak as a percentage position in the chunk sequence.
	TypeDivision = 1
	// TypeStepAndOffset treats Peak as an absolute chunk index and Param as
	// the chunk step.
	TypeStepAndOffset = 2
)

// Filter is the decoded form of an index filter.
type Filter struct {
	Type    int
	Peak    int
	Param   int
	Reverse bool
	Chunks  int
	Limit   int
	// LimitAffects, RandomType and Seed round-trip but do not influence
	// selection.
	LimitAffects int
	RandomType   int
	Seed         int
}

// Chunks partitions n indices into c contiguous chunks. A chunk count of zero
// or larger than n yields n chunks of one index. The last chunk absorbs the
// remainder.
func Chunks(n, c int) [][]int {
	if n <= 0 {
		return nil
	}
	if c <= 0 || c > n {
		c = n
	}
	size := n / c
	out := make([][]int, c)
	for i := range out {
		start := i * size
		end := start + size
		if i == c-1 {
			end = n
		}
		chunk := make([]int, 0, end-start)
		for j := start; j < end; j++ {
			chunk = append(chunk, j)
		}
		out[i] = chunk
	}
	return out
}

// active returns the chunk numbers the filter lights, in ascending order.
func (f Filter) active(c int) []int {
	if c == 0 {
		return nil
	}
	var out []int
	switch f.Type {
	case TypeStepAndOffset:
		step := f.Param
		if step <= 0 {
			step = 1
		}
		for k := f.Peak; k < c; k += step {
			if k >= 0 {
				out = append(out, k)
			}
		}
	default:
		k := int(math.Ceil(float64(f.Peak)*float64(c)/100)) - 1
		k = min(max(k, 0), c-1)
		span := max(f.Param, 1)
		for i := k; i < k+span && i < c; i++ {
			out = append(out, i)
		}
	}
	return out
}

// Select returns the ordered light indices out of n that the filter targets.
func (f Filter) Select(n int) []int {
	chunks := Chunks(n, f.Chunks)
	var out []int
	for _, k := range f.active(len(chunks)) {
		out = append(out, chunks[k]...)
	}
	if f.Reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out
}
