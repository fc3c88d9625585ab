package quiz

import "math/rand/v2"

// Order is a shuffled, non-repeating sequence of catalog indices with a
// consumption pointer. Every index is handed out exactly once per cycle.
type Order struct {
	perm      []int
	ptr       int
	exhausted bool
	cycle     int
}

// NewOrder creates the first cycle over n indices.
func NewOrder(n int, rng *rand.Rand) *Order {
	o := &Order{}
	o.Reshuffle(n, rng)
	return o
}

// Reshuffle draws a fresh permutation, independent of the previous one,
// and starts a new cycle.
func (o *Order) Reshuffle(n int, rng *rand.Rand) {
	o.perm = permutation(rng, n)
	o.ptr = 0
	o.exhausted = false
	o.cycle++
}

// Next consumes the next index. When the cycle is used up it marks the
// order exhausted and returns false.
func (o *Order) Next() (int, bool) {
	if o.ptr >= len(o.perm) {
		o.exhausted = true
		return 0, false
	}
	idx := o.perm[o.ptr]
	o.ptr++
	return idx, true
}

// Position returns how many indices have been consumed this cycle.
func (o *Order) Position() int { return o.ptr }

// Len returns the permutation length.
func (o *Order) Len() int { return len(o.perm) }

// Exhausted reports whether Next was called past the end.
func (o *Order) Exhausted() bool { return o.exhausted }

// Cycle returns the 1-based cycle number.
func (o *Order) Cycle() int { return o.cycle }

// Indices returns a copy of the current permutation.
func (o *Order) Indices() []int {
	return append([]int(nil), o.perm...)
}
