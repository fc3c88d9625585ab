package quiz

import (
	"math/rand/v2"
	"sort"
)

// shuffle permutes s in place with a Fisher–Yates pass.
func shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// permutation returns a uniformly random ordering of 0..n-1.
func permutation(rng *rand.Rand, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffle(rng, p)
	return p
}

// sampleExcluding draws up to n distinct elements of pool, skipping any
// equal to exclude. The result is in random order.
func sampleExcluding[T comparable](rng *rand.Rand, pool []T, n int, exclude T) []T {
	candidates := make([]T, 0, len(pool))
	for _, v := range pool {
		if v != exclude {
			candidates = append(candidates, v)
		}
	}
	shuffle(rng, candidates)
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}

// sampleInOrder draws n distinct elements of pool without replacement and
// returns them in their original relative order.
func sampleInOrder[T any](rng *rand.Rand, pool []T, n int) []T {
	if n >= len(pool) {
		return append([]T(nil), pool...)
	}
	idx := permutation(rng, len(pool))[:n]
	sort.Ints(idx)

	out := make([]T, n)
	for i, k := range idx {
		out[i] = pool[k]
	}
	return out
}
