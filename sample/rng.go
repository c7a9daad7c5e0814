// Package sample - RNG utilities for the demo input.
//
// Goals:
//   - Determinism: same seed ⇒ identical shuffle across runs and platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package sample

import (
	"math/rand"
	"slices"
)

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using r.
// If r==nil, the default deterministic stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, r *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	if r == nil {
		r = NewRand(0)
	}

	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Shuffled returns a shuffled copy of a; a itself is not modified.
func Shuffled(a []int, seed int64) []int {
	out := slices.Clone(a)
	Shuffle(out, NewRand(seed))

	return out
}
