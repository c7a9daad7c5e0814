package radix

import (
	"fmt"
	"slices"
)

// Sort — LSD radix sort
//
// Description:
//
//	Sort orders a ascending in place. Elements are never compared with
//	each other: each pass distributes them into buckets by one digit and
//	concatenates the buckets back, least significant digit first.
//
// Algorithm Outline:
//  1. If a is empty, return (there is no maximum to bound the passes).
//  2. max = max(a), exp = 1.
//  3. While max/exp > 0:
//     for v in a (in order): buckets[(v/exp) % base].append(v)
//     a = buckets[0] ++ buckets[1] ++ ... ++ buckets[base-1]
//     clear buckets, exp *= base
//  4. The loop runs once per base-digit of max; it stops before exp
//     would overflow.
//
// Negative values:
//   - RejectNegatives (default) returns ErrNegativeValue, a untouched.
//   - SignSplit sorts the magnitudes -(v+1) of the negatives in their own
//     partition, reverses them and places them before the non-negatives.
//     OnPass only fires for the non-negative partition.
//
// Complexity:
//
//	Time   = O(d·(n+base)), d = Passes(max(a), base)
//	Memory = O(n+base)
//
// Errors:
//   - ErrOptionViolation — invalid option; a untouched.
//   - ErrNegativeValue   — negative element under RejectNegatives; a untouched.
func Sort(a []int, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	if len(a) == 0 {
		return nil
	}

	neg := 0
	for i, v := range a {
		if v >= 0 {
			continue
		}
		if o.Negatives == RejectNegatives {
			return fmt.Errorf("%w: a[%d] = %d", ErrNegativeValue, i, v)
		}
		neg++
	}

	if neg == 0 {
		lsd(a, o.Base, o.OnPass)

		return nil
	}
	signSplit(a, neg, o)

	return nil
}

// Sorted returns an ascending copy of a; a itself is not modified.
// Options and errors are those of Sort.
func Sorted(a []int, opts ...Option) ([]int, error) {
	out := slices.Clone(a)
	if out == nil {
		out = []int{}
	}
	if err := Sort(out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// Digit returns the base-digit of v at place value exp: (v/exp) % base.
// v must be non-negative and exp >= 1; exp == 0 panics with a division by zero.
func Digit(v, exp, base int) int {
	return (v / exp) % base
}

// Passes returns the number of distribute/collect passes Sort performs
// when the largest element is maxValue, i.e. the count of base-digits of
// maxValue. It returns 0 for maxValue <= 0 and for base < 2.
func Passes(maxValue, base int) int {
	if maxValue <= 0 || base < 2 {
		return 0
	}
	n := 0
	for exp := 1; maxValue/exp > 0; exp *= base {
		n++
		if exp > maxValue/base {
			break
		}
	}

	return n
}

// lsd runs the bucketing loop over a slice of non-negative values.
func lsd(a []int, base int, onPass func(pass, exp int, view []int)) {
	if len(a) == 0 {
		return
	}
	maxValue := slices.Max(a)
	b := NewBuckets(base)

	pass := 0
	for exp := 1; maxValue/exp > 0; exp *= base {
		for _, v := range a {
			b.Put(Digit(v, exp, base), v)
		}
		// Collect writes through a's backing array; len(a) is unchanged.
		a = b.Collect(a)
		b.Reset()

		pass++
		onPass(pass, exp, a)

		// next exp would exceed max (or overflow int)
		if exp > maxValue/base {
			break
		}
	}
}

// signSplit sorts a holding neg negative values under the SignSplit policy.
func signSplit(a []int, neg int, o Options) {
	mags := make([]int, 0, neg)
	pos := make([]int, 0, len(a)-neg)
	for _, v := range a {
		if v < 0 {
			// -(v+1) maps [MinInt, -1] onto [MaxInt, 0] without overflow
			mags = append(mags, -(v + 1))
		} else {
			pos = append(pos, v)
		}
	}

	lsd(mags, o.Base, func(int, int, []int) {})
	lsd(pos, o.Base, o.OnPass)

	// largest magnitude is the smallest value
	for i := 0; i < neg; i++ {
		a[i] = -mags[neg-1-i] - 1
	}
	copy(a[neg:], pos)
}
