// Package radix sorts non-negative integers with the least-significant-digit
// (LSD) radix sort.
//
// 🚀 What is LSD radix sort?
//
//	A non-comparison sort that orders integers digit by digit, starting
//	from the lowest place value. Each pass distributes the elements into
//	one bucket per digit value and concatenates the buckets back in
//	ascending order. Because every pass is stable, the order established
//	by the less significant digits survives the later passes.
//
// ✨ Key features:
//   - in-place Sort and copying Sorted
//   - configurable base (decimal by default)
//   - explicit negative-number policy: reject (default) or sign split
//   - OnPass hook exposing the working slice after every pass
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/radixsort/radix"
//
//	a := []int{1337, 4, 9001, 83, 211, 9, 50, 1024, 7, 123}
//	if err := radix.Sort(a); err != nil {
//		// ErrNegativeValue or ErrOptionViolation
//	}
//	// a == [4 7 9 50 83 123 211 1024 1337 9001]
//
// Performance:
//
//   - Time:   O(d·(n+b)), d = digits of max(a) in base b
//   - Memory: O(n+b) for the buckets
//
// See example_test.go for runnable scenarios.
package radix
