// Package radixsort is a small playground for least-significant-digit radix
// sort over Go ints.
//
// 🚀 What is inside?
//
//   - radix/ — the sorter: Sort, Sorted, Buckets, Digit, Passes, options
//   - sample/ — demo data: reference set, seeded shuffle, verification
//   - cmd/radixdemo — CLI that shuffles, sorts and checks the demo set
//
// Quick ASCII example (decimal, one line per pass):
//
//	input   170  45  75  90 802  24   2  66
//	ones    170  90 802   2  24  45  75  66
//	tens    802   2  24  45  66 170  75  90
//	hundreds  2  24  45  66  75  90 170 802
//
//	go get github.com/katalvlaran/radixsort/radix
package radixsort
