package sample

import "slices"

// reference is the demo set in ascending order.
var reference = []int{4, 7, 9, 50, 83, 123, 211, 1024, 1337, 9001}

// Markers printed after a sort run.
const (
	MarkOK   = "✅"
	MarkFail = "❌"
)

// Reference returns a fresh copy of the demo set, already sorted ascending.
func Reference() []int {
	return slices.Clone(reference)
}

// Verify reports whether got equals want element by element.
func Verify(got, want []int) bool {
	return slices.Equal(got, want)
}

// Mark returns MarkOK for ok and MarkFail otherwise.
func Mark(ok bool) string {
	if ok {
		return MarkOK
	}

	return MarkFail
}
