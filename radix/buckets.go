package radix

// Buckets holds one FIFO sequence per digit value of a base.
// The zero value is unusable; create one with NewBuckets.
//
// A Buckets value is reused across passes: Collect drains the buckets in
// ascending digit order and Reset empties them while keeping capacity.
type Buckets struct {
	lists [][]int
	n     int
}

// NewBuckets returns base empty buckets.
// base < 2 is a programming error and panics, like make with a negative length.
func NewBuckets(base int) *Buckets {
	if base < 2 {
		panic("radix: NewBuckets base must be >= 2")
	}

	return &Buckets{lists: make([][]int, base)}
}

// Put appends v to the bucket for digit.
// Elements in a bucket keep the order in which they were put.
func (b *Buckets) Put(digit, v int) {
	b.lists[digit] = append(b.lists[digit], v)
	b.n++
}

// Len reports the number of values held across all buckets.
func (b *Buckets) Len() int { return b.n }

// Base reports the number of buckets.
func (b *Buckets) Base() int { return len(b.lists) }

// Collect appends the contents of buckets 0..Base()-1, each in FIFO order,
// to dst[:0] and returns the result. The buckets themselves are not cleared.
//
// Complexity: O(Len()+Base()).
func (b *Buckets) Collect(dst []int) []int {
	dst = dst[:0]
	for _, l := range b.lists {
		dst = append(dst, l...)
	}

	return dst
}

// Reset empties every bucket, keeping the allocated capacity for the next pass.
func (b *Buckets) Reset() {
	for i := range b.lists {
		b.lists[i] = b.lists[i][:0]
	}
	b.n = 0
}
