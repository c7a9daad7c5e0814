package sample_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radixsort/sample"
)

// TestReference returns the sorted demo set as an independent copy.
func TestReference(t *testing.T) {
	ref := sample.Reference()
	assert.Equal(t, []int{4, 7, 9, 50, 83, 123, 211, 1024, 1337, 9001}, ref)
	assert.True(t, slices.IsSorted(ref))

	ref[0] = -1
	assert.Equal(t, 4, sample.Reference()[0], "callers must not share the backing array")
}

// TestShuffled_SeedDeterminism checks that the same seed yields the same
// order and that the result is a permutation of the input.
func TestShuffled_SeedDeterminism(t *testing.T) {
	ref := sample.Reference()

	first := sample.Shuffled(ref, 42)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, sample.Shuffled(ref, 42), "run %d", i)
	}
	assert.Equal(t, sample.Reference(), ref, "input must stay untouched")

	perm := slices.Clone(first)
	slices.Sort(perm)
	assert.Equal(t, ref, perm)
}

// TestShuffled_ZeroSeedUsesDefault maps seed 0 onto DefaultSeed.
func TestShuffled_ZeroSeedUsesDefault(t *testing.T) {
	ref := sample.Reference()
	assert.Equal(t, sample.Shuffled(ref, sample.DefaultSeed), sample.Shuffled(ref, 0))
}

// TestShuffle_NilRand falls back to the default stream.
func TestShuffle_NilRand(t *testing.T) {
	a := sample.Reference()
	sample.Shuffle(a, nil)

	b := sample.Reference()
	sample.Shuffle(b, sample.NewRand(0))
	assert.Equal(t, b, a)
}

// TestShuffle_Trivial leaves empty and one-element slices alone.
func TestShuffle_Trivial(t *testing.T) {
	var empty []int
	sample.Shuffle(empty, nil)
	assert.Nil(t, empty)

	one := []int{5}
	sample.Shuffle(one, sample.NewRand(7))
	assert.Equal(t, []int{5}, one)
}

// TestVerifyAndMark covers both outcomes.
func TestVerifyAndMark(t *testing.T) {
	require.True(t, sample.Verify([]int{1, 2}, []int{1, 2}))
	require.False(t, sample.Verify([]int{2, 1}, []int{1, 2}))
	require.False(t, sample.Verify([]int{1}, []int{1, 2}))

	assert.Equal(t, sample.MarkOK, sample.Mark(true))
	assert.Equal(t, sample.MarkFail, sample.Mark(false))
}
