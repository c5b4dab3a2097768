package repository

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offerRange(r *reservoir, n int) {
	for i := 1; i <= n; i++ {
		r.offer(lockedTicket{id: fmt.Sprintf("t%d", i), number: i})
	}
}

func TestReservoir_KeepsAllWhenStreamSmallerThanK(t *testing.T) {
	r := newReservoir(10, rand.New(rand.NewSource(1)))

	offerRange(r, 4)

	require.Len(t, r.sample(), 4)
	assert.Equal(t, 4, r.seen)
}

func TestReservoir_SampleSizeIsK(t *testing.T) {
	r := newReservoir(5, rand.New(rand.NewSource(42)))

	offerRange(r, 1000)

	assert.Len(t, r.sample(), 5)
	assert.Equal(t, 1000, r.seen)
}

func TestReservoir_SampleIsSubsetWithoutDuplicates(t *testing.T) {
	r := newReservoir(20, rand.New(rand.NewSource(7)))

	offerRange(r, 500)

	seen := make(map[int]struct{})
	for _, item := range r.sample() {
		assert.GreaterOrEqual(t, item.number, 1)
		assert.LessOrEqual(t, item.number, 500)
		_, dup := seen[item.number]
		assert.False(t, dup, "number %d sampled twice", item.number)
		seen[item.number] = struct{}{}
	}
}

func TestReservoir_EveryItemCanBeSelected(t *testing.T) {
	// With enough runs each element of a small stream should show up at
	// least once in some sample.
	counts := make(map[int]int)
	for seed := int64(0); seed < 200; seed++ {
		r := newReservoir(2, rand.New(rand.NewSource(seed)))
		offerRange(r, 6)
		for _, item := range r.sample() {
			counts[item.number]++
		}
	}

	for n := 1; n <= 6; n++ {
		assert.Greater(t, counts[n], 0, "number %d was never sampled", n)
	}
}

func TestJoinInts_SortsAndFormats(t *testing.T) {
	assert.Equal(t, "1, 3, 7", joinInts([]int{7, 1, 3}))
	assert.Equal(t, "5", joinInts([]int{5}))
	assert.Equal(t, "", joinInts(nil))
}
