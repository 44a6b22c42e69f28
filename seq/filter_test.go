package seq_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exascience/parseq/seq"
)

func TestFilter(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	for _, size := range sizes {
		s := randomInts(size, 1000)
		var want []int
		for _, v := range s {
			if even(v) {
				want = append(want, v)
			}
		}
		got := seq.Filter(seq.Of(s), even)
		if len(want) == 0 {
			assert.Empty(t, got, "size %d", size)
		} else {
			assert.Equal(t, want, got, "size %d", size)
		}
	}
}

func TestRemoveIf(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6}
	got := seq.RemoveIf(seq.Of(s), func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{1, 3, 5}, got)
}

func TestFilterComplementsRemoveIf(t *testing.T) {
	s := randomInts(10000, 100)
	pred := func(v int) bool { return v < 50 }
	kept := seq.Filter(seq.Of(s), pred)
	removed := seq.RemoveIf(seq.Of(s), pred)
	assert.Equal(t, len(s), len(kept)+len(removed))
}

func TestUnique(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	got := seq.Unique(seq.Of([]int{1, 1, 2, 2, 2, 3, 1, 1}), eq)
	assert.Equal(t, []int{1, 2, 3, 1}, got)

	assert.Empty(t, seq.Unique(seq.Of([]int(nil)), eq))
}

func TestUniqueIdempotent(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	for _, size := range sizes {
		s := randomInts(size, 10) // few distinct values, long runs
		once := seq.Unique(seq.Of(s), eq)
		twice := seq.Unique(seq.Of(once), eq)
		assert.Equal(t, once, twice, "size %d", size)
	}
}

func TestRemoveDuplicates(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	for _, size := range sizes {
		s := randomInts(size, 100)

		distinct := make(map[int]bool)
		for _, v := range s {
			distinct[v] = true
		}
		want := make([]int, 0, len(distinct))
		for v := range distinct {
			want = append(want, v)
		}
		sort.Ints(want)

		got := seq.RemoveDuplicates(seq.Of(s), less)
		if len(want) == 0 {
			assert.Empty(t, got, "size %d", size)
		} else {
			assert.Equal(t, want, got, "size %d", size)
		}
	}
}
