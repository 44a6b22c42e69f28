package seq

import (
	"fmt"

	"github.com/exascience/parseq/parallel"
)

// tokensSmallCutoff is the input size above which Tokens switches from
// boundary packing to a single run-counting scan.
const tokensSmallCutoff = 2000

// SplitAt partitions s into contiguous subsequences, splitting after
// every position i where flags[i] is true, with an implied split at the
// end. The result has count(true)+1 subsequences whose concatenation is
// s; a true flag at the last position yields an empty final subsequence.
// SplitAt panics if the flags length differs from the sequence length.
func SplitAt[T any](s View[T], flags View[bool]) [][]T {
	n := s.Len()
	if flags.Len() != n {
		panic(fmt.Sprintf("mismatched flags length: %v:%v", flags.Len(), n))
	}
	locations := PackIndex(flags)
	k := len(locations)
	return Tabulate(k+1, func(i int) []T {
		start := 0
		if i > 0 {
			start = locations[i-1] + 1
		}
		end := n
		if i < k {
			end = locations[i] + 1
		}
		return subseq(s, start, end)
	})
}

// Tokens returns the maximal runs of elements for which isSpace is
// false, in left-to-right order. Runs are bounded by space elements and
// by the ends of the sequence; there are no empty tokens.
func Tokens[T any](s View[T], isSpace func(T) bool) [][]T {
	n := s.Len()
	if n == 0 {
		return nil
	}
	if n < tokensSmallCutoff {
		return smallTokens(s, isSpace)
	}
	return bigTokens(s, isSpace)
}

// smallTokens packs the run boundaries directly: position i is a
// boundary when the space/non-space state changes there. Boundaries come
// in start/end pairs in left-to-right order.
func smallTokens[T any](s View[T], isSpace func(T) bool) [][]T {
	n := s.Len()
	boundaries := PackIndex(Gen(n+1, func(i int) bool {
		switch i {
		case 0:
			return !isSpace(s.At(0))
		case n:
			return !isSpace(s.At(n - 1))
		}
		return isSpace(s.At(i-1)) != isSpace(s.At(i))
	}))
	return Tabulate(len(boundaries)/2, func(i int) []T {
		return subseq(s, boundaries[2*i], boundaries[2*i+1])
	})
}

// runStarts is the scan state for bigTokens: the number of run starts
// seen so far and the index of the most recent one. Its combine is
// associative but not commutative.
type runStarts struct {
	count int
	last  int
}

// bigTokens counts run starts with a single exclusive scan, so that
// every run end can locate both its start and its output slot without a
// sequential dependency.
func bigTokens[T any](s View[T], isSpace func(T) bool) [][]T {
	n := s.Len()
	isStart := func(i int) bool {
		return i != n && !isSpace(s.At(i)) && (i == 0 || isSpace(s.At(i-1)))
	}
	isEnd := func(i int) bool {
		return i != 0 && !isSpace(s.At(i-1)) && (i == n || isSpace(s.At(i)))
	}
	m := MakeMonoid(func(a, b runStarts) runStarts {
		if b.count == 0 {
			return a
		}
		return runStarts{a.count + b.count, b.last}
	}, runStarts{})
	offsets, sum := Scan(Gen(n+1, func(i int) runStarts {
		if isStart(i) {
			return runStarts{1, i}
		}
		return runStarts{}
	}), m)
	out := make([][]T, sum.count)
	parallel.Range(0, n+1, 0, func(low, high int) {
		for i := low; i < high; i++ {
			if isEnd(i) {
				// offsets[i] covers [0,i), so it holds the start of the
				// run ending at i and its 1-based run number.
				out[offsets[i].count-1] = subseq(s, offsets[i].last, i)
			}
		}
	})
	return out
}
