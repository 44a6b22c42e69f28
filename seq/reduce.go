package seq

import "github.com/exascience/parseq/parallel"

// Reduce computes the combination of m over all elements of s by balanced
// divide-and-conquer, returning the identity when s is empty. The partial
// results are combined in range order, so non-commutative monoids are
// fully supported.
func Reduce[T any](s View[T], m Monoid[T]) T {
	return parallel.RangeReduce(0, s.Len(), 0,
		func(low, high int) T {
			acc := m.Identity
			for i := low; i < high; i++ {
				acc = m.Combine(acc, s.At(i))
			}
			return acc
		},
		m.Combine)
}

// Sum reduces a numeric sequence with the default addition monoid.
func Sum[T Number](s View[T]) T {
	return Reduce(s, Plus[T]())
}

// Count returns the number of elements of s for which pred is true.
func Count[T any](s View[T], pred func(T) bool) int {
	return Reduce(Gen(s.Len(), func(i int) int {
		if pred(s.At(i)) {
			return 1
		}
		return 0
	}), Plus[int]())
}

// sortedSpan summarizes a contiguous range for IsSorted: whether the
// range is internally sorted, and its first and last element for the
// boundary comparison when two spans are combined.
type sortedSpan[T any] struct {
	empty       bool
	sorted      bool
	first, last T
}

// IsSorted reports whether s is in non-decreasing order according to
// less. It is a reduce with a span monoid and runs in parallel.
func IsSorted[T any](s View[T], less func(a, b T) bool) bool {
	m := MakeMonoid(func(a, b sortedSpan[T]) sortedSpan[T] {
		switch {
		case a.empty:
			return b
		case b.empty:
			return a
		}
		return sortedSpan[T]{
			sorted: a.sorted && b.sorted && !less(b.first, a.last),
			first:  a.first,
			last:   b.last,
		}
	}, sortedSpan[T]{empty: true, sorted: true})
	return Reduce(Gen(s.Len(), func(i int) sortedSpan[T] {
		v := s.At(i)
		return sortedSpan[T]{sorted: true, first: v, last: v}
	}), m).sorted
}
