package seq

// Filter returns the elements of s for which pred is true, in their
// original order.
func Filter[T any](s View[T], pred func(T) bool) []T {
	return Pack(s, Gen(s.Len(), func(i int) bool { return pred(s.At(i)) }))
}

// RemoveIf returns the elements of s for which pred is false, in their
// original order.
func RemoveIf[T any](s View[T], pred func(T) bool) []T {
	return Pack(s, Gen(s.Len(), func(i int) bool { return !pred(s.At(i)) }))
}

// Unique removes adjacent duplicates: it returns the elements of s whose
// immediate predecessor is not equal to them according to eq. For full
// deduplication s must already be sorted by the equivalence; see
// RemoveDuplicates.
func Unique[T any](s View[T], eq func(a, b T) bool) []T {
	return Pack(s, Gen(s.Len(), func(i int) bool {
		return i == 0 || !eq(s.At(i), s.At(i-1))
	}))
}

// RemoveDuplicates returns the distinct elements of s in non-decreasing
// order according to less, where two elements are considered equal when
// neither is less than the other. s itself is not modified.
func RemoveDuplicates[T any](s View[T], less func(a, b T) bool) []T {
	sorted := Tabulate(s.Len(), s.At)
	StableSort(sorted, less)
	return Unique(Of(sorted), func(a, b T) bool {
		return !less(a, b) && !less(b, a)
	})
}
