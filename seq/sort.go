package seq

import "github.com/exascience/parseq/sort"

// Sort sorts s in place into non-decreasing order according to less,
// dispatching to the parallel quicksort kernel. The relative order of
// equal elements is not preserved; use StableSort for that.
func Sort[T any](s []T, less func(a, b T) bool) {
	sort.Sort(s, less)
}

// StableSort sorts s in place into non-decreasing order according to
// less, dispatching to the parallel merge sort kernel. The relative order
// of equal elements is preserved.
func StableSort[T any](s []T, less func(a, b T) bool) {
	sort.StableSort(s, less)
}

// SortByKey sorts s in place into non-decreasing order of the unsigned
// integer key, dispatching to the radix sort kernel. The relative order
// of elements with equal keys is preserved.
func SortByKey[T any](s []T, key func(T) uint64) {
	sort.ByKey(s, key)
}
