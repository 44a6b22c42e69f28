/*
Package sort provides parallel sorting kernels: a quicksort, a stable
merge sort, and a stable radix sort over unsigned integer keys. The
kernels sort Go slices in place; parseq/seq exposes them behind its
sequence combinators.
*/
package sort

import "slices"

// sequentialSort is the base case shared by all kernels. It is stable.
func sequentialSort[T any](s []T, less func(a, b T) bool) {
	slices.SortStableFunc(s, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
}
