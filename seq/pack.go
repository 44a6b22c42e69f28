package seq

import (
	"fmt"

	"github.com/exascience/parseq/parallel"
)

// Pack returns the order-preserving subsequence of the elements of s
// whose aligned mask entry is true. It panics if the mask length differs
// from the sequence length.
//
// Every true position's destination index is computed up front by an
// exclusive integer scan of the mask, so each output slot is written by
// exactly one parallel branch during the scatter.
func Pack[T any](s View[T], mask View[bool]) []T {
	n := s.Len()
	if mask.Len() != n {
		panic(fmt.Sprintf("mismatched mask length: %v:%v", mask.Len(), n))
	}
	offsets := Tabulate(n, func(i int) int {
		if mask.At(i) {
			return 1
		}
		return 0
	})
	total := ScanInplace(offsets, Plus[int]())
	out := make([]T, total)
	parallel.Range(0, n, 0, func(low, high int) {
		for i := low; i < high; i++ {
			if mask.At(i) {
				out[offsets[i]] = s.At(i)
			}
		}
	})
	return out
}

// PackIndex returns the indices at which mask is true, in increasing
// order.
func PackIndex(mask View[bool]) []int {
	return Pack(Gen(mask.Len(), func(i int) int { return i }), mask)
}
