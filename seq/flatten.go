package seq

import "github.com/exascience/parseq/parallel"

// flattenGrainSize is the inner-sequence length from which Flatten
// copies a single inner sequence with a parallel inner loop.
const flattenGrainSize = 0x2000

// Flatten concatenates the inner sequences of ss in order. Destination
// offsets are computed by an exclusive scan of the inner lengths, and the
// copies proceed in parallel across the inner sequences as well as within
// large ones.
func Flatten[T any](ss [][]T) []T {
	n := len(ss)
	offsets := Tabulate(n, func(i int) int { return len(ss[i]) })
	total := ScanInplace(offsets, Plus[int]())
	out := make([]T, total)
	parallel.Range(0, n, 0, func(low, high int) {
		for i := low; i < high; i++ {
			inner := ss[i]
			off := offsets[i]
			if len(inner) >= flattenGrainSize {
				parallel.Range(0, len(inner), 0, func(lo, hi int) {
					copy(out[off+lo:off+hi], inner[lo:hi])
				})
			} else {
				copy(out[off:], inner)
			}
		}
	})
	return out
}
