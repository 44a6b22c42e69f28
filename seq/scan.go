package seq

import "github.com/exascience/parseq/parallel"

// scanBlockSize is the number of elements folded sequentially per block
// by the scan engine. Inputs at or below this size are scanned
// sequentially. This is a tuning parameter, not a correctness parameter.
const scanBlockSize = 0x800

// Scan computes the exclusive prefix combination of m over s: out[i] is
// the combination of s[0:i], so out[0] is the identity. The second return
// value is the combination of the whole sequence, which for an empty
// sequence is the identity.
//
// The combination order is exactly that of a sequential left-to-right
// fold, so non-commutative monoids are fully supported.
func Scan[T any](s View[T], m Monoid[T]) ([]T, T) {
	out := make([]T, s.Len())
	total := scanTo(s, out, m, false)
	return out, total
}

// ScanInclusive computes the inclusive prefix combination of m over s:
// out[i] is the combination of s[0:i+1]. The second return value is the
// combination of the whole sequence.
func ScanInclusive[T any](s View[T], m Monoid[T]) ([]T, T) {
	out := make([]T, s.Len())
	total := scanTo(s, out, m, true)
	return out, total
}

// ScanInplace overwrites s with its exclusive prefix combination and
// returns the combination of the whole sequence.
func ScanInplace[T any](s []T, m Monoid[T]) T {
	return scanTo(Of(s), s, m, false)
}

// ScanInclusiveInplace overwrites s with its inclusive prefix combination
// and returns the combination of the whole sequence.
func ScanInclusiveInplace[T any](s []T, m Monoid[T]) T {
	return scanTo(Of(s), s, m, true)
}

// scanTo writes the prefix combinations of s to out, which may alias s,
// and returns the total combination. It makes three passes:
//
//  1. a parallel pass that folds each contiguous block sequentially into
//     its block total,
//  2. a recursive exclusive scan of the block totals, which yields every
//     block's offset (the combination of everything to its left),
//  3. a parallel pass that re-folds each block sequentially, seeded with
//     the block's offset, writing every running value into out.
//
// Pass 3 reproduces the combination order of a sequential left-to-right
// scan, which is what makes non-commutative monoids safe.
func scanTo[T any](s View[T], out []T, m Monoid[T], inclusive bool) T {
	n := s.Len()
	if n == 0 {
		return m.Identity
	}
	if n <= scanBlockSize {
		return scanSeq(s, out, m, inclusive, m.Identity, 0, n)
	}
	nblocks := (n + scanBlockSize - 1) / scanBlockSize
	sums := make([]T, nblocks)
	parallel.Range(0, nblocks, 0, func(low, high int) {
		for b := low; b < high; b++ {
			lo, hi := blockBounds(b, n)
			acc := s.At(lo)
			for i := lo + 1; i < hi; i++ {
				acc = m.Combine(acc, s.At(i))
			}
			sums[b] = acc
		}
	})
	total := ScanInplace(sums, m)
	parallel.Range(0, nblocks, 0, func(low, high int) {
		for b := low; b < high; b++ {
			lo, hi := blockBounds(b, n)
			scanSeq(s, out, m, inclusive, sums[b], lo, hi)
		}
	})
	return total
}

func blockBounds(b, n int) (lo, hi int) {
	lo = b * scanBlockSize
	hi = min(lo+scanBlockSize, n)
	return
}

// scanSeq folds s[lo:hi] left to right seeded with acc, writing every
// running value to out, and returns the final accumulator. The element is
// read before out[i] is written so that out may alias s.
func scanSeq[T any](s View[T], out []T, m Monoid[T], inclusive bool, acc T, lo, hi int) T {
	if inclusive {
		for i := lo; i < hi; i++ {
			acc = m.Combine(acc, s.At(i))
			out[i] = acc
		}
	} else {
		for i := lo; i < hi; i++ {
			v := s.At(i)
			out[i] = acc
			acc = m.Combine(acc, v)
		}
	}
	return acc
}
