package sort

import (
	"github.com/exascience/parseq/internal"
	"github.com/exascience/parseq/parallel"
)

const (
	radixBits      = 8
	radixBuckets   = 1 << radixBits
	rsortGrainSize = 0x2000
)

// ByKey sorts s into non-decreasing order of the unsigned integer key,
// using a least-significant-digit radix sort over the bytes of the key.
// The relative order of elements with equal keys is preserved.
//
// Each digit pass computes per-batch bucket histograms in parallel,
// exclusive-scans the bucket counts, and scatters in parallel into
// disjoint destination ranges. Digit passes above the largest key's
// significant width are skipped.
func ByKey[T any](s []T, key func(T) uint64) {
	size := len(s)
	if size < rsortGrainSize {
		sequentialSort(s, func(a, b T) bool { return key(a) < key(b) })
		return
	}

	maxKey := parallel.RangeReduce(0, size, 0,
		func(low, high int) uint64 {
			var m uint64
			for i := low; i < high; i++ {
				if k := key(s[i]); k > m {
					m = k
				}
			}
			return m
		},
		func(x, y uint64) uint64 { return max(x, y) })

	nbatches := internal.ComputeNofBatches(0, size, 0)
	batchSize := ((size - 1) / nbatches) + 1
	counts := make([]int, nbatches*radixBuckets)
	temp := make([]T, size)
	from, to := s, temp
	swapped := false

	for shift := 0; shift < 64; shift += radixBits {
		if shift > 0 && (maxKey>>shift) == 0 {
			break
		}
		parallel.Range(0, nbatches, nbatches, func(low, high int) {
			for b := low; b < high; b++ {
				count := counts[b*radixBuckets : (b+1)*radixBuckets]
				for d := range count {
					count[d] = 0
				}
				lo, hi := b*batchSize, min((b+1)*batchSize, size)
				for i := lo; i < hi; i++ {
					count[(key(from[i])>>shift)&(radixBuckets-1)]++
				}
			}
		})
		// Destination offsets, bucket-major then batch-major, so equal
		// digits keep their batch order and the sort stays stable.
		sum := 0
		for d := 0; d < radixBuckets; d++ {
			for b := 0; b < nbatches; b++ {
				c := counts[b*radixBuckets+d]
				counts[b*radixBuckets+d] = sum
				sum += c
			}
		}
		parallel.Range(0, nbatches, nbatches, func(low, high int) {
			for b := low; b < high; b++ {
				count := counts[b*radixBuckets : (b+1)*radixBuckets]
				lo, hi := b*batchSize, min((b+1)*batchSize, size)
				for i := lo; i < hi; i++ {
					d := (key(from[i]) >> shift) & (radixBuckets - 1)
					to[count[d]] = from[i]
					count[d]++
				}
			}
		})
		from, to = to, from
		swapped = !swapped
	}
	if swapped {
		copy(s, from)
	}
}
