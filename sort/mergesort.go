package sort

import (
	"sync"

	"github.com/exascience/parseq/parallel"
)

const msortGrainSize = 0x3000

func binarySearchEq[T any](s []T, less func(a, b T) bool, x T, p, r int) int {
	low, high := p, r+1
	if low > high {
		return low
	}
	for low < high {
		mid := (low + high) / 2
		if !less(s[mid], x) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return high
}

func binarySearchNeq[T any](s []T, less func(a, b T) bool, x T, p, r int) int {
	low, high := p, r+1
	if low > high {
		return low
	}
	for low < high {
		mid := (low + high) / 2
		if less(x, s[mid]) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return high
}

// sMerge merges the sorted ranges from[p1:r1+1] and from[p2:r2+1] into
// to, starting at p3, taking runs from either side in bulk.
func sMerge[T any](from, to []T, less func(a, b T) bool, p1, r1, p2, r2, p3 int) {
	for {
		if p2 > r2 {
			copy(to[p3:], from[p1:r1+1])
			return
		}

		q1 := p1
		for (p1 <= r1) && !less(from[p2], from[p1]) {
			p1++
		}
		n1 := p1 - q1
		copy(to[p3:p3+n1], from[q1:])
		p3 += n1

		if p1 > r1 {
			copy(to[p3:], from[p2:r2+1])
			return
		}

		q2 := p2
		for (p2 <= r2) && less(from[p2], from[p1]) {
			p2++
		}
		n2 := p2 - q2
		copy(to[p3:p3+n2], from[q2:])
		p3 += n2
	}
}

// pMerge splits the larger side at its midpoint, binary-searches the
// matching split point in the smaller side, and merges the two halves in
// parallel.
func pMerge[T any](from, to []T, less func(a, b T) bool, p1, r1, p2, r2, p3 int) {
	n1 := r1 - p1 + 1
	n2 := r2 - p2 + 1
	if (n1 + n2) < msortGrainSize {
		sMerge(from, to, less, p1, r1, p2, r2, p3)
		return
	}
	if n1 > n2 {
		if n1 == 0 {
			return
		}
		q1 := (p1 + r1) / 2
		q2 := binarySearchEq(from, less, from[q1], p2, r2)
		q3 := p3 + (q1 - p1) + (q2 - p2)
		to[q3] = from[q1]
		parallel.Do(
			func() { pMerge(from, to, less, p1, q1-1, p2, q2-1, p3) },
			func() { pMerge(from, to, less, q1+1, r1, q2, r2, q3+1) },
		)
	} else {
		if n2 == 0 {
			return
		}
		q2 := (p2 + r2) / 2
		q1 := binarySearchNeq(from, less, from[q2], p1, r1)
		q3 := p3 + (q1 - p1) + (q2 - p2)
		to[q3] = from[q2]
		parallel.Do(
			func() { pMerge(from, to, less, p1, q1-1, p2, q2-1, p3) },
			func() { pMerge(from, to, less, q1, r1, q2+1, r2, q3+1) },
		)
	}
}

// StableSort sorts s according to less using a parallel implementation
// of merge sort, also known as cilksort. The relative order of equal
// elements is preserved.
//
// StableSort is good for large core counts and large collection sizes,
// but needs a shallow copy of s as additional temporary memory.
func StableSort[T any](s []T, less func(a, b T) bool) {
	// See https://en.wikipedia.org/wiki/Introduction_to_Algorithms and
	// https://www.clear.rice.edu/comp422/lecture-notes/ for details on the algorithm.
	size := len(s)
	if size < msortGrainSize {
		sequentialSort(s, less)
		return
	}
	var temp []T
	var tw sync.WaitGroup
	tw.Add(1)
	go func() {
		defer tw.Done()
		temp = make([]T, size)
	}()
	var pSort func(int, int)
	pSort = func(index, size int) {
		if size < msortGrainSize {
			sequentialSort(s[index:index+size], less)
		} else {
			q1 := size / 4
			q2 := q1 + q1
			q3 := q2 + q1
			parallel.Do(
				func() { pSort(index, q1) },
				func() { pSort(index+q1, q1) },
				func() { pSort(index+q2, q1) },
				func() { pSort(index+q3, size-q3) },
			)
			tw.Wait()
			parallel.Do(
				func() { pMerge(s, temp, less, index, index+q1-1, index+q1, index+q2-1, index) },
				func() { pMerge(s, temp, less, index+q2, index+q3-1, index+q3, index+size-1, index+q2) },
			)
			pMerge(temp, s, less, index, index+q2-1, index+q2, index+size-1, index)
		}
	}
	pSort(0, size)
}
