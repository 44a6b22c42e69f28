package sort

import "github.com/exascience/parseq/parallel"

const qsortGrainSize = 0x500

func medianOfThree[T any](s []T, less func(a, b T) bool, l, m, r int) int {
	if less(s[l], s[m]) {
		if less(s[m], s[r]) {
			return m
		} else if less(s[l], s[r]) {
			return r
		}
	} else if less(s[r], s[m]) {
		return m
	} else if less(s[r], s[l]) {
		return r
	}
	return l
}

func pseudoMedianOfNine[T any](s []T, less func(a, b T) bool, index, size int) int {
	offset := size / 8
	return medianOfThree(s, less,
		medianOfThree(s, less, index, index+offset, index+offset*2),
		medianOfThree(s, less, index+offset*3, index+offset*4, index+offset*5),
		medianOfThree(s, less, index+offset*6, index+offset*7, index+size-1),
	)
}

// Sort sorts s according to less using a parallel quicksort with a
// pseudo-median-of-nine pivot.
//
// It is good for small core counts and small collection sizes.
func Sort[T any](s []T, less func(a, b T) bool) {
	size := len(s)
	if size < qsortGrainSize {
		sequentialSort(s, less)
		return
	}
	var pSort func(int, int)
	pSort = func(index, size int) {
		if size < qsortGrainSize {
			sequentialSort(s[index:index+size], less)
		} else {
			m := pseudoMedianOfNine(s, less, index, size)
			if m > index {
				s[index], s[m] = s[m], s[index]
			}
			i, j := index, index+size
		outer:
			for {
				for {
					j--
					if !less(s[index], s[j]) {
						break
					}
				}
				for {
					if i == j {
						break outer
					}
					i++
					if !less(s[i], s[index]) {
						break
					}
				}
				if i == j {
					break outer
				}
				s[i], s[j] = s[j], s[i]
			}
			s[j], s[index] = s[index], s[j]
			i = j + 1
			parallel.Do(
				func() { pSort(index, j-index) },
				func() { pSort(i, index+size-i) },
			)
		}
	}
	pSort(0, size)
}
