/*
Package seq provides parallel primitives over ordered sequences: prefix
scan, reduce, and pack, defined over an associative-operation (monoid)
abstraction, together with the combinators that are pure compositions of
those primitives — filter, unique, remove-if, tokens, split, flatten —
and dispatchers into the parallel sorting kernels of parseq/sort.

All primitives consume the View interface, so they operate uniformly on
Go slices (via Of) and on delayed, generator-backed sequences (via Gen),
which lets multiple logical transformation stages fuse into a single
pass without materializing intermediates.

The output of every primitive is deterministic and matches a sequential
left-to-right execution regardless of how work was split, provided the
supplied combine and predicate functions are pure. The engines do not
serialize user-code side effects across parallel branches; a
side-effecting callback must itself be thread-safe and
order-independent.
*/
package seq

import (
	"fmt"

	"github.com/exascience/parseq/parallel"
)

// A View is a non-owning, random-access window over an ordered sequence.
// Multiple views may alias the same underlying storage; the primitives in
// this package never mutate through a View.
type View[T any] interface {
	// Len is the number of elements in the sequence.
	Len() int

	// At returns the element at index i, with 0 <= i < Len().
	At(i int) T
}

// A Slice adapts a Go slice to the View interface without copying it.
type Slice[T any] []T

// Of wraps a slice in a View without copying it.
func Of[T any](s []T) Slice[T] { return s }

func (s Slice[T]) Len() int { return len(s) }

func (s Slice[T]) At(i int) T { return s[i] }

// A Delayed is a logical sequence of known finite length whose elements
// are produced on demand by a generator function of the index. It is
// never materialized unless a consuming primitive forces it.
type Delayed[T any] struct {
	n  int
	at func(int) T
}

// Gen returns a delayed sequence of length n whose element at index i is
// at(i). The generator must be safe to invoke from multiple goroutines,
// and may be invoked more than once for the same index.
func Gen[T any](n int, at func(int) T) Delayed[T] {
	if n < 0 {
		panic(fmt.Sprintf("invalid length: %v", n))
	}
	return Delayed[T]{n, at}
}

// Constant returns a delayed sequence of n copies of v.
func Constant[T any](n int, v T) Delayed[T] {
	return Gen(n, func(int) T { return v })
}

func (d Delayed[T]) Len() int { return d.n }

func (d Delayed[T]) At(i int) T { return d.at(i) }

// Force materializes the delayed sequence in parallel.
func (d Delayed[T]) Force() []T { return Tabulate(d.n, d.at) }

// Tabulate returns the sequence f(0), f(1), ..., f(n-1), invoking f in
// parallel.
func Tabulate[T any](n int, f func(i int) T) []T {
	out := make([]T, n)
	parallel.Range(0, n, 0, func(low, high int) {
		for i := low; i < high; i++ {
			out[i] = f(i)
		}
	})
	return out
}

// subseq copies s[start:end] into a fresh slice.
func subseq[T any](s View[T], start, end int) []T {
	out := make([]T, end-start)
	for i := range out {
		out[i] = s.At(start + i)
	}
	return out
}
