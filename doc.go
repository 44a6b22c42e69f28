// Package parseq provides data-parallel primitives over ordered sequences.
// A small set of building blocks — parallel prefix scan, parallel reduce,
// and parallel pack — is defined over an associative-operation (monoid)
// abstraction, and a family of sequence combinators as well as a parallel
// string matcher are expressed as compositions of those blocks.
//
// Parseq provides the following subpackages:
//
// parseq/parallel provides the fork-join scheduler: functions for executing
// series of thunks, range functions, or range reducers in parallel, with
// recursive task splitting and panic propagation across goroutines.
//
// parseq/seq provides the sequence model (slices, views, and delayed
// generator-backed sequences), the monoid contract, the scan, reduce, and
// pack engines, and the combinators built from them: filter, unique,
// remove-if, tokens, split, and flatten, plus dispatchers into the sorting
// kernels.
//
// parseq/sort provides the parallel sorting kernels: a quicksort, a stable
// merge sort, and a stable radix sort over unsigned integer keys.
//
// parseq/rabinkarp locates the leftmost occurrence of a pattern in a text
// in parallel, combining a multiplicative scan, an additive scan, and a
// minimum-index reduce over finite-field arithmetic.
//
// Parseq has been influenced to various extents by ideas from Cilk,
// Threading Building Blocks, and the nested-parallelism tradition of
// blocked prefix computations. See
// http://supertech.csail.mit.edu/papers/steal.pdf for some theoretical
// background.
package parseq
