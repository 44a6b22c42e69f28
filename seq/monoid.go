package seq

import "cmp"

// A Monoid is a value type together with an associative combine operation
// and an identity element, the contract that licenses parallel
// decomposition: because Combine is associative, any parenthesization —
// sequential left fold or balanced tree — yields the same result.
//
// Combine(Identity, x) and Combine(x, Identity) must both equal x for all
// x. Neither law is checked at runtime; violating them produces silently
// wrong results in the consumers, not errors.
//
// Combine need not be commutative: Scan and Reduce preserve left-to-right
// combination order.
type Monoid[T any] struct {
	Combine  func(a, b T) T
	Identity T
}

// MakeMonoid returns the monoid with the given combine operation and
// identity element.
func MakeMonoid[T any](combine func(a, b T) T, identity T) Monoid[T] {
	return Monoid[T]{Combine: combine, Identity: identity}
}

// A Number is any built-in integer or floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Plus is the addition monoid with identity 0. It is the default monoid
// for offset and counting scans.
func Plus[T Number]() Monoid[T] {
	return Monoid[T]{Combine: func(a, b T) T { return a + b }, Identity: 0}
}

// Times is the multiplication monoid with identity 1.
func Times[T Number]() Monoid[T] {
	return Monoid[T]{Combine: func(a, b T) T { return a * b }, Identity: 1}
}

// MinWith is the minimum monoid. The identity acts as a sentinel and must
// be an upper bound for every value that occurs.
func MinWith[T cmp.Ordered](identity T) Monoid[T] {
	return Monoid[T]{Combine: func(a, b T) T { return min(a, b) }, Identity: identity}
}

// MaxWith is the maximum monoid. The identity acts as a sentinel and must
// be a lower bound for every value that occurs.
func MaxWith[T cmp.Ordered](identity T) Monoid[T] {
	return Monoid[T]{Combine: func(a, b T) T { return max(a, b) }, Identity: identity}
}
