/*
Package rabinkarp locates the leftmost occurrence of a pattern in a text
in parallel, using the Rabin-Karp rolling hash.

A running polynomial hash over the field of integers modulo a fixed
prime is built with a multiplicative scan (for the power table) and an
additive scan (for the prefix hashes), so that the hash of any window
follows from two prefix values in constant time. Every window whose hash
matches the pattern's is verified by direct comparison before it is
accepted: hash collisions can cost time, but never produce a wrong
answer. The hash is a correctness-assisting fingerprint, not a
cryptographic primitive.
*/
package rabinkarp

import (
	"bytes"
	"fmt"

	"github.com/exascience/parseq/seq"
)

// Default hash field parameters. The modulus is prime and close to
// 2^30, so sums and products of canonical values stay below 2^61 and
// uint64 intermediates never overflow.
const (
	DefaultModulus = 1045678717
	DefaultBase    = 500000000
)

// A Matcher searches texts with a fixed hash field. The zero Matcher is
// not valid; use New or NewWith.
type Matcher struct {
	p uint64 // prime modulus; field values are held in [0, p)
	x uint64 // base of the polynomial hash, in [2, p)
}

// New returns a Matcher with the default modulus and base.
func New() *Matcher {
	return NewWith(DefaultModulus, DefaultBase)
}

// NewWith returns a Matcher over the field of integers modulo the given
// modulus, with the given hash base. The modulus must be an odd prime
// below 2^32, and the base must reduce to neither 0 nor 1; NewWith
// panics otherwise. Small moduli make hash collisions frequent — useful
// in tests, and harmless beyond the verification time.
func NewWith(modulus, base uint64) *Matcher {
	if modulus < 3 || modulus%2 == 0 || modulus >= 1<<32 {
		panic(fmt.Sprintf("invalid modulus: %v", modulus))
	}
	base %= modulus
	if base < 2 {
		panic(fmt.Sprintf("invalid base: %v", base))
	}
	return &Matcher{p: modulus, x: base}
}

func (m *Matcher) add(a, b uint64) uint64 { return (a + b) % m.p }

func (m *Matcher) mul(a, b uint64) uint64 { return (a * b) % m.p }

func (m *Matcher) plusMonoid() seq.Monoid[uint64] {
	return seq.MakeMonoid(m.add, 0)
}

func (m *Matcher) timesMonoid() seq.Monoid[uint64] {
	return seq.MakeMonoid(m.mul, 1)
}

// Search returns the index of the leftmost occurrence of pattern in
// text, using the default Matcher.
func Search(text, pattern []byte) (int, bool) {
	return New().Search(text, pattern)
}

// Search returns the index of the leftmost occurrence of pattern in
// text. The second return value is false when there is no occurrence.
// The empty pattern matches everywhere, so it is found at index 0.
func (m *Matcher) Search(text, pattern []byte) (int, bool) {
	n, k := len(text), len(pattern)
	switch {
	case k == 0:
		return 0, true
	case k > n:
		return 0, false
	}

	// powers[i] = x^i, hashes[i] = hash of text[0:i].
	powers, _ := seq.Scan(seq.Constant(n, m.x), m.timesMonoid())
	hashes, sum := seq.Scan(seq.Gen(n, func(i int) uint64 {
		return m.mul(uint64(text[i]), powers[i])
	}), m.plusMonoid())

	hash := seq.Reduce(seq.Gen(k, func(i int) uint64 {
		return m.mul(uint64(pattern[i]), powers[i])
	}), m.plusMonoid())

	// The window starting at i matches by hash iff
	// hash*powers[i] + hashes[i] equals the hash of text[0:i+k]. A
	// matching hash admits collisions, so every candidate is verified
	// against the pattern; a missed match is impossible. Non-candidates
	// map to the sentinel n, and the minimum reduce yields the leftmost
	// verified match.
	loc := seq.Reduce(seq.Gen(n-k+1, func(i int) int {
		hashEnd := sum
		if i < n-k {
			hashEnd = hashes[i+k]
		}
		if m.add(m.mul(hash, powers[i]), hashes[i]) == hashEnd &&
			bytes.Equal(pattern, text[i:i+k]) {
			return i
		}
		return n
	}), seq.MinWith(n))
	if loc == n {
		return 0, false
	}
	return loc, true
}
