package seq_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/parseq/seq"
)

func TestSplitAt(t *testing.T) {
	s := []byte("one,two,,three,")
	flags := make([]bool, len(s))
	for i, c := range s {
		flags[i] = c == ','
	}
	got := seq.SplitAt(seq.Of(s), seq.Of(flags))
	require.Len(t, got, 5)
	assert.Equal(t, []byte("one,"), got[0])
	assert.Equal(t, []byte("two,"), got[1])
	assert.Equal(t, []byte(","), got[2])
	assert.Equal(t, []byte("three,"), got[3])
	// trailing flag yields an empty final piece
	assert.Empty(t, got[4])
}

func TestSplitAtNoFlags(t *testing.T) {
	s := []int{1, 2, 3}
	got := seq.SplitAt(seq.Of(s), seq.Of([]bool{false, false, false}))
	require.Len(t, got, 1)
	assert.Equal(t, s, got[0])
}

func TestSplitAtMismatchedFlagsPanics(t *testing.T) {
	assert.Panics(t, func() {
		seq.SplitAt(seq.Of([]int{1, 2}), seq.Of([]bool{true}))
	})
}

// Flattening the pieces of any split reconstructs the input exactly.
func TestSplitFlattenRoundTrip(t *testing.T) {
	for _, size := range sizes {
		for _, density := range []float64{0, 0.01, 0.3, 1} {
			s := randomInts(size, 1000)
			flags := randomMask(size, density)

			pieces := seq.SplitAt(seq.Of(s), seq.Of(flags))
			require.Len(t, pieces, seq.Count(seq.Of(flags), func(b bool) bool { return b })+1)

			back := seq.Flatten(pieces)
			if size == 0 {
				assert.Empty(t, back)
			} else {
				assert.Equal(t, s, back, "size %d, density %v", size, density)
			}
		}
	}
}

func TestFlatten(t *testing.T) {
	ss := [][]int{{1, 2}, nil, {3}, {}, {4, 5, 6}}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, seq.Flatten(ss))

	assert.Empty(t, seq.Flatten([][]int(nil)))
	assert.Empty(t, seq.Flatten([][]int{nil, nil}))
}

func TestFlattenLargeInner(t *testing.T) {
	// exercises the parallel inner copy path
	big := randomInts(0x3000, 1000)
	ss := [][]int{{-1}, big, {-2}}
	got := seq.Flatten(ss)
	require.Len(t, got, len(big)+2)
	assert.Equal(t, -1, got[0])
	assert.Equal(t, big, got[1:len(big)+1])
	assert.Equal(t, -2, got[len(got)-1])
}

// sequentialTokens is the reference implementation for Tokens.
func sequentialTokens(s []byte, isSpace func(byte) bool) [][]byte {
	var out [][]byte
	var run []byte
	for _, c := range s {
		if isSpace(c) {
			if len(run) > 0 {
				out = append(out, run)
				run = nil
			}
		} else {
			run = append(run, c)
		}
	}
	if len(run) > 0 {
		out = append(out, run)
	}
	return out
}

func randomText(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		if rand.Intn(4) == 0 {
			out[i] = ' '
		} else {
			out[i] = byte('a' + rand.Intn(26))
		}
	}
	return out
}

func isBlank(c byte) bool { return c == ' ' }

func TestTokens(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("   "),
		[]byte("hello"),
		[]byte("  hello   world "),
		[]byte("a b c d e"),
	}
	for _, s := range cases {
		want := sequentialTokens(s, isBlank)
		got := seq.Tokens(seq.Of(s), isBlank)
		require.Len(t, got, len(want), "%q", s)
		for i := range want {
			assert.Equal(t, want[i], got[i], "%q token %d", s, i)
		}
	}
}

// Covers both the boundary-packing path and the run-counting scan path,
// which switch over at an input size threshold.
func TestTokensSmallAndLargeAgree(t *testing.T) {
	for _, size := range []int{100, 1999, 2000, 2001, 50000} {
		s := randomText(size)
		want := sequentialTokens(s, isBlank)
		got := seq.Tokens(seq.Of(s), isBlank)
		require.Len(t, got, len(want), "size %d", size)
		for i := range want {
			require.Equal(t, want[i], got[i], "size %d, token %d", size, i)
		}
	}
}
