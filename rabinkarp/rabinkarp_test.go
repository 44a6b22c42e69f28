package rabinkarp_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/parseq/rabinkarp"
)

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    int
		found   bool
	}{
		{"leftmost of several", "abracadabra", "abra", 0, true},
		{"middle", "abracadabra", "cad", 4, true},
		{"overlapping", "aaaa", "aa", 0, true},
		{"absent", "abcdef", "xyz", 0, false},
		{"pattern longer than text", "short", "shorter", 0, false},
		{"whole text", "needle", "needle", 0, true},
		{"at the very end", "xxxxxy", "xy", 4, true},
		{"empty pattern matches everywhere", "anything", "", 0, true},
		{"empty text, empty pattern", "", "", 0, true},
		{"empty text", "", "x", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := rabinkarp.Search([]byte(tt.text), []byte(tt.pattern))
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSearchLargeText(t *testing.T) {
	text := make([]byte, 100000)
	for i := range text {
		text[i] = byte('a' + rand.Intn(4))
	}
	pattern := text[54321 : 54321+20]

	want := bytes.Index(text, pattern)
	require.GreaterOrEqual(t, want, 0)

	got, found := rabinkarp.Search(text, pattern)
	require.True(t, found)
	assert.Equal(t, want, got)
}

// With modulus 97 and base 10, "\na" and "ab" have the same polynomial
// hash ((10 + 'a'*10) % 97 == ('a' + 'b'*10) % 97 == 10), so the window
// at index 0 of "\naab" matches by hash without matching by content. The
// verification step must reject it and the search must still report the
// genuine match.
func TestHashCollisionIsRejected(t *testing.T) {
	m := rabinkarp.NewWith(97, 10)

	// guard: the engineered collision is real
	require.Equal(t, uint64(10), (uint64('\n')+uint64('a')*10)%97)
	require.Equal(t, uint64(10), (uint64('a')+uint64('b')*10)%97)

	_, found := m.Search([]byte("\na"), []byte("ab"))
	assert.False(t, found, "colliding window must not surface as a match")

	got, found := m.Search([]byte("\naab"), []byte("ab"))
	require.True(t, found)
	assert.Equal(t, 2, got, "search must skip the collision and find the real match")
}

func TestAlternateFieldAgrees(t *testing.T) {
	text := []byte("the quick brown fox jumps over the lazy dog")
	m := rabinkarp.NewWith(1000000007, 256)

	got, found := m.Search(text, []byte("jumps"))
	require.True(t, found)
	assert.Equal(t, bytes.Index(text, []byte("jumps")), got)

	_, found = m.Search(text, []byte("cat"))
	assert.False(t, found)
}

func TestNewWithValidation(t *testing.T) {
	assert.Panics(t, func() { rabinkarp.NewWith(0, 2) })
	assert.Panics(t, func() { rabinkarp.NewWith(4, 2) }, "even modulus")
	assert.Panics(t, func() { rabinkarp.NewWith(1<<32, 2) }, "modulus too wide")
	assert.Panics(t, func() { rabinkarp.NewWith(97, 0) }, "zero base")
	assert.Panics(t, func() { rabinkarp.NewWith(97, 97+1) }, "base reduces to 1")
	assert.NotNil(t, rabinkarp.NewWith(97, 10))
}

func BenchmarkSearch(b *testing.B) {
	text := make([]byte, 1<<20)
	for i := range text {
		text[i] = byte('a' + rand.Intn(26))
	}
	pattern := text[len(text)-100:]
	m := rabinkarp.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Search(text, pattern)
	}
}
