package application

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestRandom_IndexRange(t *testing.T) {
	rnd := NewRandom(nil)
	seen := make(map[int]bool)
	for range 500 {
		i, err := rnd.Index(5)
		require.NoError(t, err)
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, 5)
		seen[i] = true
	}
	assert.Len(t, seen, 5, "every index should be reachable")
}

func TestRandom_IndexRejectsEmptyRange(t *testing.T) {
	rnd := NewRandom(nil)
	_, err := rnd.Index(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRandom_IntInclusive(t *testing.T) {
	rnd := NewRandom(nil)
	seen := make(map[int]bool)
	for range 500 {
		n, err := rnd.Int(10, 12)
		require.NoError(t, err)
		require.True(t, n >= 10 && n <= 12, "got %d", n)
		seen[n] = true
	}
	assert.Len(t, seen, 3)

	_, err := rnd.Int(5, 4)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRandom_CharEmptySource(t *testing.T) {
	rnd := NewRandom(nil)
	_, err := rnd.Char("")
	assert.ErrorIs(t, err, ErrInvalidInput)

	c, err := rnd.Char("x")
	require.NoError(t, err)
	assert.Equal(t, byte('x'), c)
}

func TestRandom_PickEmptyList(t *testing.T) {
	_, err := NewRandom(nil).Pick(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRandom_ShuffleIsPermutation(t *testing.T) {
	rnd := NewRandom(nil)
	orig := []byte("abcdefgh")
	b := slices.Clone(orig)

	require.NoError(t, rnd.Shuffle(b))

	sortedOrig := slices.Clone(orig)
	slices.Sort(sortedOrig)
	slices.Sort(b)
	assert.Equal(t, sortedOrig, b)
}

func TestRandom_ShuffleReachesAllPermutations(t *testing.T) {
	rnd := NewRandom(nil)
	seen := make(map[string]int)
	for range 3000 {
		b := []byte("abc")
		require.NoError(t, rnd.Shuffle(b))
		seen[string(b)]++
	}
	assert.Len(t, seen, 6)
	for perm, n := range seen {
		// Expected ~500 each; a biased shuffle would starve some permutations.
		assert.Greater(t, n, 300, "permutation %s drawn %d times", perm, n)
	}
}

func TestRandom_SourceFailure(t *testing.T) {
	rnd := NewRandom(failingReader{})
	_, err := rnd.Index(10)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}
