package match

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Giorgos-Arg/dna-pattern-matching/internal/dna"
)

func randomSequence(rng *rand.Rand, length int) dna.Sequence {
	alphabet := []byte{'a', 'c', 'g', 't'}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return dna.Sequence(buf)
}

func TestCountOccurrences(t *testing.T) {
	tests := []struct {
		name    string
		seq     dna.Sequence
		pattern dna.Sequence
		want    int
	}{
		{name: "repeated pattern", seq: "acgtacgt", pattern: "acgt", want: 2},
		{name: "overlapping matches", seq: "aaaa", pattern: "aa", want: 3},
		{name: "single symbol", seq: "acgtacgt", pattern: "g", want: 2},
		{name: "no match", seq: "aaaa", pattern: "ct", want: 0},
		{name: "pattern equals sequence", seq: "acgt", pattern: "acgt", want: 1},
		{name: "pattern longer than sequence", seq: "ac", pattern: "acgt", want: 0},
		{name: "empty sequence", seq: "", pattern: "a", want: 0},
		{name: "match at both ends", seq: "acggca", pattern: "a", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountOccurrencesBruteForce(tt.seq, tt.pattern), "brute force")
			assert.Equal(t, tt.want, CountOccurrencesRabinKarp(tt.seq, tt.pattern), "rabin-karp")
		})
	}
}

func TestMatchersAgreeOnRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		seq := randomSequence(rng, 1+rng.Intn(200))
		pattern := randomSequence(rng, 1+rng.Intn(8))
		bf := CountOccurrencesBruteForce(seq, pattern)
		kr := CountOccurrencesRabinKarp(seq, pattern)
		require.Equal(t, bf, kr, "seq=%s pattern=%s", seq, pattern)
	}
}

func TestSlideWindowMatchesRehashFromScratch(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, windowLen := range []int{1, 2, 5, 16, 31} {
		seq := randomSequence(rng, 200)
		msWeight := leadingWeight(windowLen)
		rolling := hashWindow(seq[:windowLen])
		for i := 0; i+windowLen < seq.Len(); i++ {
			rolling = slideWindow(rolling, seq[i], seq[i+windowLen], msWeight)
			require.Equal(t, hashWindow(seq[i+1:i+1+windowLen]), rolling,
				"window length %d, offset %d", windowLen, i+1)
		}
	}
}

func TestLCSLength(t *testing.T) {
	tests := []struct {
		name string
		a    dna.Sequence
		b    dna.Sequence
		want int
	}{
		{name: "partial overlap", a: "acgt", b: "gtac", want: 2},
		{name: "identical", a: "acgtacgt", b: "acgtacgt", want: 8},
		{name: "disjoint symbols", a: "aaaa", b: "cc", want: 0},
		{name: "subsequence with gaps", a: "acgtgca", b: "agc", want: 3},
		{name: "empty first", a: "", b: "acgt", want: 0},
		{name: "both empty", a: "", b: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LCSLength(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// LCS is symmetric in its arguments.
			swapped, err := LCSLength(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, got, swapped)
		})
	}
}

func TestLCSLengthBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		a := randomSequence(rng, rng.Intn(60))
		b := randomSequence(rng, rng.Intn(60))
		length, err := LCSLength(a, b)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, length, 0)
		assert.LessOrEqual(t, length, min(a.Len(), b.Len()))
	}
}

func TestLCSLengthTableTooLarge(t *testing.T) {
	huge := dna.Sequence(strings.Repeat("a", 1<<15))
	_, err := LCSLength(huge, huge)
	require.ErrorIs(t, err, ErrTableTooLarge)
}

func TestNormalizedDistance(t *testing.T) {
	t.Run("worked example", func(t *testing.T) {
		d, err := NormalizedDistance("acgt", "gtac")
		require.NoError(t, err)
		assert.InDelta(t, 0.5, d, 1e-9)
	})

	t.Run("identity", func(t *testing.T) {
		d, err := NormalizedDistance("acgtacgt", "acgtacgt")
		require.NoError(t, err)
		assert.Zero(t, d)
	})

	t.Run("undefined for empty input", func(t *testing.T) {
		_, err := NormalizedDistance("", "acgt")
		require.ErrorIs(t, err, ErrUndefinedDistance)
		_, err = NormalizedDistance("acgt", "")
		require.ErrorIs(t, err, ErrUndefinedDistance)
	})

	t.Run("stays in range", func(t *testing.T) {
		rng := rand.New(rand.NewSource(23))
		for i := 0; i < 200; i++ {
			a := randomSequence(rng, 1+rng.Intn(60))
			b := randomSequence(rng, 1+rng.Intn(60))
			d, err := NormalizedDistance(a, b)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, 1.0)
		}
	})
}
