package match

import (
	"math"
	"math/bits"

	"github.com/Giorgos-Arg/dna-pattern-matching/internal/dna"
)

// Hash parameters. The modulus is the maximum representable value rather than
// a prime, matching the historical behavior of this tool; that raises the
// collision rate but not the result, since every hash hit is verified symbol
// by symbol before it is counted.
const (
	hashBase    = 2
	hashModulus = math.MaxInt64
)

// CountOccurrencesRabinKarp counts occurrences of pattern in seq using the
// Karp-Rabin algorithm. A rolling polynomial hash of the current window is
// compared against the pattern hash; only on hash equality is the window
// verified symbol by symbol. Results are identical to
// CountOccurrencesBruteForce for all inputs.
func CountOccurrencesRabinKarp(seq, pattern dna.Sequence) int {
	n, m := len(seq), len(pattern)
	if m > n {
		return 0
	}

	patHash := hashWindow(pattern)
	winHash := hashWindow(seq[:m])
	msWeight := leadingWeight(m)

	occurrences := 0
	for i := 0; i <= n-m; i++ {
		if patHash == winHash && verifyAt(seq, pattern, i) {
			occurrences++
		}
		if m > 0 && i+m < n {
			winHash = slideWindow(winHash, seq[i], seq[i+m], msWeight)
		}
	}
	return occurrences
}

// hashWindow computes the polynomial hash of a window: the leftmost symbol
// carries weight base^(len-1), evaluated by Horner's rule under the modulus.
func hashWindow(s dna.Sequence) uint64 {
	var value uint64
	for i := 0; i < len(s); i++ {
		// Reduce between the shift and the add so neither step can wrap.
		value = (value * hashBase) % hashModulus
		value = (value + uint64(s[i])) % hashModulus
	}
	return value
}

// leadingWeight returns base^(m-1) mod hashModulus, the weight of the symbol
// about to leave the window.
func leadingWeight(m int) uint64 {
	w := uint64(1)
	for i := 1; i < m; i++ {
		w = (w * hashBase) % hashModulus
	}
	return w
}

// slideWindow advances the hash one position: drop the leaving symbol's
// weighted term, shift every remaining weight up by one degree, add the
// entering symbol. Algebraically identical to hashWindow on the new window;
// TestSlideWindowMatchesRehashFromScratch pins the equivalence.
func slideWindow(h uint64, leaving, entering byte, msWeight uint64) uint64 {
	h = (h + hashModulus - mulMod(uint64(leaving), msWeight)) % hashModulus
	h = (h * hashBase) % hashModulus
	return (h + uint64(entering)) % hashModulus
}

// mulMod returns a*b mod hashModulus without overflowing 64 bits.
func mulMod(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, hashModulus)
	return rem
}

// verifyAt confirms a hash hit by direct comparison, rejecting collisions.
func verifyAt(seq, pattern dna.Sequence, offset int) bool {
	for j := 0; j < len(pattern); j++ {
		if pattern[j] != seq[offset+j] {
			return false
		}
	}
	return true
}
