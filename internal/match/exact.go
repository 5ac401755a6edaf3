// Package match implements the three sequence-matching kernels: a brute-force
// exact scan, a Karp-Rabin rolling-hash scan, and an LCS aligner. All three
// are pure functions over immutable sequences and are safe to run
// concurrently against the same inputs.
package match

import (
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/dna"
)

// CountOccurrencesBruteForce counts every offset at which pattern occurs in
// seq, comparing symbol by symbol. Overlapping occurrences are all counted.
// If the pattern is longer than the sequence the count is 0. This is the
// correctness reference for CountOccurrencesRabinKarp.
func CountOccurrencesBruteForce(seq, pattern dna.Sequence) int {
	occurrences := 0
	for i := 0; i <= len(seq)-len(pattern); i++ {
		j := 0
		for j < len(pattern) && pattern[j] == seq[i+j] {
			j++
		}
		if j == len(pattern) {
			occurrences++
		}
	}
	return occurrences
}
