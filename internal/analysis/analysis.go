// Package analysis dispatches the sequence-matching kernels over stored
// sequence pairs and records the outcome.
package analysis

import (
	"fmt"

	"github.com/Giorgos-Arg/dna-pattern-matching/internal/dna"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/match"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/models"
)

// Outcome carries the results of one analysis run. Only the fields relevant
// to the selected mode are set.
type Outcome struct {
	Occurrences *int
	LCSLength   *int
	Distance    *float64
}

// ErrMatcherMismatch reports a disagreement between the brute-force and
// Rabin-Karp matchers in cross-check mode. The two are defined to agree on
// every input, so this always indicates a bug.
var ErrMatcherMismatch = fmt.Errorf("brute-force and rabin-karp matchers disagree")

// Run executes the selected algorithm over the pair. Sequences are assumed
// already validated against the alphabet by the intake layer.
func Run(mode string, seq, pattern dna.Sequence) (Outcome, error) {
	switch mode {
	case models.ModeBruteForce:
		n := match.CountOccurrencesBruteForce(seq, pattern)
		return Outcome{Occurrences: &n}, nil

	case models.ModeRabinKarp:
		n := match.CountOccurrencesRabinKarp(seq, pattern)
		return Outcome{Occurrences: &n}, nil

	case models.ModeCrossCheck:
		n, err := crossCheck(seq, pattern)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Occurrences: &n}, nil

	case models.ModeLCS:
		length, err := match.LCSLength(seq, pattern)
		if err != nil {
			return Outcome{}, err
		}
		out := Outcome{LCSLength: &length}
		distance, err := match.NormalizedDistance(seq, pattern)
		if err != nil {
			// LCS length is still well defined for empty operands; only
			// the distance is refused.
			return out, err
		}
		out.Distance = &distance
		return out, nil

	default:
		return Outcome{}, fmt.Errorf("unknown analysis mode: %q", mode)
	}
}

// crossCheck races both exact matchers over the same pair. They share no
// state, so running them concurrently needs no locks.
func crossCheck(seq, pattern dna.Sequence) (int, error) {
	bfChan := make(chan int, 1)
	krChan := make(chan int, 1)

	go func() { bfChan <- match.CountOccurrencesBruteForce(seq, pattern) }()
	go func() { krChan <- match.CountOccurrencesRabinKarp(seq, pattern) }()

	bf, kr := <-bfChan, <-krChan
	if bf != kr {
		return 0, fmt.Errorf("%w: brute-force=%d rabin-karp=%d", ErrMatcherMismatch, bf, kr)
	}
	return bf, nil
}

// ValidMode reports whether mode names one of the supported algorithms.
func ValidMode(mode string) bool {
	switch mode {
	case models.ModeBruteForce, models.ModeRabinKarp, models.ModeLCS, models.ModeCrossCheck:
		return true
	}
	return false
}
