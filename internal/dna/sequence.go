// Package dna owns the sequence type and all input validation. The matchers
// in internal/match assume sequences produced here are already restricted to
// the a,c,g,t alphabet and never re-validate.
package dna

import (
	"fmt"
	"os"
)

// Sequence is an immutable DNA sequence over the alphabet {a, c, g, t}.
// The zero value is the empty sequence.
type Sequence string

// ErrAlphabet is returned when input contains a byte outside {a, c, g, t}.
var ErrAlphabet = fmt.Errorf("a dna sequence can only contain the characters a,c,g,t")

// Parse validates raw bytes as a DNA sequence. Newline characters are
// ignored; any other byte outside the alphabet fails with ErrAlphabet.
func Parse(raw []byte) (Sequence, error) {
	buf := make([]byte, 0, len(raw))
	for i, ch := range raw {
		switch ch {
		case 'a', 'c', 'g', 't':
			buf = append(buf, ch)
		case '\n', '\r':
			// Sequence files may be line-wrapped.
		default:
			return "", fmt.Errorf("invalid byte %q at offset %d: %w", ch, i, ErrAlphabet)
		}
	}
	return Sequence(buf), nil
}

// Load reads a DNA sequence from a file.
func Load(path string) (Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read sequence file: %w", err)
	}
	seq, err := Parse(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// Len returns the number of symbols in the sequence.
func (s Sequence) Len() int {
	return len(s)
}

// String returns the sequence as a plain string.
func (s Sequence) String() string {
	return string(s)
}
