package match

import (
	"errors"

	"github.com/Giorgos-Arg/dna-pattern-matching/internal/dna"
)

// maxTableCells caps the LCS table at roughly 2 GiB of ints. Inputs whose
// product exceeds this are refused up front instead of aborting the process
// on a failed allocation.
const maxTableCells = 1 << 28

var (
	// ErrTableTooLarge is returned when the alignment table for the two
	// sequences would exceed maxTableCells.
	ErrTableTooLarge = errors.New("alignment table too large for the given sequences")

	// ErrUndefinedDistance is returned by NormalizedDistance when either
	// sequence is empty, making the metric's denominator zero.
	ErrUndefinedDistance = errors.New("normalized distance is undefined for empty sequences")
)

// LCSLength computes the length of the longest common subsequence of a and b
// with the standard dynamic program over a contiguous (|a|+1)x(|b|+1) table.
// Symmetric in its arguments; the result is bounded by min(|a|, |b|).
func LCSLength(a, b dna.Sequence) (int, error) {
	rows, cols := len(a)+1, len(b)+1
	if cols != 0 && rows > maxTableCells/cols {
		return 0, ErrTableTooLarge
	}

	// Row-major table; row 0 and column 0 stay zero.
	table := make([]int, rows*cols)
	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			if a[i-1] == b[j-1] {
				table[i*cols+j] = table[(i-1)*cols+j-1] + 1
			} else {
				table[i*cols+j] = max(table[i*cols+j-1], table[(i-1)*cols+j])
			}
		}
	}
	return table[rows*cols-1], nil
}

// NormalizedDistance returns 1 - LCS(a,b)/min(|a|,|b|), a dissimilarity in
// [0, 1]. The metric is undefined when either sequence is empty.
func NormalizedDistance(a, b dna.Sequence) (float64, error) {
	shorter := min(len(a), len(b))
	if shorter == 0 {
		return 0, ErrUndefinedDistance
	}
	length, err := LCSLength(a, b)
	if err != nil {
		return 0, err
	}
	return 1 - float64(length)/float64(shorter), nil
}
