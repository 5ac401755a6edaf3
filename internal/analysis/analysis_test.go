package analysis

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Giorgos-Arg/dna-pattern-matching/internal/dna"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/match"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/models"
)

func dnaSeq(s string) dna.Sequence {
	return dna.Sequence(s)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name            string
		mode            string
		seq             string
		pattern         string
		wantOccurrences int
		wantLCS         int
		wantDistance    float64
	}{
		{name: "brute force", mode: models.ModeBruteForce, seq: "acgtacgt", pattern: "acgt", wantOccurrences: 2},
		{name: "rabin karp", mode: models.ModeRabinKarp, seq: "aaaa", pattern: "aa", wantOccurrences: 3},
		{name: "cross check", mode: models.ModeCrossCheck, seq: "acgtacgt", pattern: "cg", wantOccurrences: 2},
		{name: "lcs", mode: models.ModeLCS, seq: "acgt", pattern: "gtac", wantLCS: 2, wantDistance: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Run(tt.mode, dnaSeq(tt.seq), dnaSeq(tt.pattern))
			require.NoError(t, err)

			if tt.mode == models.ModeLCS {
				require.NotNil(t, out.LCSLength)
				require.NotNil(t, out.Distance)
				assert.Equal(t, tt.wantLCS, *out.LCSLength)
				assert.InDelta(t, tt.wantDistance, *out.Distance, 1e-9)
				assert.Nil(t, out.Occurrences)
			} else {
				require.NotNil(t, out.Occurrences)
				assert.Equal(t, tt.wantOccurrences, *out.Occurrences)
				assert.Nil(t, out.LCSLength)
			}
		})
	}
}

func TestRunLCSUndefinedDistance(t *testing.T) {
	out, err := Run(models.ModeLCS, dnaSeq(""), dnaSeq("acgt"))
	require.ErrorIs(t, err, match.ErrUndefinedDistance)
	// The LCS length itself is still defined for an empty operand.
	require.NotNil(t, out.LCSLength)
	assert.Zero(t, *out.LCSLength)
}

func TestRunUnknownMode(t *testing.T) {
	_, err := Run("smith-waterman", dnaSeq("acgt"), dnaSeq("acgt"))
	require.Error(t, err)
}

func TestValidMode(t *testing.T) {
	for _, mode := range []string{models.ModeBruteForce, models.ModeRabinKarp, models.ModeLCS, models.ModeCrossCheck} {
		assert.True(t, ValidMode(mode), mode)
	}
	assert.False(t, ValidMode(""))
	assert.False(t, ValidMode("needleman-wunsch"))
}

func TestUpdateStatusRejectsUnknownStep(t *testing.T) {
	// Step validation happens before Redis is touched.
	err := UpdateStatus(context.Background(), nil, "analysis-1", models.Step("bogus"))
	require.Error(t, err)
}

type countingJob struct {
	counter *atomic.Int64
	done    chan struct{}
}

func (j *countingJob) Execute(ctx context.Context) error {
	j.counter.Add(1)
	close(j.done)
	return nil
}

func TestWorkerPoolRunsSubmittedJobs(t *testing.T) {
	pool := NewWorkerPool(context.Background())
	defer pool.Close()

	require.GreaterOrEqual(t, pool.Size(), 1)

	var counter atomic.Int64
	jobs := make([]*countingJob, 8)
	for i := range jobs {
		jobs[i] = &countingJob{counter: &counter, done: make(chan struct{})}
		require.NoError(t, pool.Submit(jobs[i]))
	}
	for _, job := range jobs {
		<-job.done
	}
	assert.Equal(t, int64(len(jobs)), counter.Load())
}
