package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/Giorgos-Arg/dna-pattern-matching/internal/dna"
	redisInfra "github.com/Giorgos-Arg/dna-pattern-matching/internal/infra/redis"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/models"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/repository"
	"github.com/rs/zerolog/log"
)

// AnalysisJob loads a stored sequence pair, runs the selected algorithm and
// persists the report. Executed on the worker pool.
type AnalysisJob struct {
	AnalysisID string
	Request    models.AnalyzeRequest
	Sequences  *repository.SequencesRepository
	Reports    *repository.ReportsRepository
	Redis      *redisInfra.Client
	Timeout    time.Duration

	// Done is closed when Execute finishes, successfully or not. Optional.
	Done chan struct{}
}

func (j *AnalysisJob) Execute(ctx context.Context) error {
	if j.Done != nil {
		defer close(j.Done)
	}

	ctx, cancel := context.WithTimeout(ctx, j.Timeout)
	defer cancel()

	step := models.StepMatching
	if j.Request.Mode == models.ModeLCS {
		step = models.StepAligning
	}
	if err := UpdateStatus(ctx, j.Redis, j.AnalysisID, step); err != nil {
		log.Warn().Err(err).Str("analysisId", j.AnalysisID).Msg("Failed to update running status")
	}

	seq, pattern, err := j.loadPair(ctx)
	if err != nil {
		j.fail(ctx, err)
		return err
	}

	outcome, err := Run(j.Request.Mode, seq, pattern)
	if err != nil {
		j.fail(ctx, err)
		return err
	}

	report := &models.MatchReport{
		AnalysisID:  j.AnalysisID,
		Mode:        j.Request.Mode,
		SequenceID:  j.Request.SequenceID,
		PatternID:   j.Request.PatternID,
		Occurrences: outcome.Occurrences,
		LCSLength:   outcome.LCSLength,
		Distance:    outcome.Distance,
		Status:      "completed",
	}
	if err := j.Reports.UpdateReportByAnalysisID(ctx, j.AnalysisID, report); err != nil {
		log.Error().Err(err).Str("analysisId", j.AnalysisID).Msg("Failed to store report")
		return err
	}

	if err := UpdateStatus(ctx, j.Redis, j.AnalysisID, models.StepCompleted); err != nil {
		log.Warn().Err(err).Str("analysisId", j.AnalysisID).Msg("Failed to update completed status")
	}

	log.Debug().
		Str("analysisId", j.AnalysisID).
		Str("mode", j.Request.Mode).
		Msg("Analysis completed")
	return nil
}

func (j *AnalysisJob) loadPair(ctx context.Context) (dna.Sequence, dna.Sequence, error) {
	seqRec, err := j.Sequences.GetSequenceByID(ctx, j.Request.SequenceID)
	if err != nil {
		return "", "", err
	}
	if seqRec == nil {
		return "", "", fmt.Errorf("sequence not found: %s", j.Request.SequenceID)
	}

	patRec, err := j.Sequences.GetSequenceByID(ctx, j.Request.PatternID)
	if err != nil {
		return "", "", err
	}
	if patRec == nil {
		return "", "", fmt.Errorf("sequence not found: %s", j.Request.PatternID)
	}

	// Stored sequences were validated at intake; no re-validation here.
	return dna.Sequence(seqRec.Sequence), dna.Sequence(patRec.Sequence), nil
}

func (j *AnalysisJob) fail(ctx context.Context, cause error) {
	report := &models.MatchReport{
		AnalysisID: j.AnalysisID,
		Mode:       j.Request.Mode,
		SequenceID: j.Request.SequenceID,
		PatternID:  j.Request.PatternID,
		Status:     "failed",
		Error:      cause.Error(),
	}
	if err := j.Reports.UpdateReportByAnalysisID(ctx, j.AnalysisID, report); err != nil {
		log.Error().Err(err).Str("analysisId", j.AnalysisID).Msg("Failed to store failed report")
	}
}
