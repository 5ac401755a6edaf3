package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/Giorgos-Arg/dna-pattern-matching/internal/infra/redis"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/models"
	"github.com/rs/zerolog/log"
)

const statusTTL = 12 * time.Hour

// UpdateStatus records the current step of an analysis in Redis.
func UpdateStatus(ctx context.Context, redisClient *redis.Client, analysisID string, step models.Step) error {
	validSteps := map[models.Step]bool{
		models.StepIdle:      true,
		models.StepInitiated: true,
		models.StepMatching:  true,
		models.StepAligning:  true,
		models.StepCompleted: true,
	}
	if !validSteps[step] {
		return fmt.Errorf("unknown step: %s", step)
	}

	rkey := "match_report_status:" + analysisID

	if err := redisClient.Set(ctx, rkey, string(step), statusTTL).Err(); err != nil {
		log.Error().Err(err).
			Str("step", string(step)).
			Str("analysisId", analysisID).
			Str("redisKey", rkey).
			Msg("Failed to update status in Redis")
		return fmt.Errorf("failed to update status in Redis: %w", err)
	}

	log.Trace().
		Str("step", string(step)).
		Str("analysisId", analysisID).
		Msg("Status updated in Redis")

	return nil
}
