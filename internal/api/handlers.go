package api

import (
	"context"
	"net/http"
	"time"

	"github.com/Giorgos-Arg/dna-pattern-matching/internal/analysis"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/config"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/dna"
	redisInfra "github.com/Giorgos-Arg/dna-pattern-matching/internal/infra/redis"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/models"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Handler holds dependencies for handlers.
type Handler struct {
	cfg             *config.Config
	sequencesRepo   *repository.SequencesRepository
	reportsRepo     *repository.ReportsRepository
	workerPool      *analysis.WorkerPool
	redisClient     *redisInfra.Client
	analysisSem     chan struct{} // Semaphore for bounded concurrency
	analysisTimeout time.Duration
}

func NewHandler(
	cfg *config.Config,
	sequencesRepo *repository.SequencesRepository,
	reportsRepo *repository.ReportsRepository,
	workerPool *analysis.WorkerPool,
	redisClient *redisInfra.Client,
) *Handler {
	return &Handler{
		cfg:             cfg,
		sequencesRepo:   sequencesRepo,
		reportsRepo:     reportsRepo,
		workerPool:      workerPool,
		redisClient:     redisClient,
		analysisSem:     make(chan struct{}, cfg.MaxConcurrentAnalyses),
		analysisTimeout: cfg.AnalysisTimeout,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// SubmitSequence validates and stores a sequence.
func (h *Handler) SubmitSequence(c *gin.Context) {
	var req models.SubmitSequenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	seq, err := dna.Parse([]byte(req.Sequence))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_SEQUENCE",
		})
		return
	}

	record := &models.SequenceRecord{
		ID:       uuid.New().String(),
		Label:    req.Label,
		Sequence: seq.String(),
		Length:   seq.Len(),
		Source:   "api",
	}

	if err := h.sequencesRepo.InsertSequence(c.Request.Context(), record); err != nil {
		log.Error().Err(err).Str("label", req.Label).Msg("Failed to store sequence")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to store sequence",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	c.JSON(http.StatusCreated, models.SubmitSequenceResponse{
		SequenceID: record.ID,
		Length:     record.Length,
	})
}

// GetSequence returns a stored sequence by id.
func (h *Handler) GetSequence(c *gin.Context) {
	record, err := h.sequencesRepo.GetSequenceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Error().Err(err).Str("sequenceId", c.Param("id")).Msg("Failed to load sequence")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load sequence",
			Code:  "INTERNAL_ERROR",
		})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Sequence not found",
			Code:  "SEQUENCE_NOT_FOUND",
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Analyze starts an asynchronous analysis over a stored pair and replies
// 202 Accepted with the analysis id.
func (h *Handler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if !analysis.ValidMode(req.Mode) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Unknown analysis mode: " + req.Mode,
			Code:  "INVALID_MODE",
		})
		return
	}

	ctx := c.Request.Context()
	for _, id := range []string{req.SequenceID, req.PatternID} {
		record, err := h.sequencesRepo.GetSequenceByID(ctx, id)
		if err != nil {
			log.Error().Err(err).Str("sequenceId", id).Msg("Failed to check sequence")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to check sequence",
				Code:  "INTERNAL_ERROR",
			})
			return
		}
		if record == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Sequence not found: " + id,
				Code:  "SEQUENCE_NOT_FOUND",
			})
			return
		}
	}

	// Acquire semaphore (bounded concurrency).
	select {
	case h.analysisSem <- struct{}{}:
	case <-ctx.Done():
		c.JSON(http.StatusRequestTimeout, models.ErrorResponse{
			Error: "Request cancelled",
			Code:  "REQUEST_TIMEOUT",
		})
		return
	}

	analysisID := uuid.New().String()
	if err := analysis.UpdateStatus(ctx, h.redisClient, analysisID, models.StepInitiated); err != nil {
		log.Warn().Err(err).Str("analysisId", analysisID).Msg("Failed to update initiated status")
	}

	c.JSON(http.StatusAccepted, models.AnalyzeResponse{
		Step:       models.StepInitiated,
		AnalysisID: analysisID,
	})

	go h.processAnalysis(analysisID, req)
}

func (h *Handler) processAnalysis(analysisID string, req models.AnalyzeRequest) {
	defer func() { <-h.analysisSem }() // Release semaphore

	ctx, cancel := context.WithTimeout(context.Background(), h.analysisTimeout)
	defer cancel()

	pending := &models.MatchReport{
		AnalysisID: analysisID,
		Mode:       req.Mode,
		SequenceID: req.SequenceID,
		PatternID:  req.PatternID,
		Status:     "pending",
	}
	if err := h.reportsRepo.InsertReport(ctx, pending); err != nil {
		log.Error().Err(err).Str("analysisId", analysisID).Msg("Failed to create pending report")
	}

	job := &analysis.AnalysisJob{
		AnalysisID: analysisID,
		Request:    req,
		Sequences:  h.sequencesRepo,
		Reports:    h.reportsRepo,
		Redis:      h.redisClient,
		Timeout:    h.analysisTimeout,
		Done:       make(chan struct{}),
	}
	if err := h.workerPool.Submit(job); err != nil {
		log.Error().Err(err).Str("analysisId", analysisID).Msg("Failed to submit analysis job")
		return
	}

	// Hold the semaphore until the job has actually run.
	<-job.Done
}

// GetReport returns the report for an analysis id.
func (h *Handler) GetReport(c *gin.Context) {
	report, err := h.reportsRepo.GetReportByAnalysisID(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Error().Err(err).Str("analysisId", c.Param("id")).Msg("Failed to load report")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load report",
			Code:  "INTERNAL_ERROR",
		})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Report not found",
			Code:  "REPORT_NOT_FOUND",
		})
		return
	}

	c.JSON(http.StatusOK, report)
}
