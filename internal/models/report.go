package models

import (
	"time"
)

// Step tracks analysis progress in Redis.
type Step string

const (
	StepIdle      Step = "idle"
	StepInitiated Step = "initiated"
	StepMatching  Step = "matching"
	StepAligning  Step = "aligning"
	StepCompleted Step = "completed"
)

// Analysis modes. The short names match the historical CLI flags.
const (
	ModeBruteForce = "bf"
	ModeRabinKarp  = "kr"
	ModeLCS        = "lcss"
	ModeCrossCheck = "xcheck"
)

// MatchReport is the stored outcome of one analysis run.
type MatchReport struct {
	AnalysisID  string    `bson:"analysisId" json:"analysisId"`
	Mode        string    `bson:"mode" json:"mode"`
	SequenceID  string    `bson:"sequenceId" json:"sequenceId"`
	PatternID   string    `bson:"patternId" json:"patternId"`
	Occurrences *int      `bson:"occurrences,omitempty" json:"occurrences,omitempty"`
	LCSLength   *int      `bson:"lcsLength,omitempty" json:"lcsLength,omitempty"`
	Distance    *float64  `bson:"distance,omitempty" json:"distance,omitempty"`
	Status      string    `bson:"status" json:"status"` // pending, completed, failed
	Error       string    `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// AnalyzeRequest selects an algorithm and a pair of stored sequences.
type AnalyzeRequest struct {
	Mode       string `json:"mode" binding:"required"`
	SequenceID string `json:"sequenceId" binding:"required"`
	PatternID  string `json:"patternId" binding:"required"`
}

// AnalyzeResponse acknowledges an accepted analysis.
type AnalyzeResponse struct {
	Step       Step   `json:"step"`
	AnalysisID string `json:"analysisId"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
