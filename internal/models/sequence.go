package models

import (
	"time"
)

// SequenceRecord is a validated DNA sequence stored in MongoDB.
type SequenceRecord struct {
	ID        string    `bson:"sequenceId" json:"sequenceId"`
	Label     string    `bson:"label" json:"label"`
	Sequence  string    `bson:"sequence" json:"sequence"`
	Length    int       `bson:"length" json:"length"`
	Source    string    `bson:"source" json:"source"` // api, stream
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Submission is a raw sequence submission arriving on the Redis stream.
// The sequence is validated against the alphabet before it is stored.
type Submission struct {
	Label    string `json:"label"`
	Sequence string `json:"sequence"`
}

// SubmitSequenceRequest is the payload for storing a sequence via the API.
type SubmitSequenceRequest struct {
	Label    string `json:"label" binding:"required"`
	Sequence string `json:"sequence" binding:"required"`
}

// SubmitSequenceResponse returns the identifier of the stored sequence.
type SubmitSequenceResponse struct {
	SequenceID string `json:"sequenceId"`
	Length     int    `json:"length"`
}
