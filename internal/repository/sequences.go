package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Giorgos-Arg/dna-pattern-matching/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const sequencesCollection = "dna_sequences"

type SequencesRepository struct {
	mongoRepo *MongoRepository
}

func NewSequencesRepository(mongoRepo *MongoRepository) *SequencesRepository {
	return &SequencesRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *SequencesRepository) InsertSequence(ctx context.Context, record *models.SequenceRecord) error {
	record.CreatedAt = time.Now()
	if err := r.mongoRepo.InsertOne(ctx, sequencesCollection, record); err != nil {
		return fmt.Errorf("failed to insert sequence: %w", err)
	}
	return nil
}

func (r *SequencesRepository) GetSequenceByID(ctx context.Context, sequenceID string) (*models.SequenceRecord, error) {
	filter := bson.M{"sequenceId": sequenceID}

	var record models.SequenceRecord
	err := r.mongoRepo.FindOne(ctx, sequencesCollection, filter).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find sequence: %w", err)
	}

	return &record, nil
}

func (r *SequencesRepository) CountSequences(ctx context.Context) (int64, error) {
	count, err := r.mongoRepo.CountDocuments(ctx, sequencesCollection, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count sequences: %w", err)
	}
	return count, nil
}
