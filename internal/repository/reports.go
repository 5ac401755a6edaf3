package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Giorgos-Arg/dna-pattern-matching/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const reportsCollection = "match_reports"

type ReportsRepository struct {
	mongoRepo *MongoRepository
}

func NewReportsRepository(mongoRepo *MongoRepository) *ReportsRepository {
	return &ReportsRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *ReportsRepository) InsertReport(ctx context.Context, report *models.MatchReport) error {
	report.CreatedAt = time.Now()
	if err := r.mongoRepo.InsertOne(ctx, reportsCollection, report); err != nil {
		return fmt.Errorf("failed to insert match report: %w", err)
	}
	return nil
}

func (r *ReportsRepository) UpdateReportByAnalysisID(ctx context.Context, analysisID string, report *models.MatchReport) error {
	report.CreatedAt = time.Now()
	filter := bson.M{"analysisId": analysisID}
	update := bson.M{"$set": report}
	if err := r.mongoRepo.UpdateOne(ctx, reportsCollection, filter, update); err != nil {
		return fmt.Errorf("failed to update match report: %w", err)
	}
	return nil
}

func (r *ReportsRepository) GetReportByAnalysisID(ctx context.Context, analysisID string) (*models.MatchReport, error) {
	filter := bson.M{"analysisId": analysisID}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var report models.MatchReport
	err := r.mongoRepo.FindOne(ctx, reportsCollection, filter, opts).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find match report: %w", err)
	}

	return &report, nil
}
