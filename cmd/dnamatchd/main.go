// Command dnamatchd runs the sequence-analysis service: sequence intake over
// HTTP and a Redis stream, and asynchronous pattern-matching and alignment
// over stored sequence pairs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Giorgos-Arg/dna-pattern-matching/internal/analysis"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/api"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/config"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/configs/env"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/infra/mongo"
	redisInfra "github.com/Giorgos-Arg/dna-pattern-matching/internal/infra/redis"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/logger"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/repository"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/stream"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := env.LoadEnv(); err != nil {
		log.Warn().Err(err).Msg("Failed to load .env file, continuing with system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}

	logger.Init(cfg.LogLevel)
	log.Info().Msg("Starting dnamatch server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect MongoDB
	mongoClient, err := mongo.NewClient(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create MongoDB client")
	}
	defer mongoClient.Close(ctx)

	// Connect Redis
	redisClient, err := redisInfra.NewClient(ctx, cfg.RedisHost, cfg.RedisPassword, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Redis client")
	}
	defer redisClient.Close()

	// Repositories
	mongoRepo := repository.NewMongoRepository(mongoClient)
	sequencesRepo := repository.NewSequencesRepository(mongoRepo)
	reportsRepo := repository.NewReportsRepository(mongoRepo)

	// Redis stream consumer
	retryHandler := stream.NewRetryHandler(redisClient.Client, cfg.RedisDeadLetterKey)
	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "unknown"
	}
	consumerName := fmt.Sprintf("consumer-%s-%d-%s", hostname, os.Getpid(), uuid.New().String()[:8])
	consumer := stream.NewConsumer(
		redisClient.Client,
		cfg.RedisStreamKey,
		cfg.RedisConsumerGroup,
		consumerName,
		sequencesRepo,
		retryHandler,
		cfg.StreamRetentionDuration,
	)
	log.Info().Str("consumer_name", consumerName).Msg("Redis stream consumer initialized")

	// Worker pool
	workerPool := analysis.NewWorkerPool(ctx)
	defer workerPool.Close()

	router := api.SetupRoutes(cfg, sequencesRepo, reportsRepo, workerPool, redisClient)

	// Start Redis consumer in background
	consumerCtx, consumerCancel := context.WithCancel(ctx)
	defer consumerCancel()
	go func() {
		if err := consumer.Start(consumerCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("Redis consumer error")
		}
	}()
	log.Info().Msg("Redis consumer started")

	srv := api.StartServer(router, cfg.ServerPort)

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down gracefully...")

	if err := api.ShutdownServer(srv, 30*time.Second); err != nil {
		log.Error().Err(err).Msg("Error shutting down HTTP server")
	}

	log.Info().Msg("Shutdown complete")
}
