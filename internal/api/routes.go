package api

import (
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/analysis"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/config"
	redisInfra "github.com/Giorgos-Arg/dna-pattern-matching/internal/infra/redis"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/repository"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	cfg *config.Config,
	sequencesRepo *repository.SequencesRepository,
	reportsRepo *repository.ReportsRepository,
	workerPool *analysis.WorkerPool,
	redisClient *redisInfra.Client,
) *gin.Engine {
	router := gin.Default()

	handler := NewHandler(cfg, sequencesRepo, reportsRepo, workerPool, redisClient)

	rateLimiter := NewRateLimiter(cfg.RateLimitRPS, int(cfg.RateLimitRPS*2))

	router.Use(ErrorHandlerMiddleware())

	// Health endpoint (no auth)
	router.GET("/health", handler.Health)

	// API routes (with auth and rate limiting)
	api := router.Group("/api/v1")
	api.Use(JWTAuthMiddleware(cfg.JWTSecret))
	api.Use(RateLimitMiddleware(rateLimiter))
	{
		api.POST("/sequences", handler.SubmitSequence)
		api.GET("/sequences/:id", handler.GetSequence)
		api.POST("/analyze", handler.Analyze)
		api.GET("/reports/:id", handler.GetReport)
	}

	return router
}
