package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Larissacdias1/scib-candidates-platform/config"
	_ "github.com/Larissacdias1/scib-candidates-platform/docs" // Important for Swagger
	v1 "github.com/Larissacdias1/scib-candidates-platform/internal/delivery/http/v1"
	"github.com/Larissacdias1/scib-candidates-platform/internal/repository/postgres"
	"github.com/Larissacdias1/scib-candidates-platform/internal/usecase"
	"github.com/Larissacdias1/scib-candidates-platform/pkg/database"
	"github.com/Larissacdias1/scib-candidates-platform/pkg/logger"
	"github.com/Larissacdias1/scib-candidates-platform/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Candidates Platform API
// @version         1.0
// @description     Candidate registration from Excel uploads, with full record lifecycle.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting candidates platform", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting degrades to in-memory)
	if err := redis.Initialize(cfg.RedisURL); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories and UseCases
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	validate := validator.New()
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC: candidateUC,
		Config:      cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
