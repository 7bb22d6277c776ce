package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventura/eventura-backend/internal/config"
	"github.com/eventura/eventura-backend/internal/database"
	"github.com/eventura/eventura-backend/internal/handler"
	"github.com/eventura/eventura-backend/internal/logger"
	"github.com/eventura/eventura-backend/internal/repository"
	"github.com/eventura/eventura-backend/internal/router"
	"github.com/eventura/eventura-backend/internal/service"
	"github.com/eventura/eventura-backend/internal/validator"
	"github.com/eventura/eventura-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Eventura Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	studentRepo := repository.NewStudentRepository(pool)
	collegeRepo := repository.NewCollegeRepository(pool)
	eventRepo := repository.NewEventRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	studentService := service.NewStudentService(studentRepo)
	collegeService := service.NewCollegeService(collegeRepo, studentRepo, rdb, cfg.CacheTTL, log)
	eventService := service.NewEventService(eventRepo)
	ratingService := service.NewRatingService(studentRepo, collegeRepo)
	analyticsService := service.NewAnalyticsService(studentRepo, collegeRepo, rdb, cfg.CacheTTL, log)
	statsService := service.NewStatsService(studentRepo, collegeRepo, eventRepo, rdb, cfg.CacheTTL, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Student:   handler.NewStudentHandler(studentService),
		College:   handler.NewCollegeHandler(collegeService),
		Event:     handler.NewEventHandler(eventService),
		Rating:    handler.NewRatingHandler(ratingService),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Stats:     handler.NewStatsHandler(statsService),
	}

	// ─── Start Background Worker ──────────────────────────────────────
	// Warms the aggregate caches before traffic arrives and keeps them warm.
	workerCtx, workerCancel := context.WithCancel(context.Background())
	aggregateWorker := worker.NewAggregateWorker(collegeService, analyticsService, statsService, cfg.CacheTTL, log)
	go aggregateWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
