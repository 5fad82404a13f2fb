package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bagdasarian/project-tracker/internal/assistant"
	"github.com/bagdasarian/project-tracker/internal/auth"
	"github.com/bagdasarian/project-tracker/internal/config"
	"github.com/bagdasarian/project-tracker/internal/db"
	"github.com/bagdasarian/project-tracker/internal/handler"
	"github.com/bagdasarian/project-tracker/internal/handler/server"
	"github.com/bagdasarian/project-tracker/internal/logger"
	"github.com/bagdasarian/project-tracker/internal/repository/postgres"
	"github.com/bagdasarian/project-tracker/internal/service"
)

func main() {
	cfg := config.MustLoad()

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer lg.Sync()

	ctx := context.Background()

	database := db.MustLoad(ctx, cfg)
	lg.Info("connected to database", zap.String("host", cfg.Database.Host), zap.String("name", cfg.Database.DBName))
	defer database.Close()

	userRepo := postgres.NewUserRepository(database)
	projectRepo := postgres.NewProjectRepository(database)
	taskRepo := postgres.NewTaskRepository(database)

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	userService := service.NewUserService(userRepo, tokens, cfg.Bootstrap, lg)
	projectService := service.NewProjectService(projectRepo, userRepo, lg)
	taskService := service.NewTaskService(taskRepo, projectRepo)
	statsService := service.NewStatsService(projectRepo, taskRepo)
	assistantService := service.NewAssistantService(newGenerator(ctx, cfg.Assistant, lg), statsService, cfg.Assistant.Timeout, lg)

	limiter := newRateLimiter(ctx, cfg.RateLimit, lg)
	defer limiter.Close()

	h := handler.NewHandler(userService, projectService, taskService, statsService, assistantService, database, lg)
	router := server.NewRouter(h, server.Deps{
		Metrics:        handler.NewMetrics(prometheus.DefaultRegisterer),
		MetricsHandler: promhttp.Handler(),
		Limiter:        limiter,
		RateLimit:      cfg.RateLimit,
		Logger:         lg,
	})
	srv := server.NewServer(router, cfg.HTTP.Addr, lg)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("server forced to shutdown", zap.Error(err))
	}
}

func newGenerator(ctx context.Context, cfg config.AssistantConfig, lg *zap.Logger) service.TextGenerator {
	if cfg.APIKey == "" {
		lg.Warn("GEMINI_API_KEY is not set, assistant will return fallback texts")
		return assistant.DisabledGenerator{}
	}

	generator, err := assistant.NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		lg.Warn("gemini client unavailable, assistant will return fallback texts", zap.Error(err))
		return assistant.DisabledGenerator{}
	}
	return generator
}

func newRateLimiter(ctx context.Context, cfg config.RateLimitConfig, lg *zap.Logger) handler.RateLimiter {
	if cfg.RedisAddr == "" {
		return handler.NewMemoryRateLimiter()
	}

	limiter, err := handler.NewRedisRateLimiter(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, lg)
	if err != nil {
		lg.Warn("redis rate limiter unavailable, using in-memory limiter", zap.Error(err))
		return handler.NewMemoryRateLimiter()
	}
	return limiter
}
