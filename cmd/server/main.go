package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	redis_cache "lensfeed-post-service/internal/cache/redis"
	"lensfeed-post-service/internal/config"
	post_http "lensfeed-post-service/internal/delivery/http"
	metrics_server "lensfeed-post-service/internal/delivery/metrics"
	"lensfeed-post-service/internal/logger"
	prometheus_metrics "lensfeed-post-service/internal/metrics/prometheus"
	post_repository_postgres "lensfeed-post-service/internal/repository/post/postgres"
	user_repository_postgres "lensfeed-post-service/internal/repository/user/postgres"
	auth_service "lensfeed-post-service/internal/service/auth"
	post_service "lensfeed-post-service/internal/service/post"
	"lensfeed-post-service/internal/uploads"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if err := runMigrations(cfg, log); err != nil {
		log.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	metrics.SetServiceHealth(true)

	postCache := redis_cache.NewPostCache(redisClient, log)

	postRepo := post_repository_postgres.NewPostRepository(pool, log)
	userRepo := user_repository_postgres.NewUserRepository(pool, log)

	authService := auth_service.NewAuthService(userRepo, log)

	originalPostService := post_service.NewPostService(postRepo, userRepo, log)

	postService := post_service.NewPostServiceCacheDecorator(
		originalPostService,
		postCache,
		log,
		metrics,
	)

	imageStorage, err := uploads.New(cfg.Uploads, log)
	if err != nil {
		log.Error("Failed to prepare uploads directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	postHandler := post_http.NewPostHandler(postService, authService, imageStorage, validator.New(), log)
	router := post_http.NewRouter(postHandler, metrics, log, cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	httpServer := post_http.NewServer(router, cfg.HTTPServer.Address, cfg.HTTPServer.Port, log)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}

func runMigrations(cfg *config.Config, log *logger.Logger) error {
	migrateDSN := fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)

	m, err := migrate.New(fmt.Sprintf("file://%s", cfg.Database.MigrationsPath), migrateDSN)
	if err != nil {
		return err
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil {
			log.Error("Failed to close migration source", slog.String("error", sourceErr.Error()))
		}
		if dbErr != nil {
			log.Error("Failed to close migration database", slog.String("error", dbErr.Error()))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	log.Info("Migrations applied")
	return nil
}
