// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the YCinema HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire domain services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/ycinema/internal/api"
	"github.com/taibuivan/ycinema/internal/browse"
	"github.com/taibuivan/ycinema/internal/catalog"
	"github.com/taibuivan/ycinema/internal/homepage"
	"github.com/taibuivan/ycinema/internal/importer"
	"github.com/taibuivan/ycinema/internal/platform/config"
	"github.com/taibuivan/ycinema/internal/platform/constants"
	"github.com/taibuivan/ycinema/internal/platform/migration"
	pgstore "github.com/taibuivan/ycinema/internal/platform/postgres"
	redisstore "github.com/taibuivan/ycinema/internal/platform/redis"
	"github.com/taibuivan/ycinema/internal/platform/sec"
	"github.com/taibuivan/ycinema/internal/users/auth"
)

func main() {
	// # 1. Logger
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// # 2. Configuration
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("fallback_catalog", cfg.FallbackCatalogPath),
	)

	dsn, err := cfg.Database.DSN()
	must(log, err, "build database dsn")

	// Startup deadline so misconfiguration fails fast.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// # 3. PostgreSQL
	pool, err := pgstore.NewPool(startupCtx, dsn, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("postgres_pool_closing")
		pool.Close()
	}()

	// # 4. Redis
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("redis_client_closing")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// # 5. Migrations
	must(log, migration.RunUp(dsn, cfg.Database.MigrationPath, log), "run migrations")

	// # 6. Domain Wiring
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	catalogRepository := catalog.NewPostgresRepository(pool)
	catalogService := catalog.NewService(catalogRepository, log)
	loader := catalog.NewLoader(
		catalogRepository,
		catalog.NewFileFallback(cfg.FallbackCatalogPath, log),
		catalog.DefaultLoaderConfig(),
		log,
	)

	homepageService := homepage.NewService(homepage.NewPostgresRepository(pool), log)

	importStore := importer.NewPostgresStore(pool)
	importService := importer.NewService(importStore, importStore, log)

	authService := auth.NewService(
		auth.NewUserRepository(pool),
		auth.NewSessionRepository(rdb),
		jwtSvc,
		log,
	)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckCache: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
		BreakerState: loader.BreakerState,
	}, log)

	handlers := api.Handlers{
		Liveness:            liveness,
		Readiness:           readiness,
		FallbackCatalogPath: cfg.FallbackCatalogPath,
		Auth:                auth.NewHandler(authService),
		Browse:              browse.NewHandler(loader, homepageService),
		Content:             catalog.NewAdminHandler(catalogService),
		Settings:            homepage.NewHandler(homepageService),
		Import:              importer.NewHandler(importService),
	}

	// # 7. HTTP Server
	server := api.NewServer(rootCtx, cfg, log, jwtSvc, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("server_shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
// Startup wiring only.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
