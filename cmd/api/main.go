// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Traders HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Decode the embedded seed data set.
//  4. Connect to PostgreSQL and run migrations (STORE_DRIVER=postgres).
//  5. Connect to Redis (REDIS_URL set).
//  6. Load the dashboard token verifier (JWT_PUBLIC_KEY_PATH set).
//  7. Wire domain services and HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/traders/internal/api"
	"github.com/taibuivan/traders/internal/contact"
	"github.com/taibuivan/traders/internal/content"
	"github.com/taibuivan/traders/internal/dashboard"
	"github.com/taibuivan/traders/internal/gallery"
	"github.com/taibuivan/traders/internal/platform/config"
	"github.com/taibuivan/traders/internal/platform/constants"
	"github.com/taibuivan/traders/internal/platform/middleware"
	"github.com/taibuivan/traders/internal/platform/migration"
	"github.com/taibuivan/traders/internal/platform/notify"
	pgstore "github.com/taibuivan/traders/internal/platform/postgres"
	redisstore "github.com/taibuivan/traders/internal/platform/redis"
	"github.com/taibuivan/traders/internal/platform/sec"
	"github.com/taibuivan/traders/internal/product"
	"github.com/taibuivan/traders/internal/seed"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store", cfg.StoreDriver),
	)

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Seed Data ──────────────────────────────────────────────────────
	data, err := seed.Load(log)
	must(log, err, "load seed data")

	var (
		productRepository product.Repository = product.NewMemoryRepository(data.Products)
		galleryRepository gallery.Repository = gallery.NewMemoryRepository(data.Gallery)
		likeStore         gallery.LikeStore  = gallery.NewMemoryLikeStore()
		notifier          notify.Notifier    = notify.NewLogNotifier(log)
		health            api.HealthDependencies
	)

	// ── 4. PostgreSQL ─────────────────────────────────────────────────────
	if cfg.UsesPostgres() {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer closePool(log, pool)

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		productRepository = product.NewPostgresRepository(pool)
		galleryRepository = gallery.NewPostgresRepository(pool)
		health.Database = func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }
	}

	// ── 5. Redis ──────────────────────────────────────────────────────────
	if cfg.UsesRedis() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer closeRedis(log, rdb)

		likeStore = gallery.NewRedisLikeStore(rdb)
		notifier = notify.Multi{notifier, notify.NewRedisPublisher(rdb, constants.RedisChannelNotifications)}
		health.Cache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 6. Dashboard Tokens ───────────────────────────────────────────────
	var verifier middleware.TokenVerifier
	if cfg.DashboardsEnabled() {
		tokens, err := sec.NewVerifier(cfg.JWTPubKeyPath, constants.AuthIssuer)
		must(log, err, "load token verifier")
		verifier = tokens
	} else {
		log.Warn("dashboards_disabled", slog.String("reason", "JWT_PUBLIC_KEY_PATH not set"))
	}

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	contentService, err := content.NewService(data.Content)
	must(log, err, "render content")

	liveness, readiness := api.NewHealthHandlers(health, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Products:  product.NewHandler(product.NewService(productRepository, log)),
		Gallery:   gallery.NewHandler(gallery.NewService(galleryRepository, likeStore, log)),
		Content:   content.NewHandler(contentService),
		Contact:   contact.NewHandler(contact.NewService(notifier, cfg.ContactAckDelay, log)),
		Dashboard: dashboard.NewHandler(dashboard.NewService(data.Dashboard)),
	}

	server := api.NewServer(rootCtx, cfg, log, verifier, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
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
		log.Error("server_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
	}

	log.Info("server_stopped")
}

// newLogger builds the JSON logger shared by every component and makes it
// the process default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

func closePool(log *slog.Logger, pool *pgxpool.Pool) {
	log.Info("postgres_pool_closing")
	pool.Close()
}

func closeRedis(log *slog.Logger, client *goredis.Client) {
	log.Info("redis_client_closing")
	if err := client.Close(); err != nil {
		log.Error("redis_close_failed", slog.Any("error", err))
	}
}

// must logs a startup failure and exits. It is only used during wiring;
// once the server runs, errors are returned and handled.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failed", slog.String("step", step), slog.Any("error", err))
		os.Exit(1)
	}
}
