package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	httpadapter "github.com/bikramSinkemana/challenge-ping-tree/internal/adapter/http"
	"github.com/bikramSinkemana/challenge-ping-tree/internal/adapter/memory"
	redisstore "github.com/bikramSinkemana/challenge-ping-tree/internal/adapter/redis"
	"github.com/bikramSinkemana/challenge-ping-tree/internal/adapter/usecase"
	"github.com/bikramSinkemana/challenge-ping-tree/internal/config"
	"github.com/bikramSinkemana/challenge-ping-tree/internal/core/port"
)

// main loads configuration, wires the target store and the decision
// engine, then serves HTTP until a termination signal arrives and shuts
// down gracefully.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	zone, err := cfg.Decision.Location()
	if err != nil {
		logger.Error("invalid decision timezone", slog.String("timezone", cfg.Decision.Timezone), slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var store port.TargetStore
	switch cfg.StoreDriver {
	case "memory":
		logger.Warn("using in-memory target store; records will not survive restarts")
		store = memory.NewTargetStore()
	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
		err = rdb.Ping(pingCtx).Err()
		pingCancel()
		if err != nil {
			logger.Error("redis ping failed", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
			os.Exit(1)
		}
		store = redisstore.NewTargetStore(rdb, redisstore.WithCommitRetries(cfg.Decision.CommitRetries))
	}

	decisions := usecase.NewDecisionUseCase(store, zone)
	targets := usecase.NewTargetUseCase(store)

	var limiter *httpadapter.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = httpadapter.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		limiter.StartJanitor(ctx, 2*time.Minute)
	}

	handler := httpadapter.NewHandler(decisions, targets, store, logger, limiter)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
