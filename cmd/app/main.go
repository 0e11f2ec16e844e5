package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/Stockroom_Go/internal/auth"
	"github.com/osse101/Stockroom_Go/internal/config"
	"github.com/osse101/Stockroom_Go/internal/dashboard"
	"github.com/osse101/Stockroom_Go/internal/database"
	"github.com/osse101/Stockroom_Go/internal/database/postgres"
	"github.com/osse101/Stockroom_Go/internal/inventory"
	"github.com/osse101/Stockroom_Go/internal/server"
	"github.com/osse101/Stockroom_Go/internal/worker"
)

const (
	dbMaxConns      = 10
	dbMaxIdleTime   = 5 * time.Minute
	dbMaxLifetime   = 30 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, cfg.GetDBConnString()); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	repo := postgres.NewInventoryRepository(dbPool)
	inventoryService := inventory.NewService(repo, inventory.Options{
		CaseSensitiveSearch: cfg.SearchCaseSensitive,
	})
	dashboardService := dashboard.NewService(repo)

	authService, err := auth.NewService(cfg.AdminUser, cfg.AdminPass, cfg.SessionMax, cfg.SessionTTL)
	if err != nil {
		slog.Error("Failed to build auth service", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg, nil, dbPool, inventoryService, dashboardService, authService)

	statsWorker := worker.NewStatsWorker(repo, worker.DefaultRefreshInterval)
	statsWorker.Start()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Server forced to shut down", "error", err)
		}

		if err := statsWorker.Shutdown(shutdownCtx); err != nil {
			slog.Error("Stats worker shutdown failed", "error", err)
		}
	}

	slog.Info("Server stopped")
}
