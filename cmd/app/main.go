package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fabworks/contentbridge/internal/bootstrap"
	"github.com/fabworks/contentbridge/internal/config"
	"github.com/fabworks/contentbridge/internal/database"
	"github.com/fabworks/contentbridge/internal/fsops"
	"github.com/fabworks/contentbridge/internal/handler"
	"github.com/fabworks/contentbridge/internal/job"
	"github.com/fabworks/contentbridge/internal/logger"
	"github.com/fabworks/contentbridge/internal/server"
	"github.com/fabworks/contentbridge/internal/session"
	"github.com/fabworks/contentbridge/internal/sse"
	"github.com/fabworks/contentbridge/internal/transfer"
)

// ShutdownTimeout bounds how long graceful shutdown may take before the
// process exits anyway.
const ShutdownTimeout = 30 * time.Second

//	@title			ContentBridge API
//	@version		1.0
//	@description	Content package export and import between fabrication configurations.
//	@BasePath		/

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	// Validate environment before anything touches it
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Environment validation failed: %v", err)
	}

	// Setup logging
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Logger setup failed: %v", err)
	}
	defer logFile.Close()

	for _, warning := range warnings {
		logger.Warn(warning)
	}

	// Load the transfer policy. An unset POLICY_PATH falls back to the
	// conventional location when a file is there, else to defaults.
	policyPath := cfg.PolicyPath
	if policyPath == "" {
		if _, statErr := os.Stat(config.ConfigPathPolicy); statErr == nil {
			policyPath = config.ConfigPathPolicy
		}
	}
	policy, err := transfer.LoadPolicy(policyPath)
	if err != nil {
		logger.Error("Failed to load transfer policy", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to the database when one is configured
	var pool *pgxpool.Pool
	if cfg.HasDatabase() {
		pool, err = database.NewPool(ctx, database.PoolConfig{URL: cfg.DatabaseURL})
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		if err := database.Migrate(ctx, cfg.DatabaseURL); err != nil {
			logger.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	// Build the configuration registry
	registry, err := bootstrap.BuildRegistry(ctx, cfg, pool)
	if err != nil {
		logger.Error("Failed to build configuration registry", "error", err)
		os.Exit(1)
	}

	// Create services
	fs := fsops.NewRealFS()
	transferSvc := transfer.NewService(registry, fs, policy)
	sessions := session.NewStore(cfg.SessionCap, cfg.SessionTTL)
	jobs := job.NewStore(cfg.JobQueueSize)

	// Stream job updates to SSE clients
	hub := sse.NewHub()
	hub.Start()
	jobs.SetObserver(sse.NewNotifier(hub))

	runner := job.NewRunner(jobs)
	runner.Start(ctx)

	// Readiness treats a nil Pinger as "no database configured", so a nil
	// pool must stay out of the interface value.
	var db handler.Pinger
	if pool != nil {
		db = pool
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, server.Deps{
		DB:          db,
		Registry:    registry,
		TransferSvc: transferSvc,
		Sessions:    sessions,
		Jobs:        jobs,
		Hub:         hub,
		FS:          fs,
		Policy:      policy,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Runner: runner,
		Hub:    hub,
		Pool:   pool,
	})
}
