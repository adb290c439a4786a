package bootstrap

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fabworks/contentbridge/internal/job"
	"github.com/fabworks/contentbridge/internal/logger"
	"github.com/fabworks/contentbridge/internal/server"
	"github.com/fabworks/contentbridge/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Runner *job.Runner
	Hub    *sse.Hub
	Pool   *pgxpool.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the correct order:
// 1. HTTP server (stop accepting new requests, SSE streams end with it)
// 2. Job runner (cancel the active batch between items)
// 3. SSE hub (nothing publishes job events anymore)
// 4. Database pool (close once nothing can issue queries)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)

	// Shutdown server first (stop accepting new requests)
	if err := components.Server.Stop(ctx); err != nil {
		logger.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Runner != nil {
		components.Runner.Stop()
		logger.Info(LogMsgJobRunnerStopped)
	}

	if components.Hub != nil {
		components.Hub.Stop()
		logger.Info(LogMsgEventHubStopped)
	}

	if components.Pool != nil {
		components.Pool.Close()
		logger.Info(LogMsgDatabasePoolClosed)
	}

	logger.Info(LogMsgServerStopped)
}
