package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/catchpool/internal/scheduler"
	"github.com/osse101/catchpool/internal/worker"
)

// Stopper is anything with a context-bounded stop, such as the HTTP server
type Stopper interface {
	Stop(ctx context.Context) error
}

// Closer releases a resource without a context, such as the database pool
type Closer interface {
	Close()
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server     Stopper
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	DBPool     Closer
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (no new reloads are queued)
// 3. Worker pool (cancels and waits for a running reload)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		slog.Info(LogMsgStoppingWorkers)
		components.WorkerPool.Stop()
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
