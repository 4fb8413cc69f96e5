package bootstrap

import (
	"context"
	"log/slog"

	"github.com/lichcore/dominion/internal/scheduler"
	"github.com/lichcore/dominion/internal/server"
	"github.com/lichcore/dominion/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server      *server.Server
	Scheduler   *scheduler.Scheduler
	WorkerPool  *worker.Pool
	TimerWorker *worker.TimerWorker
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down components in the correct order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (stop enqueueing periodic board syncs)
// 3. Worker pool (drain queued jobs)
// 4. Timer worker (cancel pending member timers)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.TimerWorker != nil {
		if err := components.TimerWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgTimerWorkerShutdownFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
