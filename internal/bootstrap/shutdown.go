package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ArcFarmia_Go/internal/bridge"
	"github.com/osse101/ArcFarmia_Go/internal/chain"
	"github.com/osse101/ArcFarmia_Go/internal/savestore"
	"github.com/osse101/ArcFarmia_Go/internal/scheduler"
	"github.com/osse101/ArcFarmia_Go/internal/server"
	"github.com/osse101/ArcFarmia_Go/internal/sse"
	"github.com/osse101/ArcFarmia_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Bridge    bridge.Service
	Autosave  *worker.AutosaveWorker
	SSEHub    *sse.Hub
	Store     savestore.Store
	Chain     *chain.Client
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in this order:
// 1. HTTP server and stream connections (stop accepting intents)
// 2. Scheduler then worker pool (no further ticks)
// 3. Chain bridge (wait for background purchase confirmations)
// 4. Autosave (flush the pending write)
// 5. Save store and RPC connection
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.Bridge != nil {
		shutdownService(ctx, ServiceNameBridge, c.Bridge)
	}
	if c.Autosave != nil {
		shutdownService(ctx, ServiceNameAutosave, c.Autosave)
	}

	if c.SSEHub != nil {
		c.SSEHub.Stop()
	}

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}
	if c.Chain != nil {
		c.Chain.Close()
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
