package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/ArcFarmia_Go/internal/event"
	"github.com/osse101/ArcFarmia_Go/internal/metrics"
	"github.com/osse101/ArcFarmia_Go/internal/sse"
	"github.com/osse101/ArcFarmia_Go/internal/worker"
	"github.com/osse101/ArcFarmia_Go/internal/ws"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Autosave *worker.AutosaveWorker
	SSEHub   *sse.Hub
	WSHub    *ws.Hub
}

// RegisterEventHandlers sets up all event handlers and subscribers.
// This includes:
// - Metrics collector (for event-based metrics)
// - Autosave (debounced local save on every farm change)
// - SSE relay and WebSocket view push
func RegisterEventHandlers(ctx context.Context, deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Autosave != nil {
		deps.Autosave.Register(ctx, deps.EventBus)
		slog.Info(LogMsgAutosaveRegistered)
	}

	if deps.SSEHub != nil {
		sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe()
	}
	if deps.WSHub != nil {
		deps.WSHub.Subscribe(deps.EventBus)
		slog.Info(LogMsgStreamHubRegistered)
	}
	return nil
}
