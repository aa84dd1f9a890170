package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/event"
)

// ForwardedTypes are the bus events relayed to SSE clients
var ForwardedTypes = []event.Type{
	event.FarmChanged,
	event.TilesReady,
	event.LevelUp,
	event.QuestClaimed,
	event.Notice,
	event.SessionChanged,
	event.ChainTransaction,
	event.AmbienceChanged,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all forwarded event types
func (s *Subscriber) Subscribe() {
	names := make([]string, 0, len(ForwardedTypes))
	for _, t := range ForwardedTypes {
		s.bus.Subscribe(t, s.handle)
		names = append(names, string(t))
	}
	slog.Info(LogMsgSubscribed, "types", names)
}

func (s *Subscriber) handle(_ context.Context, evt event.Event) error {
	payload, err := normalise(evt)
	if err != nil {
		slog.Warn("Invalid event payload for SSE", "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}

// normalise converts payloads that crossed a serialised boundary back to their typed form
func normalise(evt event.Event) (interface{}, error) {
	switch evt.Type {
	case event.FarmChanged:
		return event.DecodePayload[domain.FarmChangedPayload](evt.Payload)
	case event.TilesReady:
		return event.DecodePayload[domain.TilesReadyPayload](evt.Payload)
	case event.LevelUp:
		return event.DecodePayload[domain.LevelUpPayload](evt.Payload)
	case event.QuestClaimed:
		return event.DecodePayload[domain.QuestClaimedPayload](evt.Payload)
	case event.Notice:
		return event.DecodePayload[domain.NoticePayload](evt.Payload)
	case event.SessionChanged:
		return event.DecodePayload[domain.Session](evt.Payload)
	case event.ChainTransaction:
		return event.DecodePayload[domain.ChainTransactionPayload](evt.Payload)
	case event.AmbienceChanged:
		return event.DecodePayload[domain.AmbiencePayload](evt.Payload)
	default:
		return evt.Payload, nil
	}
}
