package metrics

import (
	"context"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/event"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.FarmChanged:
		p, err := event.DecodePayload[domain.FarmChangedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		FarmActions.WithLabelValues(p.Action, OutcomeApplied).Inc()

	case event.ActionRejected:
		p, err := event.DecodePayload[domain.ActionRejectedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		FarmActions.WithLabelValues(p.Action, OutcomeRejected).Inc()

	case event.TilesReady:
		p, err := event.DecodePayload[domain.TilesReadyPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		TilesReady.Add(float64(len(p.Indices)))

	case event.LevelUp:
		p, err := event.DecodePayload[domain.LevelUpPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		LevelUps.Add(float64(max(p.NewLevel-p.OldLevel, 0)))

	case event.QuestClaimed:
		p, err := event.DecodePayload[domain.QuestClaimedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		QuestsClaimed.WithLabelValues(p.QuestID).Inc()
		QuestRewards.Add(float64(p.Reward))

	case event.Notice:
		p, err := event.DecodePayload[domain.NoticePayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		Notices.WithLabelValues(string(p.Level)).Inc()

	case event.ChainTransaction:
		p, err := event.DecodePayload[domain.ChainTransactionPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		ChainTransactions.WithLabelValues(p.Action, p.Outcome).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
