package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types published on the bus
const (
	FarmChanged      Type = domain.EventTypeFarmChanged
	ActionRejected   Type = domain.EventTypeActionRejected
	TilesReady       Type = domain.EventTypeTilesReady
	LevelUp          Type = domain.EventTypeLevelUp
	QuestClaimed     Type = domain.EventTypeQuestClaimed
	Notice           Type = domain.EventTypeNotice
	SessionChanged   Type = domain.EventTypeSessionChanged
	ChainTransaction Type = domain.EventTypeChainTransaction
	AmbienceChanged  Type = domain.EventTypeAmbienceChanged
)

// AllTypes lists every event type, in publication order of importance
var AllTypes = []Type{
	FarmChanged,
	ActionRejected,
	TilesReady,
	LevelUp,
	QuestClaimed,
	Notice,
	SessionChanged,
	ChainTransaction,
	AmbienceChanged,
}

// Type-safe event constructors

// NewFarmChangedEvent creates a farm.changed event
func NewFarmChangedEvent(revision int64, action string, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FarmChanged,
		Payload: domain.FarmChangedPayload{
			Revision:  revision,
			Action:    action,
			Timestamp: at.UnixMilli(),
		},
		Metadata: map[string]interface{}{
			"action": action,
		},
	}
}

// NewActionRejectedEvent creates a farm.rejected event
func NewActionRejectedEvent(action string, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActionRejected,
		Payload: domain.ActionRejectedPayload{
			Action: action,
			Reason: reason,
		},
		Metadata: map[string]interface{}{
			"action": action,
		},
	}
}

// NewTilesReadyEvent creates a tile.ready event
func NewTilesReadyEvent(indices []int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TilesReady,
		Payload: domain.TilesReadyPayload{
			Indices:   indices,
			Timestamp: at.UnixMilli(),
		},
	}
}

// NewLevelUpEvent creates a player.level_up event
func NewLevelUpEvent(noticeID string, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: domain.LevelUpPayload{
			NoticeID: noticeID,
			OldLevel: oldLevel,
			NewLevel: newLevel,
		},
	}
}

// NewQuestClaimedEvent creates a quest.claimed event
func NewQuestClaimedEvent(questID string, reward int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestClaimed,
		Payload: domain.QuestClaimedPayload{
			QuestID: questID,
			Reward:  reward,
		},
	}
}

// NewNoticeEvent creates a notice event
func NewNoticeEvent(n domain.NoticePayload) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Notice,
		Payload: n,
	}
}

// NewSessionChangedEvent creates a wallet.session event
func NewSessionChangedEvent(s domain.Session) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SessionChanged,
		Payload: s,
	}
}

// NewChainTransactionEvent creates a chain.transaction event
func NewChainTransactionEvent(p domain.ChainTransactionPayload) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ChainTransaction,
		Payload: p,
		Metadata: map[string]interface{}{
			"action":  p.Action,
			"outcome": p.Outcome,
		},
	}
}

// NewAmbienceChangedEvent creates an ambience.changed event
func NewAmbienceChangedEvent(p domain.AmbiencePayload) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AmbienceChanged,
		Payload: p,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously on the caller's goroutine and must not block.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
