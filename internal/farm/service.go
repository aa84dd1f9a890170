package farm

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ArcFarmia_Go/internal/catalog"
	"github.com/osse101/ArcFarmia_Go/internal/clock"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/event"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

// Result describes the outcome of one intent
type Result struct {
	Applied    bool                  `json:"applied"`
	Action     string                `json:"action"`
	Revision   int64                 `json:"revision"`
	Reason     string                `json:"reason,omitempty"`
	Tiles      []int                 `json:"tiles,omitempty"`
	CoinsDelta int64                 `json:"coins_delta,omitempty"`
	LevelUp    *domain.LevelUpNotice `json:"level_up,omitempty"`
}

// Service is the game state store. All mutations are serialised; a rejected
// intent returns an error wrapping domain.ErrActionRejected and leaves state untouched.
type Service interface {
	// Field
	Plant(ctx context.Context, index int, cropID string) (Result, error)
	Water(ctx context.Context, index int) (Result, error)
	Harvest(ctx context.Context, index int) (Result, error)
	Click(ctx context.Context, index int) (Result, error)
	Move(ctx context.Context, dir domain.Direction) (Result, error)
	SetMode(ctx context.Context, mode domain.Mode) (Result, error)
	SelectCrop(ctx context.Context, cropID string) (Result, error)
	Tick(ctx context.Context, now time.Time) (Result, error)

	// Market, barn and quests
	SellHarvest(ctx context.Context, cropID string) (Result, error)
	SellProduce(ctx context.Context, productID string) (Result, error)
	BuyAnimal(ctx context.Context, slot int, animalID string) (Result, error)
	CollectProduce(ctx context.Context, slot int) (Result, error)
	ClaimQuest(ctx context.Context, questID string) (Result, error)

	// Progression
	GrantXP(ctx context.Context, amount int64) (Result, error)
	DismissLevelUp(ctx context.Context, noticeID string) (Result, error)
	CreditSeeds(ctx context.Context, cropID string, n int) (Result, error)
	DebitCoins(ctx context.Context, n int64) (Result, error)
	ApplyPurchase(ctx context.Context, cropID string, n int, cost int64) (Result, error)
	ApplyChainProfile(ctx context.Context, profile domain.ChainProfile) (Result, error)
	Reset(ctx context.Context) (Result, error)

	// Persistence and projection
	Snapshot() domain.Snapshot
	Restore(ctx context.Context, patch domain.SnapshotPatch) (Result, error)
	Progression() domain.Progression
	Revision() int64
	View() View
}

type service struct {
	mu sync.Mutex
	st state

	catalog *catalog.Catalog
	clock   clock.Clock
	bus     event.Bus
	effects *expirable.LRU[string, domain.Effect]
}

// NewService creates a farm with default starting values.
// bus may be nil when no one listens for changes.
func NewService(cat *catalog.Catalog, clk clock.Clock, bus event.Bus) Service {
	return &service{
		st:      newState(),
		catalog: cat,
		clock:   clk,
		bus:     bus,
		effects: expirable.NewLRU[string, domain.Effect](effectCacheSize, nil, domain.EffectTTL),
	}
}

// txn collects the side effects of one mutation
type txn struct {
	now     time.Time
	res     Result
	changed bool
	events  []event.Event
}

func (tx *txn) touch() { tx.changed = true }

func (s *service) mutate(ctx context.Context, action string, fn func(st *state, tx *txn) error) (Result, error) {
	return s.mutateAt(ctx, action, s.clock.Now(), fn)
}

func (s *service) mutateAt(ctx context.Context, action string, now time.Time, fn func(st *state, tx *txn) error) (Result, error) {
	tx := &txn{now: now, res: Result{Action: action}}

	s.mu.Lock()
	err := fn(&s.st, tx)
	if tx.changed {
		s.st.revision++
	}
	tx.res.Revision = s.st.revision
	s.mu.Unlock()

	events := tx.events
	if tx.changed {
		changeAction := action
		if err != nil {
			// only the marker moved
			changeAction = domain.ActionMove
		}
		events = append([]event.Event{event.NewFarmChangedEvent(tx.res.Revision, changeAction, now)}, events...)
	}

	if err != nil {
		tx.res.Reason = err.Error()
		if errors.Is(err, domain.ErrActionRejected) {
			logger.FromContext(ctx).Debug(LogMsgActionRejected, "action", action, "reason", err)
			events = append(events, event.NewActionRejectedEvent(action, err.Error()))
		}
		s.publish(ctx, events)
		return tx.res, err
	}

	tx.res.Applied = tx.changed
	s.publish(ctx, events)
	return tx.res, nil
}

func (s *service) publish(ctx context.Context, events []event.Event) {
	if s.bus == nil {
		return
	}
	for _, evt := range events {
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}
}

// Snapshot returns a deep copy of the persisted state
func (s *service) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.snapshot()
}

// Progression returns the current currency and experience
func (s *service) Progression() domain.Progression {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.prog
}

// Revision increases by one for every applied mutation
func (s *service) Revision() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.revision
}
