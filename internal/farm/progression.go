package farm

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/event"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

// GrantXP adds experience, leveling up as many times as the amount allows
func (s *service) GrantXP(ctx context.Context, amount int64) (Result, error) {
	res, err := s.mutate(ctx, domain.ActionGrantXP, func(st *state, tx *txn) error {
		if amount <= 0 {
			return domain.Rejectf("xp amount must be positive, got %d", amount)
		}
		s.grantXP(st, tx, amount)
		return nil
	})
	if res.LevelUp != nil {
		logger.FromContext(ctx).Info(LogMsgLevelUp, "level", res.LevelUp.Level)
	}
	return res, err
}

// grantXP levels against the threshold of the current level rather than the
// stored NextLevelXP, so repeated grants equal one grant of the sum.
func (s *service) grantXP(st *state, tx *txn, amount int64) {
	if amount <= 0 {
		return
	}

	oldLevel := st.prog.Level
	total := st.prog.XP + amount
	level := oldLevel
	need := domain.XPForLevelUp(level)
	for total >= need {
		total -= need
		level++
		need = domain.XPForLevelUp(level)
	}

	st.prog.XP = total
	tx.touch()
	if level == oldLevel {
		return
	}

	st.prog.Level = level
	st.prog.NextLevelXP = need
	notice := &domain.LevelUpNotice{
		ID:        uuid.NewString(),
		Level:     level,
		ExpiresAt: tx.now.Add(domain.LevelUpNoticeTTL),
	}
	st.levelUp = notice
	tx.res.LevelUp = notice
	tx.events = append(tx.events, event.NewLevelUpEvent(notice.ID, oldLevel, level))
}

// expireLevelUp clears the notice only if it is still the one identified by id
func expireLevelUp(st *state, id string) bool {
	if st.levelUp == nil || st.levelUp.ID != id {
		return false
	}
	st.levelUp = nil
	return true
}

// DismissLevelUp hides the level-up notice with the given id.
// A notice that was already superseded is left alone.
func (s *service) DismissLevelUp(ctx context.Context, noticeID string) (Result, error) {
	return s.mutate(ctx, domain.ActionDismissLevelUp, func(st *state, tx *txn) error {
		if expireLevelUp(st, noticeID) {
			tx.touch()
		}
		return nil
	})
}

// CreditSeeds adds n seeds of cropID
func (s *service) CreditSeeds(ctx context.Context, cropID string, n int) (Result, error) {
	return s.mutate(ctx, domain.ActionCreditSeeds, func(st *state, tx *txn) error {
		return s.creditSeeds(st, tx, cropID, n)
	})
}

func (s *service) creditSeeds(st *state, tx *txn, cropID string, n int) error {
	if _, ok := s.catalog.Crop(cropID); !ok {
		return domain.Rejectf("unknown crop %q", cropID)
	}
	if n <= 0 {
		return domain.Rejectf("seed amount must be positive, got %d", n)
	}
	st.seeds[cropID] = st.seeds.Get(cropID) + n
	tx.touch()
	return nil
}

// DebitCoins removes n coins, clamping the balance at zero
func (s *service) DebitCoins(ctx context.Context, n int64) (Result, error) {
	return s.mutate(ctx, domain.ActionDebitCoins, func(st *state, tx *txn) error {
		return s.debitCoins(ctx, st, tx, n)
	})
}

func (s *service) debitCoins(ctx context.Context, st *state, tx *txn, n int64) error {
	if n < 0 {
		return domain.Rejectf("debit must not be negative, got %d", n)
	}
	if n == 0 {
		return nil
	}
	debit := n
	if debit > st.prog.ArcCoins {
		logger.FromContext(ctx).Warn(LogMsgDebitClamped, "requested", n, "balance", st.prog.ArcCoins)
		debit = st.prog.ArcCoins
	}
	st.prog.ArcCoins -= debit
	tx.res.CoinsDelta -= debit
	tx.touch()
	return nil
}

// ApplyPurchase debits cost and credits n seeds as one change.
// It follows an accepted chain purchase, so a short balance is clamped rather than rejected.
func (s *service) ApplyPurchase(ctx context.Context, cropID string, n int, cost int64) (Result, error) {
	return s.mutate(ctx, domain.ActionPurchase, func(st *state, tx *txn) error {
		if _, ok := s.catalog.Crop(cropID); !ok {
			return domain.Rejectf("unknown crop %q", cropID)
		}
		if n <= 0 || cost < 0 {
			return fmt.Errorf("%w: purchase of %d seeds for %d", domain.ErrInvalidInput, n, cost)
		}
		if err := s.debitCoins(ctx, st, tx, cost); err != nil {
			return err
		}
		return s.creditSeeds(st, tx, cropID, n)
	})
}
