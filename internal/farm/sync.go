package farm

import (
	"context"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

// ApplyChainProfile overwrites coins, experience, level, seeds and produce
// with values read from the chain. Field, barn and harvest stay local.
func (s *service) ApplyChainProfile(ctx context.Context, profile domain.ChainProfile) (Result, error) {
	res, err := s.mutate(ctx, domain.ActionApplyChain, func(st *state, tx *txn) error {
		level := max(profile.Level, 0)
		st.prog = domain.Progression{
			ArcCoins:    max(profile.Coins, 0),
			XP:          max(profile.XP, 0),
			Level:       level,
			NextLevelXP: domain.XPForLevelUp(level),
		}
		st.seeds = profile.Seeds().Clone()
		st.produce = profile.Produce().Clone()
		tx.touch()
		return nil
	})
	if err == nil {
		logger.FromContext(ctx).Info(LogMsgChainApplied, "level", profile.Level, "coins", profile.Coins)
	}
	return res, err
}

// Reset restores starting coins, seeds and experience after a wallet disconnect.
// Field, barn, harvest, produce and quests are kept.
func (s *service) Reset(ctx context.Context) (Result, error) {
	res, err := s.mutate(ctx, domain.ActionReset, func(st *state, tx *txn) error {
		st.prog = domain.DefaultProgression()
		st.seeds = domain.DefaultSeeds()
		st.levelUp = nil
		tx.touch()
		return nil
	})
	logger.FromContext(ctx).Info(LogMsgReset)
	return res, err
}

// Restore applies the recognised fields of a snapshot. Setting a level also
// resets the next threshold unless the patch carries one explicitly. Tiles and
// slots that break the crop/animal invariants or reference unknown catalog
// entries are normalised to empty.
func (s *service) Restore(ctx context.Context, patch domain.SnapshotPatch) (Result, error) {
	var normalised int
	res, err := s.mutate(ctx, domain.ActionRestore, func(st *state, tx *txn) error {
		if patch.ArcCoins != nil {
			st.prog.ArcCoins = max(*patch.ArcCoins, 0)
		}
		if patch.XP != nil {
			st.prog.XP = max(*patch.XP, 0)
		}
		if patch.Level != nil {
			st.prog.Level = max(*patch.Level, 0)
			st.prog.NextLevelXP = domain.XPForLevelUp(st.prog.Level)
		}
		if patch.NextLevelXP != nil && *patch.NextLevelXP > 0 {
			st.prog.NextLevelXP = *patch.NextLevelXP
		}

		if patch.Seeds != nil {
			st.seeds = patch.Seeds.Clone()
		}
		if patch.Harvest != nil {
			st.harvest = patch.Harvest.Clone()
		}
		if patch.Produce != nil {
			st.produce = patch.Produce.Clone()
		}
		if patch.Stats != nil {
			st.stats = *patch.Stats
		}
		if patch.ClaimedQuests != nil {
			st.claimed = make(map[string]bool, len(patch.ClaimedQuests))
			for k, v := range patch.ClaimedQuests {
				if v {
					st.claimed[k] = true
				}
			}
		}

		if patch.Field != nil {
			for i := range st.field {
				tile := domain.EmptyTile()
				if i < len(patch.Field) {
					tile = patch.Field[i]
				}
				if !tile.Consistent() {
					tile = domain.EmptyTile()
					normalised++
				} else if tile.State != domain.TileEmpty {
					if _, ok := s.catalog.Crop(tile.CropID); !ok {
						tile = domain.EmptyTile()
						normalised++
					}
				}
				st.field[i] = tile
			}
		}

		if patch.Barn != nil {
			for i := range st.barn {
				var slot domain.BarnSlot
				if i < len(patch.Barn) {
					slot = patch.Barn[i]
				}
				if slot.Occupied() {
					if _, ok := s.catalog.Animal(slot.AnimalID); !ok {
						slot = domain.BarnSlot{}
						normalised++
					}
				}
				st.barn[i] = slot
			}
		}

		tx.touch()
		return nil
	})
	if err == nil {
		logger.FromContext(ctx).Info(LogMsgRestored, "revision", res.Revision, "normalised", normalised)
	}
	return res, err
}
