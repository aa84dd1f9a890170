package farm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/event"
)

// Plant puts a seed of cropID into an empty tile
func (s *service) Plant(ctx context.Context, index int, cropID string) (Result, error) {
	return s.mutate(ctx, domain.ActionPlant, func(st *state, tx *txn) error {
		return s.plant(st, tx, index, cropID)
	})
}

// Water starts growth of a planted tile
func (s *service) Water(ctx context.Context, index int) (Result, error) {
	return s.mutate(ctx, domain.ActionWater, func(st *state, tx *txn) error {
		return s.water(st, tx, index)
	})
}

// Harvest collects a ready tile
func (s *service) Harvest(ctx context.Context, index int) (Result, error) {
	return s.mutate(ctx, domain.ActionHarvest, func(st *state, tx *txn) error {
		return s.harvestTile(st, tx, index)
	})
}

// Click moves the player marker to index and applies the current mode with the selected crop
func (s *service) Click(ctx context.Context, index int) (Result, error) {
	return s.mutate(ctx, domain.ActionClick, func(st *state, tx *txn) error {
		if !validTile(index) {
			return fmt.Errorf("%w: %d", domain.ErrInvalidTile, index)
		}
		if st.playerIndex != index {
			st.playerIndex = index
			tx.touch()
		}

		switch st.mode {
		case domain.ModeWater:
			return s.water(st, tx, index)
		case domain.ModeHarvest:
			return s.harvestTile(st, tx, index)
		default:
			return s.plant(st, tx, index, st.selectedCrop)
		}
	})
}

func (s *service) plant(st *state, tx *txn, index int, cropID string) error {
	if !validTile(index) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidTile, index)
	}
	if _, ok := s.catalog.Crop(cropID); !ok {
		return domain.Rejectf("unknown crop %q", cropID)
	}
	if st.field[index].State != domain.TileEmpty {
		return domain.Rejectf("tile %d is not empty", index)
	}
	if st.seeds.Get(cropID) <= 0 {
		return domain.Rejectf("no %s seeds left", cropID)
	}

	st.seeds[cropID] = st.seeds.Get(cropID) - 1
	st.field[index] = domain.Tile{State: domain.TilePlanted, CropID: cropID}
	st.stats.Planted++
	s.addEffect(tx, index, domain.EffectPlant)
	tx.res.Tiles = []int{index}
	tx.touch()
	return nil
}

func (s *service) water(st *state, tx *txn, index int) error {
	if !validTile(index) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidTile, index)
	}
	tile := st.field[index]
	if tile.State != domain.TilePlanted || tile.CropID == "" {
		return domain.Rejectf("tile %d is not waiting for water", index)
	}

	st.field[index] = domain.Tile{State: domain.TileGrowing, CropID: tile.CropID, PlantedAt: tx.now}
	s.addEffect(tx, index, domain.EffectWater)
	tx.res.Tiles = []int{index}
	tx.touch()
	return nil
}

func (s *service) harvestTile(st *state, tx *txn, index int) error {
	if !validTile(index) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidTile, index)
	}
	tile := st.field[index]
	if tile.State != domain.TileReady || tile.CropID == "" {
		return domain.Rejectf("tile %d is not ready", index)
	}

	st.harvest[tile.CropID] = st.harvest.Get(tile.CropID) + 1
	if crop, ok := s.catalog.Crop(tile.CropID); ok {
		s.grantXP(st, tx, crop.XPReward)
	}
	st.stats.Harvested++
	st.field[index] = domain.EmptyTile()
	s.addEffect(tx, index, domain.EffectHarvest)
	tx.res.Tiles = []int{index}
	tx.touch()
	return nil
}

// Move shifts the player marker, clamped to the grid
func (s *service) Move(ctx context.Context, dir domain.Direction) (Result, error) {
	return s.mutate(ctx, domain.ActionMove, func(st *state, tx *txn) error {
		idx := st.playerIndex
		switch dir {
		case domain.DirectionLeft:
			idx = max(0, idx-1)
		case domain.DirectionRight:
			idx = min(domain.FieldSize-1, idx+1)
		case domain.DirectionUp:
			idx = max(0, idx-domain.GridCols)
		case domain.DirectionDown:
			idx = min(domain.FieldSize-1, idx+domain.GridCols)
		default:
			return fmt.Errorf("%w: direction %q", domain.ErrInvalidInput, dir)
		}
		if idx != st.playerIndex {
			st.playerIndex = idx
			tx.touch()
		}
		return nil
	})
}

// SetMode selects what a click does
func (s *service) SetMode(ctx context.Context, mode domain.Mode) (Result, error) {
	return s.mutate(ctx, domain.ActionSetMode, func(st *state, tx *txn) error {
		if !mode.Valid() {
			return fmt.Errorf("%w: mode %q", domain.ErrInvalidInput, mode)
		}
		if st.mode != mode {
			st.mode = mode
			tx.touch()
		}
		return nil
	})
}

// SelectCrop selects the crop planted by clicks
func (s *service) SelectCrop(ctx context.Context, cropID string) (Result, error) {
	return s.mutate(ctx, domain.ActionSelectCrop, func(st *state, tx *txn) error {
		if _, ok := s.catalog.Crop(cropID); !ok {
			return domain.Rejectf("unknown crop %q", cropID)
		}
		if st.selectedCrop != cropID {
			st.selectedCrop = cropID
			tx.touch()
		}
		return nil
	})
}

// Tick promotes growing tiles whose grow time has elapsed at now and expires
// a stale level-up notice. Repeated ticks are no-ops.
func (s *service) Tick(ctx context.Context, now time.Time) (Result, error) {
	return s.mutateAt(ctx, domain.ActionTick, now, func(st *state, tx *txn) error {
		var ready []int
		for i, tile := range st.field {
			if tile.State != domain.TileGrowing || tile.CropID == "" {
				continue
			}
			growTime := domain.FallbackGrowTime
			if crop, ok := s.catalog.Crop(tile.CropID); ok {
				growTime = crop.GrowTime
			}
			if now.Sub(tile.PlantedAt) >= growTime {
				st.field[i].State = domain.TileReady
				ready = append(ready, i)
			}
		}
		if len(ready) > 0 {
			tx.res.Tiles = ready
			tx.events = append(tx.events, event.NewTilesReadyEvent(ready, now))
			tx.touch()
		}

		if st.levelUp != nil && !now.Before(st.levelUp.ExpiresAt) {
			if expireLevelUp(st, st.levelUp.ID) {
				tx.touch()
			}
		}
		return nil
	})
}

func (s *service) addEffect(tx *txn, index int, typ domain.EffectType) {
	fx := domain.Effect{
		ID:        uuid.NewString(),
		TileIndex: index,
		Type:      typ,
		CreatedAt: tx.now,
	}
	s.effects.Add(fx.ID, fx)
}
