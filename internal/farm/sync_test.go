package farm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcFarmia_Go/internal/catalog"
	"github.com/osse101/ArcFarmia_Go/internal/clock"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, clk, _ := newTestFarm(t)

	growAndHarvest(t, svc, clk.Advance, 0, domain.CropWheat, 20*time.Second)
	_, _ = svc.Plant(ctx, 1, domain.CropCorn)
	_, _ = svc.Plant(ctx, 2, domain.CropCarrot)
	_, _ = svc.Water(ctx, 2)
	_, _ = svc.BuyAnimal(ctx, 4, domain.AnimalChicken)
	_, _ = svc.GrantXP(ctx, 40)

	snap := svc.Snapshot()

	fresh := NewService(catalog.Default(), clock.NewSimulatedClock(t0), nil)
	_, err := fresh.Restore(ctx, snap.Patch())
	require.NoError(t, err)

	assert.Equal(t, snap, fresh.Snapshot())
}

func TestRestore_LevelAndThreshold(t *testing.T) {
	ctx := context.Background()
	level := 3
	next := int64(999)

	svc, _, _ := newTestFarm(t)
	_, err := svc.Restore(ctx, domain.SnapshotPatch{Level: &level})
	require.NoError(t, err)
	assert.Equal(t, domain.XPForLevelUp(3), svc.Progression().NextLevelXP)

	_, err = svc.Restore(ctx, domain.SnapshotPatch{Level: &level, NextLevelXP: &next})
	require.NoError(t, err)
	assert.Equal(t, int64(999), svc.Progression().NextLevelXP)
}

func TestRestore_PartialLeavesOtherFields(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestFarm(t)
	coins := int64(123)

	_, err := svc.Restore(ctx, domain.SnapshotPatch{ArcCoins: &coins})
	require.NoError(t, err)

	snap := svc.Snapshot()
	assert.Equal(t, int64(123), snap.ArcCoins)
	assert.Equal(t, domain.DefaultSeeds(), snap.Seeds)
	assert.Len(t, snap.Field, domain.FieldSize)
}

func TestRestore_NormalisesBadTilesAndSlots(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestFarm(t)

	field := []domain.Tile{
		{State: domain.TileReady, CropID: domain.CropCorn},
		{State: domain.TileGrowing},                         // no crop
		{State: domain.TileEmpty, CropID: domain.CropWheat}, // crop on empty
		{State: domain.TilePlanted, CropID: "moonflower"},   // unknown crop
		{State: "withered", CropID: domain.CropWheat},       // unknown state
	}
	barn := []domain.BarnSlot{
		{AnimalID: domain.AnimalCow, StartedAt: t0},
		{AnimalID: "dragon", StartedAt: t0},
	}

	_, err := svc.Restore(ctx, domain.SnapshotPatch{Field: field, Barn: barn, Seeds: domain.Counters{domain.CropWheat: -4}})
	require.NoError(t, err)

	snap := svc.Snapshot()
	require.Len(t, snap.Field, domain.FieldSize, "short fields are padded")
	assert.Equal(t, domain.TileReady, snap.Field[0].State)
	for i := 1; i < domain.FieldSize; i++ {
		assert.Equal(t, domain.EmptyTile(), snap.Field[i], "tile %d", i)
	}
	assert.Equal(t, domain.AnimalCow, snap.Barn[0].AnimalID)
	assert.False(t, snap.Barn[1].Occupied())
	assert.Equal(t, 0, snap.Seeds[domain.CropWheat], "negative counters are clamped")
}

func TestReset_KeepsFieldAndBarn(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestFarm(t)

	_, _ = svc.Plant(ctx, 0, domain.CropWheat)
	_, _ = svc.BuyAnimal(ctx, 0, domain.AnimalChicken)
	_, _ = svc.GrantXP(ctx, 100)

	_, err := svc.Reset(ctx)
	require.NoError(t, err)

	snap := svc.Snapshot()
	assert.Equal(t, domain.DefaultProgression(), snap.Progression)
	assert.Equal(t, domain.DefaultSeeds(), snap.Seeds)
	assert.Equal(t, domain.TilePlanted, snap.Field[0].State)
	assert.True(t, snap.Barn[0].Occupied())
	assert.Nil(t, svc.View().LevelUp)
}

func TestApplyChainProfile(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestFarm(t)
	_, _ = svc.Plant(ctx, 0, domain.CropWheat)

	_, err := svc.ApplyChainProfile(ctx, domain.ChainProfile{
		Coins: 0, XP: 12, Level: 4,
		WheatSeeds: 9, CornSeeds: 0, CarrotSeeds: 1,
		Eggs: 2, Milk: 3, Chickens: 1, Cows: 1,
	})
	require.NoError(t, err)

	snap := svc.Snapshot()
	assert.Equal(t, int64(0), snap.ArcCoins, "zero coins stay zero")
	assert.Equal(t, int64(12), snap.XP)
	assert.Equal(t, 4, snap.Level)
	assert.Equal(t, domain.XPForLevelUp(4), snap.NextLevelXP)
	assert.Equal(t, domain.Counters{domain.CropWheat: 9, domain.CropCorn: 0, domain.CropCarrot: 1}, snap.Seeds)
	assert.Equal(t, domain.Counters{domain.ProductEgg: 2, domain.ProductMilk: 3}, snap.Produce)
	assert.Equal(t, domain.TilePlanted, snap.Field[0].State, "field stays local")
}
