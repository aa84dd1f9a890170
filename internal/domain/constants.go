package domain

import "time"

// Field and barn layout
const (
	GridCols  = 8
	GridRows  = 6
	FieldSize = GridCols * GridRows
	BarnSize  = 6
)

// Catalog identifiers - stable code identifiers shared with saves and the chain
const (
	CropWheat  = "wheat"
	CropCorn   = "corn"
	CropCarrot = "carrot"

	AnimalChicken = "chicken"
	AnimalCow     = "cow"

	ProductEgg  = "egg"
	ProductMilk = "milk"
)

// Quest stat keys
const (
	StatPlanted       = "planted"
	StatHarvested     = "harvested"
	StatEggsCollected = "eggsCollected"
	StatMilkCollected = "milkCollected"
)

// Starting values for a fresh farm
const (
	StartingArcCoins    = 50
	StartingWheatSeeds  = 4
	StartingCornSeeds   = 3
	StartingCarrotSeeds = 2
	StartingCropID      = CropWheat
)

// Timing
const (
	// EffectTTL is how long a transient tile effect stays visible.
	EffectTTL = 550 * time.Millisecond

	// LevelUpNoticeTTL is how long a level-up notice stays visible.
	LevelUpNoticeTTL = 2200 * time.Millisecond

	// FallbackGrowTime applies to growing tiles whose crop is not in the catalog.
	FallbackGrowTime = 10 * time.Second
)

// Seed pack sizes offered by the shop
const (
	SeedPackSingle = 1
	SeedPackTen    = 10
)
