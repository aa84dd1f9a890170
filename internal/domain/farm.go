package domain

import "time"

// TileState is the lifecycle stage of a field tile
type TileState string

const (
	TileEmpty   TileState = "empty"
	TilePlanted TileState = "planted"
	TileGrowing TileState = "growing"
	TileReady   TileState = "ready"
)

// Valid reports whether s is a known tile state
func (s TileState) Valid() bool {
	switch s {
	case TileEmpty, TilePlanted, TileGrowing, TileReady:
		return true
	}
	return false
}

// Tile is one cell of the field.
// CropID is set iff State != TileEmpty. PlantedAt is zero until the tile is watered.
type Tile struct {
	State     TileState `json:"state"`
	PlantedAt time.Time `json:"planted_at"`
	CropID    string    `json:"crop_id,omitempty"`
}

// EmptyTile returns a fresh unplanted tile
func EmptyTile() Tile {
	return Tile{State: TileEmpty}
}

// Consistent reports whether the tile satisfies the crop/state invariant
func (t Tile) Consistent() bool {
	if !t.State.Valid() {
		return false
	}
	if t.State == TileEmpty {
		return t.CropID == ""
	}
	return t.CropID != ""
}

// BarnSlot houses at most one animal
type BarnSlot struct {
	AnimalID        string    `json:"animal_id,omitempty"`
	StartedAt       time.Time `json:"started_at"`
	LastCollectedAt time.Time `json:"last_collected_at"`
}

// Occupied reports whether an animal lives in the slot
func (s BarnSlot) Occupied() bool {
	return s.AnimalID != ""
}

// ProductionBase is the instant the current production cycle started
func (s BarnSlot) ProductionBase() time.Time {
	if s.LastCollectedAt.After(s.StartedAt) {
		return s.LastCollectedAt
	}
	return s.StartedAt
}

// Mode selects what a tile click does
type Mode string

const (
	ModePlant   Mode = "plant"
	ModeWater   Mode = "water"
	ModeHarvest Mode = "harvest"
)

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	switch m {
	case ModePlant, ModeWater, ModeHarvest:
		return true
	}
	return false
}

// Direction moves the player marker across the grid
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

// Progression holds currency and experience
type Progression struct {
	ArcCoins    int64 `json:"arc_coins"`
	XP          int64 `json:"xp"`
	Level       int   `json:"level"`
	NextLevelXP int64 `json:"next_level_xp"`
}

// XPForLevelUp returns the experience needed to advance past level
func XPForLevelUp(level int) int64 {
	l := int64(level)
	return 30 + 20*l + 10*l*l
}

// DefaultProgression is the progression of a fresh farm
func DefaultProgression() Progression {
	return Progression{
		ArcCoins:    StartingArcCoins,
		NextLevelXP: XPForLevelUp(0),
	}
}

// QuestStats counts quest-relevant actions
type QuestStats struct {
	Planted       int `json:"planted"`
	Harvested     int `json:"harvested"`
	EggsCollected int `json:"eggsCollected"`
	MilkCollected int `json:"milkCollected"`
}

// Get returns the counter for a quest stat key, or 0 when unknown
func (s QuestStats) Get(key string) int {
	switch key {
	case StatPlanted:
		return s.Planted
	case StatHarvested:
		return s.Harvested
	case StatEggsCollected:
		return s.EggsCollected
	case StatMilkCollected:
		return s.MilkCollected
	}
	return 0
}

// Counters maps catalog ids to quantities
type Counters map[string]int

// Get returns the quantity for id, clamped to be non-negative
func (c Counters) Get(id string) int {
	if n := c[id]; n > 0 {
		return n
	}
	return 0
}

// Clone returns an independent copy with negative entries clamped to zero
func (c Counters) Clone() Counters {
	out := make(Counters, len(c))
	for k, v := range c {
		if v < 0 {
			v = 0
		}
		out[k] = v
	}
	return out
}

// DefaultSeeds is the seed bag of a fresh farm
func DefaultSeeds() Counters {
	return Counters{
		CropWheat:  StartingWheatSeeds,
		CropCorn:   StartingCornSeeds,
		CropCarrot: StartingCarrotSeeds,
	}
}

// DefaultProduce is the produce shelf of a fresh farm
func DefaultProduce() Counters {
	return Counters{ProductEgg: 0, ProductMilk: 0}
}

// EffectType names a transient tile effect
type EffectType string

const (
	EffectPlant   EffectType = "plant"
	EffectWater   EffectType = "water"
	EffectHarvest EffectType = "harvest"
)

// Effect is a short-lived visual marker on a tile
type Effect struct {
	ID        string     `json:"id"`
	TileIndex int        `json:"tile_index"`
	Type      EffectType `json:"type"`
	CreatedAt time.Time  `json:"-"`
}

// LevelUpNotice announces a level gain until ExpiresAt
type LevelUpNotice struct {
	ID        string    `json:"id"`
	Level     int       `json:"level"`
	ExpiresAt time.Time `json:"expires_at"`
}
