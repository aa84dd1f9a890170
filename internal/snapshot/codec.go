package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/validation"
)

type wireSnapshot struct {
	Version       int               `json:"version"`
	ArcCoins      int64             `json:"arcCoins"`
	XP            int64             `json:"xp"`
	Level         int               `json:"level"`
	NextLevelXP   int64             `json:"nextLevelXp"`
	Seeds         map[string]int    `json:"seeds"`
	Harvest       map[string]int    `json:"harvest"`
	Produce       map[string]int    `json:"produce"`
	Stats         domain.QuestStats `json:"stats"`
	ClaimedQuests map[string]bool   `json:"claimedQuests"`
	Field         []wireTile        `json:"field"`
	BarnSlots     []wireSlot        `json:"barnSlots"`
}

type wireTile struct {
	State     domain.TileState `json:"state"`
	PlantedAt *int64           `json:"plantedAt"`
	CropID    *string          `json:"cropId"`
}

type wireSlot struct {
	AnimalID        *string `json:"animalId"`
	StartedAt       *int64  `json:"startedAt"`
	LastCollectedAt *int64  `json:"lastCollectedAt"`
}

var schemas = validation.NewSchemaValidator()

// Encode serialises a snapshot in the current wire version
func Encode(snap domain.Snapshot) ([]byte, error) {
	w := wireSnapshot{
		Version:       CurrentVersion,
		ArcCoins:      snap.ArcCoins,
		XP:            snap.XP,
		Level:         snap.Level,
		NextLevelXP:   snap.NextLevelXP,
		Seeds:         counters(snap.Seeds),
		Harvest:       counters(snap.Harvest),
		Produce:       counters(snap.Produce),
		Stats:         snap.Stats,
		ClaimedQuests: make(map[string]bool, len(snap.ClaimedQuests)),
		Field:         make([]wireTile, 0, len(snap.Field)),
		BarnSlots:     make([]wireSlot, 0, len(snap.Barn)),
	}
	for id, claimed := range snap.ClaimedQuests {
		if claimed {
			w.ClaimedQuests[id] = true
		}
	}
	for _, tile := range snap.Field {
		wt := wireTile{State: tile.State, PlantedAt: toMillis(tile.PlantedAt)}
		if tile.CropID != "" {
			crop := tile.CropID
			wt.CropID = &crop
		}
		w.Field = append(w.Field, wt)
	}
	for _, slot := range snap.Barn {
		ws := wireSlot{StartedAt: toMillis(slot.StartedAt), LastCollectedAt: toMillis(slot.LastCollectedAt)}
		if slot.AnimalID != "" {
			animal := slot.AnimalID
			ws.AnimalID = &animal
		}
		w.BarnSlots = append(w.BarnSlots, ws)
	}

	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Validate checks a document strictly against the embedded snapshot schema
func Validate(raw []byte) error {
	if err := schemas.ValidateBytes(raw, validation.SchemaSnapshot); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	return nil
}

func counters(c domain.Counters) map[string]int {
	out := make(map[string]int, len(c))
	for id := range c {
		out[id] = c.Get(id)
	}
	return out
}

func toMillis(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func fromMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
