package snapshot

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

type decoder struct {
	warnings []string
}

func (d *decoder) warn(format string, args ...any) {
	d.warnings = append(d.warnings, fmt.Sprintf(format, args...))
}

// Decode reads a snapshot tolerantly. Every recognised field is decoded on
// its own; malformed or unknown fields are skipped and reported as warnings.
// Only a document that is not a JSON object is an error.
func Decode(raw []byte) (domain.SnapshotPatch, []string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return domain.SnapshotPatch{}, nil, fmt.Errorf("%w: not a JSON object", domain.ErrInvalidSnapshot)
	}

	d := &decoder{}
	var patch domain.SnapshotPatch

	version := LegacyVersion
	if v, ok := doc[keyVersion]; ok {
		if n, ok := number(v); ok && n >= 0 {
			version = int(n)
		} else {
			d.warn(WarnMalformedField, keyVersion)
		}
	}
	if version > CurrentVersion {
		d.warn(WarnFutureVersion, version, CurrentVersion)
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		v := doc[key]
		switch key {
		case keyVersion:
		case keyArcCoins:
			patch.ArcCoins = d.int64Field(key, v)
		case keyXP:
			patch.XP = d.int64Field(key, v)
		case keyLevel:
			if n := d.int64Field(key, v); n != nil {
				level := int(*n)
				patch.Level = &level
			}
		case keyNextLevelXP:
			patch.NextLevelXP = d.int64Field(key, v)
		case keySeeds:
			patch.Seeds = d.counters(key, v)
		case keyHarvest:
			patch.Harvest = d.counters(key, v)
		case keyProduce:
			patch.Produce = d.counters(key, v)
		case keyStats:
			patch.Stats = d.stats(v)
		case keyClaimedQuests:
			patch.ClaimedQuests = d.claimed(v)
		case keyField:
			patch.Field = d.field(v)
		case keyBarnSlots:
			patch.Barn = d.barn(v)
		default:
			d.warn(WarnUnknownField, key)
		}
	}

	return patch, d.warnings, nil
}

// number accepts any finite JSON number and truncates it toward zero
func number(raw json.RawMessage) (int64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt64/2 {
		return 0, false
	}
	return int64(f), true
}

// millis reads an optional timestamp; null and zero mean "unset"
func millis(raw json.RawMessage) (int64, bool) {
	if raw == nil || string(raw) == "null" {
		return 0, true
	}
	return number(raw)
}

func (d *decoder) int64Field(key string, raw json.RawMessage) *int64 {
	n, ok := number(raw)
	if !ok {
		d.warn(WarnMalformedField, key)
		return nil
	}
	n = max(n, 0)
	return &n
}

func (d *decoder) object(key string, raw json.RawMessage) (map[string]json.RawMessage, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		d.warn(WarnMalformedField, key)
		return nil, false
	}
	return obj, true
}

func (d *decoder) counters(key string, raw json.RawMessage) domain.Counters {
	obj, ok := d.object(key, raw)
	if !ok {
		return nil
	}
	out := make(domain.Counters, len(obj))
	for id, v := range obj {
		n, ok := number(v)
		if !ok {
			d.warn(WarnMalformedEntry, key, id)
			continue
		}
		out[id] = int(max(n, 0))
	}
	return out
}

func (d *decoder) stats(raw json.RawMessage) *domain.QuestStats {
	obj, ok := d.object(keyStats, raw)
	if !ok {
		return nil
	}
	var stats domain.QuestStats
	targets := map[string]*int{
		domain.StatPlanted:       &stats.Planted,
		domain.StatHarvested:     &stats.Harvested,
		domain.StatEggsCollected: &stats.EggsCollected,
		domain.StatMilkCollected: &stats.MilkCollected,
	}
	for k, v := range obj {
		dst, known := targets[k]
		if !known {
			d.warn(WarnUnknownField, keyStats+"."+k)
			continue
		}
		n, ok := number(v)
		if !ok {
			d.warn(WarnMalformedEntry, keyStats, k)
			continue
		}
		*dst = int(max(n, 0))
	}
	return &stats
}

func (d *decoder) claimed(raw json.RawMessage) map[string]bool {
	obj, ok := d.object(keyClaimedQuests, raw)
	if !ok {
		return nil
	}
	out := make(map[string]bool, len(obj))
	for id, v := range obj {
		var b bool
		if err := json.Unmarshal(v, &b); err != nil {
			d.warn(WarnMalformedEntry, keyClaimedQuests, id)
			continue
		}
		out[id] = b
	}
	return out
}

func (d *decoder) array(key string, raw json.RawMessage) ([]json.RawMessage, bool) {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil || arr == nil {
		d.warn(WarnMalformedField, key)
		return nil, false
	}
	return arr, true
}

func (d *decoder) field(raw json.RawMessage) []domain.Tile {
	arr, ok := d.array(keyField, raw)
	if !ok {
		return nil
	}
	out := make([]domain.Tile, 0, len(arr))
	for i, elem := range arr {
		tile, ok := decodeTile(elem)
		if !ok {
			d.warn(WarnMalformedElement, keyField, i)
			tile = domain.EmptyTile()
		}
		out = append(out, tile)
	}
	return out
}

func decodeTile(raw json.RawMessage) (domain.Tile, bool) {
	var w struct {
		State     *string         `json:"state"`
		PlantedAt json.RawMessage `json:"plantedAt"`
		CropID    *string         `json:"cropId"`
	}
	if err := json.Unmarshal(raw, &w); err != nil || w.State == nil {
		return domain.Tile{}, false
	}
	ms, ok := millis(w.PlantedAt)
	if !ok {
		return domain.Tile{}, false
	}
	tile := domain.Tile{State: domain.TileState(*w.State), PlantedAt: fromMillis(ms)}
	if w.CropID != nil {
		tile.CropID = *w.CropID
	}
	return tile, true
}

func (d *decoder) barn(raw json.RawMessage) []domain.BarnSlot {
	arr, ok := d.array(keyBarnSlots, raw)
	if !ok {
		return nil
	}
	out := make([]domain.BarnSlot, 0, len(arr))
	for i, elem := range arr {
		slot, ok := decodeSlot(elem)
		if !ok {
			d.warn(WarnMalformedElement, keyBarnSlots, i)
			slot = domain.BarnSlot{}
		}
		out = append(out, slot)
	}
	return out
}

func decodeSlot(raw json.RawMessage) (domain.BarnSlot, bool) {
	var w struct {
		AnimalID        *string         `json:"animalId"`
		StartedAt       json.RawMessage `json:"startedAt"`
		LastCollectedAt json.RawMessage `json:"lastCollectedAt"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return domain.BarnSlot{}, false
	}
	started, ok := millis(w.StartedAt)
	if !ok {
		return domain.BarnSlot{}, false
	}
	collected, ok := millis(w.LastCollectedAt)
	if !ok {
		return domain.BarnSlot{}, false
	}
	slot := domain.BarnSlot{StartedAt: fromMillis(started), LastCollectedAt: fromMillis(collected)}
	if w.AnimalID != nil {
		slot.AnimalID = *w.AnimalID
	}
	return slot, true
}
