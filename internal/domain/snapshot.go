package domain

// Snapshot is the full persisted state of a farm
type Snapshot struct {
	Progression
	Seeds         Counters
	Harvest       Counters
	Produce       Counters
	Stats         QuestStats
	ClaimedQuests map[string]bool
	Field         []Tile
	Barn          []BarnSlot
}

// SnapshotPatch carries the recognised subset of a snapshot.
// Nil fields were absent or malformed and leave current state untouched.
type SnapshotPatch struct {
	ArcCoins      *int64
	XP            *int64
	Level         *int
	NextLevelXP   *int64
	Seeds         Counters
	Harvest       Counters
	Produce       Counters
	Stats         *QuestStats
	ClaimedQuests map[string]bool
	Field         []Tile
	Barn          []BarnSlot
}

// Patch converts a full snapshot into a patch that replaces every field
func (s Snapshot) Patch() SnapshotPatch {
	coins, xp, level, next := s.ArcCoins, s.XP, s.Level, s.NextLevelXP
	stats := s.Stats
	return SnapshotPatch{
		ArcCoins:      &coins,
		XP:            &xp,
		Level:         &level,
		NextLevelXP:   &next,
		Seeds:         s.Seeds,
		Harvest:       s.Harvest,
		Produce:       s.Produce,
		Stats:         &stats,
		ClaimedQuests: s.ClaimedQuests,
		Field:         s.Field,
		Barn:          s.Barn,
	}
}
