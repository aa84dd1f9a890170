package farm

import (
	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

// state is the mutable farm, guarded by service.mu
type state struct {
	revision int64

	prog    domain.Progression
	seeds   domain.Counters
	harvest domain.Counters
	produce domain.Counters
	stats   domain.QuestStats
	claimed map[string]bool

	field [domain.FieldSize]domain.Tile
	barn  [domain.BarnSize]domain.BarnSlot

	playerIndex  int
	mode         domain.Mode
	selectedCrop string

	levelUp *domain.LevelUpNotice
}

func newState() state {
	st := state{
		prog:         domain.DefaultProgression(),
		seeds:        domain.DefaultSeeds(),
		harvest:      domain.Counters{},
		produce:      domain.DefaultProduce(),
		claimed:      map[string]bool{},
		mode:         domain.ModePlant,
		selectedCrop: domain.StartingCropID,
	}
	for i := range st.field {
		st.field[i] = domain.EmptyTile()
	}
	return st
}

func (st *state) snapshot() domain.Snapshot {
	claimed := make(map[string]bool, len(st.claimed))
	for k, v := range st.claimed {
		claimed[k] = v
	}
	return domain.Snapshot{
		Progression:   st.prog,
		Seeds:         st.seeds.Clone(),
		Harvest:       st.harvest.Clone(),
		Produce:       st.produce.Clone(),
		Stats:         st.stats,
		ClaimedQuests: claimed,
		Field:         append([]domain.Tile(nil), st.field[:]...),
		Barn:          append([]domain.BarnSlot(nil), st.barn[:]...),
	}
}

func validTile(i int) bool { return i >= 0 && i < domain.FieldSize }

func validSlot(i int) bool { return i >= 0 && i < domain.BarnSize }
