package farm

import (
	"sort"
	"time"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

// TileView is a rendered field tile
type TileView struct {
	Index            int              `json:"index"`
	State            domain.TileState `json:"state"`
	CropID           string           `json:"crop_id,omitempty"`
	Emoji            string           `json:"emoji,omitempty"`
	PlantedAtMs      int64            `json:"planted_at_ms,omitempty"`
	RemainingSeconds int              `json:"remaining_seconds,omitempty"`
}

// SlotView is a rendered barn slot
type SlotView struct {
	Index            int    `json:"index"`
	AnimalID         string `json:"animal_id,omitempty"`
	Emoji            string `json:"emoji,omitempty"`
	ProduceID        string `json:"produce_id,omitempty"`
	Ready            bool   `json:"ready"`
	RemainingSeconds int    `json:"remaining_seconds,omitempty"`
}

// QuestView is a rendered quest with progress
type QuestView struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Progress int    `json:"progress"`
	Target   int    `json:"target"`
	Reward   int64  `json:"reward"`
	Complete bool   `json:"complete"`
	Claimed  bool   `json:"claimed"`
}

// View is the read-only projection rendered by clients
type View struct {
	Revision     int64                 `json:"revision"`
	NowMs        int64                 `json:"now_ms"`
	Progression  domain.Progression    `json:"progression"`
	XPPercent    int                   `json:"xp_percent"`
	Mode         domain.Mode           `json:"mode"`
	SelectedCrop string                `json:"selected_crop"`
	PlayerIndex  int                   `json:"player_index"`
	Seeds        domain.Counters       `json:"seeds"`
	Harvest      domain.Counters       `json:"harvest"`
	Produce      domain.Counters       `json:"produce"`
	Stats        domain.QuestStats     `json:"stats"`
	Field        []TileView            `json:"field"`
	Barn         []SlotView            `json:"barn"`
	Quests       []QuestView           `json:"quests"`
	Effects      []domain.Effect       `json:"effects"`
	LevelUp      *domain.LevelUpNotice `json:"level_up,omitempty"`
}

// View derives countdowns, readiness and quest progress at the current time
func (s *service) View() View {
	now := s.clock.Now()

	s.mu.Lock()
	st := s.st
	snap := s.st.snapshot()
	s.mu.Unlock()

	v := View{
		Revision:     st.revision,
		NowMs:        now.UnixMilli(),
		Progression:  st.prog,
		XPPercent:    xpPercent(st.prog),
		Mode:         st.mode,
		SelectedCrop: st.selectedCrop,
		PlayerIndex:  st.playerIndex,
		Seeds:        snap.Seeds,
		Harvest:      snap.Harvest,
		Produce:      snap.Produce,
		Stats:        st.stats,
		Field:        make([]TileView, 0, domain.FieldSize),
		Barn:         make([]SlotView, 0, domain.BarnSize),
		Effects:      s.activeEffects(now),
	}

	for i, tile := range snap.Field {
		tv := TileView{Index: i, State: tile.State, CropID: tile.CropID}
		if crop, ok := s.catalog.Crop(tile.CropID); ok {
			switch tile.State {
			case domain.TilePlanted:
				tv.Emoji = crop.EmojiSeed
			case domain.TileGrowing:
				tv.Emoji = crop.EmojiSeed
				tv.PlantedAtMs = tile.PlantedAt.UnixMilli()
				tv.RemainingSeconds = ceilSeconds(crop.GrowTime - now.Sub(tile.PlantedAt))
			case domain.TileReady:
				tv.Emoji = crop.EmojiReady
			}
		}
		v.Field = append(v.Field, tv)
	}

	for i, slot := range snap.Barn {
		sv := SlotView{Index: i, AnimalID: slot.AnimalID}
		if animal, ok := s.catalog.Animal(slot.AnimalID); ok {
			sv.Emoji = animal.Emoji
			sv.ProduceID = animal.ProduceID
			left := animal.ProduceTime - now.Sub(slot.ProductionBase())
			sv.Ready = !slot.ProductionBase().IsZero() && left <= 0
			sv.RemainingSeconds = ceilSeconds(left)
		}
		v.Barn = append(v.Barn, sv)
	}

	for _, q := range s.catalog.Quests() {
		progress := st.stats.Get(q.StatKey)
		v.Quests = append(v.Quests, QuestView{
			ID:       q.ID,
			Label:    q.Label,
			Progress: min(progress, q.Target),
			Target:   q.Target,
			Reward:   q.Reward,
			Complete: progress >= q.Target,
			Claimed:  snap.ClaimedQuests[q.ID],
		})
	}

	if st.levelUp != nil && now.Before(st.levelUp.ExpiresAt) {
		notice := *st.levelUp
		v.LevelUp = &notice
	}

	return v
}

func (s *service) activeEffects(now time.Time) []domain.Effect {
	out := make([]domain.Effect, 0)
	for _, fx := range s.effects.Values() {
		if now.Sub(fx.CreatedAt) < domain.EffectTTL {
			out = append(out, fx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func xpPercent(p domain.Progression) int {
	if p.NextLevelXP <= 0 {
		return 0
	}
	return int(min(100, p.XP*100/p.NextLevelXP))
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
