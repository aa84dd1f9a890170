package farm

import (
	"context"
	"fmt"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/event"
)

// SellHarvest sells the whole harvested stack of cropID
func (s *service) SellHarvest(ctx context.Context, cropID string) (Result, error) {
	return s.mutate(ctx, domain.ActionSellHarvest, func(st *state, tx *txn) error {
		crop, ok := s.catalog.Crop(cropID)
		if !ok {
			return domain.Rejectf("unknown crop %q", cropID)
		}
		n := st.harvest.Get(cropID)
		if n == 0 {
			return domain.Rejectf("no %s to sell", cropID)
		}

		gain := int64(n) * crop.SellPrice
		st.prog.ArcCoins += gain
		st.harvest[cropID] = 0
		tx.res.CoinsDelta = gain
		tx.touch()
		return nil
	})
}

// SellProduce sells the whole stack of a barn product
func (s *service) SellProduce(ctx context.Context, productID string) (Result, error) {
	return s.mutate(ctx, domain.ActionSellProduce, func(st *state, tx *txn) error {
		product, ok := s.catalog.Product(productID)
		if !ok {
			return domain.Rejectf("unknown product %q", productID)
		}
		n := st.produce.Get(productID)
		if n == 0 {
			return domain.Rejectf("no %s to sell", productID)
		}

		gain := int64(n) * product.SellPrice
		st.prog.ArcCoins += gain
		st.produce[productID] = 0
		tx.res.CoinsDelta = gain
		tx.touch()
		return nil
	})
}

// BuyAnimal places a newly bought animal into an empty barn slot
func (s *service) BuyAnimal(ctx context.Context, slot int, animalID string) (Result, error) {
	return s.mutate(ctx, domain.ActionBuyAnimal, func(st *state, tx *txn) error {
		if !validSlot(slot) {
			return fmt.Errorf("%w: %d", domain.ErrInvalidSlot, slot)
		}
		animal, ok := s.catalog.Animal(animalID)
		if !ok {
			return domain.Rejectf("unknown animal %q", animalID)
		}
		if st.barn[slot].Occupied() {
			return domain.Rejectf("barn slot %d is occupied", slot)
		}
		if st.prog.ArcCoins < animal.BuyPrice {
			return domain.Rejectf("%s costs %d, have %d", animalID, animal.BuyPrice, st.prog.ArcCoins)
		}

		st.barn[slot] = domain.BarnSlot{AnimalID: animalID, StartedAt: tx.now}
		st.prog.ArcCoins -= animal.BuyPrice
		tx.res.CoinsDelta = -animal.BuyPrice
		tx.touch()
		return nil
	})
}

// CollectProduce takes one unit of produce from a slot whose production cycle has elapsed
func (s *service) CollectProduce(ctx context.Context, slot int) (Result, error) {
	return s.mutate(ctx, domain.ActionCollectProduce, func(st *state, tx *txn) error {
		if !validSlot(slot) {
			return fmt.Errorf("%w: %d", domain.ErrInvalidSlot, slot)
		}
		bs := st.barn[slot]
		if !bs.Occupied() {
			return domain.Rejectf("barn slot %d is empty", slot)
		}
		animal, ok := s.catalog.Animal(bs.AnimalID)
		if !ok {
			return domain.Rejectf("unknown animal %q", bs.AnimalID)
		}
		base := bs.ProductionBase()
		if base.IsZero() {
			return domain.Rejectf("barn slot %d has no production clock", slot)
		}
		if tx.now.Sub(base) < animal.ProduceTime {
			return domain.Rejectf("%s in slot %d is not ready", animal.ID, slot)
		}

		st.barn[slot].LastCollectedAt = tx.now
		st.produce[animal.ProduceID] = st.produce.Get(animal.ProduceID) + 1
		switch animal.ProduceID {
		case domain.ProductEgg:
			st.stats.EggsCollected++
		case domain.ProductMilk:
			st.stats.MilkCollected++
		}
		if product, ok := s.catalog.Product(animal.ProduceID); ok {
			s.grantXP(st, tx, product.XPReward)
		}
		tx.touch()
		return nil
	})
}

// ClaimQuest credits a completed quest reward exactly once
func (s *service) ClaimQuest(ctx context.Context, questID string) (Result, error) {
	return s.mutate(ctx, domain.ActionClaimQuest, func(st *state, tx *txn) error {
		quest, ok := s.catalog.Quest(questID)
		if !ok {
			return domain.Rejectf("unknown quest %q", questID)
		}
		if st.claimed[questID] {
			return domain.Rejectf("quest %s already claimed", questID)
		}
		if progress := st.stats.Get(quest.StatKey); progress < quest.Target {
			return domain.Rejectf("quest %s at %d/%d", questID, progress, quest.Target)
		}

		st.prog.ArcCoins += quest.Reward
		st.claimed[questID] = true
		tx.res.CoinsDelta = quest.Reward
		tx.events = append(tx.events, event.NewQuestClaimedEvent(questID, quest.Reward))
		tx.touch()
		return nil
	})
}
