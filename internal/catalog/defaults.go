package catalog

import (
	"time"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

func defaultDocument() Document {
	return Document{
		Crops: []Crop{
			{ID: domain.CropWheat, Name: "Wheat", GrowTime: 20 * time.Second, BuyPrice: 3, SellPrice: 5, XPReward: 2, EmojiSeed: "🌱", EmojiReady: "🌾", ChainID: 1},
			{ID: domain.CropCorn, Name: "Corn", GrowTime: 3 * time.Minute, BuyPrice: 6, SellPrice: 12, XPReward: 6, EmojiSeed: "🌿", EmojiReady: "🌽", ChainID: 2},
			{ID: domain.CropCarrot, Name: "Carrot", GrowTime: 7 * time.Minute, BuyPrice: 5, SellPrice: 11, XPReward: 5, EmojiSeed: "🥕", EmojiReady: "🥕", ChainID: 3},
		},
		Animals: []Animal{
			{ID: domain.AnimalChicken, Name: "Chicken", Emoji: "🐔", BuyPrice: 25, ProduceID: domain.ProductEgg, ProduceTime: 10 * time.Minute},
			{ID: domain.AnimalCow, Name: "Cow", Emoji: "🐄", BuyPrice: 60, ProduceID: domain.ProductMilk, ProduceTime: 21 * time.Minute},
		},
		Products: []Product{
			{ID: domain.ProductEgg, Name: "Egg", Emoji: "🥚", SellPrice: 8, XPReward: 15},
			{ID: domain.ProductMilk, Name: "Milk", Emoji: "🥛", SellPrice: 15, XPReward: 24},
		},
		Quests: []Quest{
			{ID: "plant_10", Label: "Plant 10 crops", StatKey: domain.StatPlanted, Target: 10, Reward: 10},
			{ID: "harvest_5", Label: "Harvest 5 crops", StatKey: domain.StatHarvested, Target: 5, Reward: 15},
			{ID: "eggs_3", Label: "Collect 3 eggs", StatKey: domain.StatEggsCollected, Target: 3, Reward: 20},
		},
	}
}
