package catalog

import "time"

// Crop is a plantable definition
type Crop struct {
	ID         string        `yaml:"id" json:"id"`
	Name       string        `yaml:"name" json:"name"`
	GrowTime   time.Duration `yaml:"grow_time" json:"-"`
	GrowTimeMs int64         `yaml:"-" json:"grow_time_ms"`
	BuyPrice   int64         `yaml:"buy_price" json:"buy_price"`
	SellPrice  int64         `yaml:"sell_price" json:"sell_price"`
	XPReward   int64         `yaml:"xp_reward" json:"xp_reward"`
	EmojiSeed  string        `yaml:"emoji_seed" json:"emoji_seed"`
	EmojiReady string        `yaml:"emoji_ready" json:"emoji_ready"`
	ChainID    uint8         `yaml:"chain_id" json:"chain_id"` // id used by the game contract
}

// Animal is a barn animal definition
type Animal struct {
	ID            string        `yaml:"id" json:"id"`
	Name          string        `yaml:"name" json:"name"`
	Emoji         string        `yaml:"emoji" json:"emoji"`
	BuyPrice      int64         `yaml:"buy_price" json:"buy_price"`
	ProduceID     string        `yaml:"produce_id" json:"produce_id"`
	ProduceTime   time.Duration `yaml:"produce_time" json:"-"`
	ProduceTimeMs int64         `yaml:"-" json:"produce_time_ms"`
}

// Product is a barn produce definition
type Product struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	Emoji     string `yaml:"emoji" json:"emoji"`
	SellPrice int64  `yaml:"sell_price" json:"sell_price"`
	XPReward  int64  `yaml:"xp_reward" json:"xp_reward"`
}

// Quest is a daily quest definition
type Quest struct {
	ID      string `yaml:"id" json:"id"`
	Label   string `yaml:"label" json:"label"`
	StatKey string `yaml:"stat_key" json:"stat_key"`
	Target  int    `yaml:"target" json:"target"`
	Reward  int64  `yaml:"reward" json:"reward"`
}

// Document is the on-disk shape of a catalog override file
type Document struct {
	Crops    []Crop    `yaml:"crops" json:"crops"`
	Animals  []Animal  `yaml:"animals" json:"animals"`
	Products []Product `yaml:"products" json:"products"`
	Quests   []Quest   `yaml:"quests" json:"quests"`
}

// Kind selects a catalog section for Resolve
type Kind string

const (
	KindCrop    Kind = "crop"
	KindAnimal  Kind = "animal"
	KindProduct Kind = "product"
	KindQuest   Kind = "quest"
)
