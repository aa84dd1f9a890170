package domain

// ChainProfile is the subset of progress stored by the progress contract
type ChainProfile struct {
	Coins       int64 `json:"coins"`
	XP          int64 `json:"xp"`
	Level       int   `json:"level"`
	WheatSeeds  int   `json:"wheat_seeds"`
	CornSeeds   int   `json:"corn_seeds"`
	CarrotSeeds int   `json:"carrot_seeds"`
	Eggs        int   `json:"eggs"`
	Milk        int   `json:"milk"`
	Chickens    int   `json:"chickens"`
	Cows        int   `json:"cows"`
}

// IsZero reports whether every field is zero
func (p ChainProfile) IsZero() bool {
	return p == ChainProfile{}
}

// Seeds returns the seed counters held in the profile
func (p ChainProfile) Seeds() Counters {
	return Counters{
		CropWheat:  p.WheatSeeds,
		CropCorn:   p.CornSeeds,
		CropCarrot: p.CarrotSeeds,
	}
}

// Produce returns the produce counters held in the profile
func (p ChainProfile) Produce() Counters {
	return Counters{
		ProductEgg:  p.Eggs,
		ProductMilk: p.Milk,
	}
}

// Session describes the wallet connection
type Session struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address,omitempty"`
}
