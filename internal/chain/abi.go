package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// GameABI covers the seed shop and daily claim of the game contract
const GameABI = `[
	{"type":"function","name":"buySeeds","stateMutability":"nonpayable",
	 "inputs":[{"internalType":"uint8","name":"cropId","type":"uint8"},{"internalType":"uint256","name":"amount","type":"uint256"}],
	 "outputs":[]},
	{"type":"function","name":"claimDailySeeds","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"function","name":"dailySeedCropId","stateMutability":"view","inputs":[],
	 "outputs":[{"internalType":"uint8","name":"","type":"uint8"}]},
	{"type":"function","name":"dailySeedAmount","stateMutability":"view","inputs":[],
	 "outputs":[{"internalType":"uint16","name":"","type":"uint16"}]}
]`

// ProgressABI covers the player progress contract
const ProgressABI = `[
	{"type":"function","name":"savePlayer","stateMutability":"nonpayable",
	 "inputs":[
		{"internalType":"uint256","name":"coins","type":"uint256"},
		{"internalType":"uint256","name":"xp","type":"uint256"},
		{"internalType":"uint16","name":"level","type":"uint16"},
		{"internalType":"uint16","name":"wheatSeeds","type":"uint16"},
		{"internalType":"uint16","name":"cornSeeds","type":"uint16"},
		{"internalType":"uint16","name":"carrotSeeds","type":"uint16"},
		{"internalType":"uint16","name":"eggs","type":"uint16"},
		{"internalType":"uint16","name":"milk","type":"uint16"},
		{"internalType":"uint16","name":"chickens","type":"uint16"},
		{"internalType":"uint16","name":"cows","type":"uint16"}],
	 "outputs":[]},
	{"type":"function","name":"getPlayer","stateMutability":"view",
	 "inputs":[{"internalType":"address","name":"player","type":"address"}],
	 "outputs":[{"internalType":"struct ArcFarmiaProgress.PlayerProgress","name":"","type":"tuple",
		"components":[
			{"internalType":"uint256","name":"coins","type":"uint256"},
			{"internalType":"uint256","name":"xp","type":"uint256"},
			{"internalType":"uint16","name":"level","type":"uint16"},
			{"internalType":"uint16","name":"wheatSeeds","type":"uint16"},
			{"internalType":"uint16","name":"cornSeeds","type":"uint16"},
			{"internalType":"uint16","name":"carrotSeeds","type":"uint16"},
			{"internalType":"uint16","name":"eggs","type":"uint16"},
			{"internalType":"uint16","name":"milk","type":"uint16"},
			{"internalType":"uint16","name":"chickens","type":"uint16"},
			{"internalType":"uint16","name":"cows","type":"uint16"}]}]}
]`

// Contract methods
const (
	MethodBuySeeds        = "buySeeds"
	MethodClaimDailySeeds = "claimDailySeeds"
	MethodDailySeedCropID = "dailySeedCropId"
	MethodDailySeedAmount = "dailySeedAmount"
	MethodSavePlayer      = "savePlayer"
	MethodGetPlayer       = "getPlayer"
)

var (
	gameABI     = mustParseABI(GameABI)
	progressABI = mustParseABI(ProgressABI)
)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return parsed
}
