package chain

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

// Progress reads and writes the player profile kept on chain
type Progress interface {
	GetPlayer(ctx context.Context, player common.Address) (domain.ChainProfile, error)
	SavePlayer(ctx context.Context, profile domain.ChainProfile) (TxHandle, error)
}

// Game is the seed shop contract
type Game interface {
	BuySeeds(ctx context.Context, cropID uint8, amount int) (TxHandle, error)
	ClaimDailySeeds(ctx context.Context) (TxHandle, error)
	DailySeedCropID(ctx context.Context) (uint8, error)
	DailySeedAmount(ctx context.Context) (int, error)
}

// contract binds one address to an ABI and an optional signer
type contract struct {
	bound   *bind.BoundContract
	backend Backend
	wallet  Wallet
}

func newContract(address string, parsed abi.ABI, backend Backend, wallet Wallet) (*contract, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %s: %q", domain.ErrInvalidInput, ErrMsgInvalidAddress, address)
	}
	addr := common.HexToAddress(address)
	return &contract{
		bound:   bind.NewBoundContract(addr, parsed, backend, backend, backend),
		backend: backend,
		wallet:  wallet,
	}, nil
}

func (c *contract) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	var out []interface{}
	if err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrChainUnavailable, ErrMsgCallFailed, method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %s", ErrMsgUnexpectedOutput, method)
	}
	return out, nil
}

func (c *contract) transact(ctx context.Context, method string, args ...interface{}) (TxHandle, error) {
	if c.wallet == nil {
		return nil, domain.ErrWalletUnavailable
	}
	opts, err := c.wallet.Transactor(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := c.bound.Transact(opts, method, args...)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgTransactFailed, method, err)
	}
	logger.FromContext(ctx).Info(LogMsgTransactionSent, "method", method, "tx_hash", tx.Hash().Hex())
	return &txHandle{backend: c.backend, tx: tx}, nil
}

// ProgressContract is the progress contract binding
type ProgressContract struct {
	*contract
}

// NewProgressContract binds the progress contract. wallet may be nil for a
// read-only binding.
func NewProgressContract(address string, backend Backend, wallet Wallet) (*ProgressContract, error) {
	c, err := newContract(address, progressABI, backend, wallet)
	if err != nil {
		return nil, err
	}
	return &ProgressContract{contract: c}, nil
}

// playerProgress mirrors ArcFarmiaProgress.PlayerProgress
type playerProgress struct {
	Coins       *big.Int
	Xp          *big.Int
	Level       uint16
	WheatSeeds  uint16
	CornSeeds   uint16
	CarrotSeeds uint16
	Eggs        uint16
	Milk        uint16
	Chickens    uint16
	Cows        uint16
}

// GetPlayer returns the raw stored profile. An address that never saved
// reads back as all zeros.
func (p *ProgressContract) GetPlayer(ctx context.Context, player common.Address) (domain.ChainProfile, error) {
	out, err := p.call(ctx, MethodGetPlayer, player)
	if err != nil {
		return domain.ChainProfile{}, err
	}
	raw, ok := abi.ConvertType(out[0], new(playerProgress)).(*playerProgress)
	if !ok || raw == nil {
		return domain.ChainProfile{}, fmt.Errorf("%s: %s", ErrMsgUnexpectedOutput, MethodGetPlayer)
	}
	return domain.ChainProfile{
		Coins:       bigToInt64(raw.Coins),
		XP:          bigToInt64(raw.Xp),
		Level:       int(raw.Level),
		WheatSeeds:  int(raw.WheatSeeds),
		CornSeeds:   int(raw.CornSeeds),
		CarrotSeeds: int(raw.CarrotSeeds),
		Eggs:        int(raw.Eggs),
		Milk:        int(raw.Milk),
		Chickens:    int(raw.Chickens),
		Cows:        int(raw.Cows),
	}, nil
}

// SavePlayer submits the profile. Small counters are clamped to uint16.
func (p *ProgressContract) SavePlayer(ctx context.Context, profile domain.ChainProfile) (TxHandle, error) {
	return p.transact(ctx, MethodSavePlayer,
		nonNegativeBig(profile.Coins),
		nonNegativeBig(profile.XP),
		ClampUint16(profile.Level),
		ClampUint16(profile.WheatSeeds),
		ClampUint16(profile.CornSeeds),
		ClampUint16(profile.CarrotSeeds),
		ClampUint16(profile.Eggs),
		ClampUint16(profile.Milk),
		ClampUint16(profile.Chickens),
		ClampUint16(profile.Cows),
	)
}

// GameContract is the seed shop binding
type GameContract struct {
	*contract
}

// NewGameContract binds the game contract
func NewGameContract(address string, backend Backend, wallet Wallet) (*GameContract, error) {
	c, err := newContract(address, gameABI, backend, wallet)
	if err != nil {
		return nil, err
	}
	return &GameContract{contract: c}, nil
}

// BuySeeds submits a purchase of amount seeds of the given contract crop id
func (g *GameContract) BuySeeds(ctx context.Context, cropID uint8, amount int) (TxHandle, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d", domain.ErrInvalidInput, amount)
	}
	return g.transact(ctx, MethodBuySeeds, cropID, big.NewInt(int64(amount)))
}

// ClaimDailySeeds submits the daily claim
func (g *GameContract) ClaimDailySeeds(ctx context.Context) (TxHandle, error) {
	return g.transact(ctx, MethodClaimDailySeeds)
}

// DailySeedCropID returns the crop granted by the daily claim
func (g *GameContract) DailySeedCropID(ctx context.Context) (uint8, error) {
	out, err := g.call(ctx, MethodDailySeedCropID)
	if err != nil {
		return 0, err
	}
	id, ok := out[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("%s: %s", ErrMsgUnexpectedOutput, MethodDailySeedCropID)
	}
	return id, nil
}

// DailySeedAmount returns how many seeds the daily claim grants
func (g *GameContract) DailySeedAmount(ctx context.Context) (int, error) {
	out, err := g.call(ctx, MethodDailySeedAmount)
	if err != nil {
		return 0, err
	}
	n, ok := out[0].(uint16)
	if !ok {
		return 0, fmt.Errorf("%s: %s", ErrMsgUnexpectedOutput, MethodDailySeedAmount)
	}
	return int(n), nil
}

// ClampUint16 limits n to the uint16 range
func ClampUint16(n int) uint16 {
	switch {
	case n < 0:
		return 0
	case n > math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(n)
	}
}

func nonNegativeBig(n int64) *big.Int {
	if n < 0 {
		n = 0
	}
	return big.NewInt(n)
}

func bigToInt64(b *big.Int) int64 {
	if b == nil || b.Sign() < 0 {
		return 0
	}
	if !b.IsInt64() {
		return math.MaxInt64
	}
	return b.Int64()
}
