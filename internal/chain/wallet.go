package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

// Wallet signs transactions for one account
type Wallet interface {
	Address() common.Address
	Transactor(ctx context.Context) (*bind.TransactOpts, error)
}

// KeyWallet signs with a raw private key
type KeyWallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
}

// NewKeyWallet parses a hex private key. An empty key means no wallet is
// installed and yields domain.ErrWalletUnavailable.
func NewKeyWallet(hexKey string, chainID *big.Int) (*KeyWallet, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, domain.ErrWalletUnavailable
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrWalletUnavailable, ErrMsgInvalidKey, err)
	}
	return &KeyWallet{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
	}, nil
}

// Address returns the account address
func (w *KeyWallet) Address() common.Address {
	return w.address
}

// Transactor returns signing options bound to ctx
func (w *KeyWallet) Transactor(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(w.key, w.chainID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrWalletUnavailable, err)
	}
	opts.Context = ctx
	return opts, nil
}
