package chain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

// TxHandle is a submitted transaction
type TxHandle interface {
	Hash() string
	// Wait blocks until the transaction is mined. There is no timeout beyond ctx.
	Wait(ctx context.Context) error
}

type txHandle struct {
	backend bind.DeployBackend
	tx      *types.Transaction
}

func (h *txHandle) Hash() string {
	return h.tx.Hash().Hex()
}

func (h *txHandle) Wait(ctx context.Context) error {
	receipt, err := bind.WaitMined(ctx, h.backend, h.tx)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrChainUnavailable, ErrMsgWaitFailed, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		logger.FromContext(ctx).Warn(LogMsgTransactionFailed, "tx_hash", h.Hash(), "block", receipt.BlockNumber)
		return fmt.Errorf("%w: %s", domain.ErrTransactionReverted, h.Hash())
	}
	logger.FromContext(ctx).Info(LogMsgTransactionMined, "tx_hash", h.Hash(), "block", receipt.BlockNumber, "gas_used", receipt.GasUsed)
	return nil
}
