package chain

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

// Reason turns a chain error into a short message for the player
func Reason(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, domain.ErrWalletUnavailable):
		return domain.ErrMsgWalletUnavailable
	case errors.Is(err, domain.ErrWalletNotConnected):
		return domain.ErrMsgWalletNotConnected
	case errors.Is(err, domain.ErrTransactionReverted):
		return domain.ErrMsgTransactionReverted
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if hexData, ok := dataErr.ErrorData().(string); ok {
			if data, decErr := hexutil.Decode(hexData); decErr == nil {
				if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil && reason != "" {
					return truncate(reason)
				}
			}
		}
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return truncate(rpcErr.Error())
	}

	msg := err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return truncate(msg)
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxReasonLength {
		return s
	}
	return s[:maxReasonLength] + "..."
}
