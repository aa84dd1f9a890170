package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Action errors
	ErrMsgActionRejected = "action rejected"
	ErrMsgInvalidTile    = "invalid tile index"
	ErrMsgInvalidSlot    = "invalid barn slot"

	// Catalog errors
	ErrMsgUnknownCatalogEntry = "unknown catalog entry"

	// Save errors
	ErrMsgSaveNotFound    = "save not found"
	ErrMsgInvalidSnapshot = "invalid snapshot"

	// Wallet/chain errors
	ErrMsgWalletUnavailable   = "wallet unavailable"
	ErrMsgWalletNotConnected  = "wallet not connected"
	ErrMsgTransactionReverted = "transaction reverted"
	ErrMsgChainUnavailable    = "chain unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrActionRejected marks a local precondition failure. State is untouched.
	ErrActionRejected = errors.New(ErrMsgActionRejected)
	ErrInvalidTile    = errors.New(ErrMsgInvalidTile)
	ErrInvalidSlot    = errors.New(ErrMsgInvalidSlot)

	ErrUnknownCatalogEntry = errors.New(ErrMsgUnknownCatalogEntry)

	ErrSaveNotFound    = errors.New(ErrMsgSaveNotFound)
	ErrInvalidSnapshot = errors.New(ErrMsgInvalidSnapshot)

	ErrWalletUnavailable   = errors.New(ErrMsgWalletUnavailable)
	ErrWalletNotConnected  = errors.New(ErrMsgWalletNotConnected)
	ErrTransactionReverted = errors.New(ErrMsgTransactionReverted)
	ErrChainUnavailable    = errors.New(ErrMsgChainUnavailable)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// Rejectf wraps ErrActionRejected with a formatted reason.
func Rejectf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrActionRejected, fmt.Sprintf(format, args...))
}
