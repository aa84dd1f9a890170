package chain

// Error Messages
const (
	ErrMsgInvalidAddress   = "invalid contract address"
	ErrMsgInvalidKey       = "invalid wallet private key"
	ErrMsgDialFailed       = "failed to connect to chain RPC"
	ErrMsgChainIDFailed    = "failed to read chain id"
	ErrMsgCallFailed       = "contract call failed"
	ErrMsgTransactFailed   = "failed to submit transaction"
	ErrMsgWaitFailed       = "failed waiting for transaction"
	ErrMsgUnexpectedOutput = "unexpected contract output"
)

// Log Messages
const (
	LogMsgConnected         = "Connected to chain"
	LogMsgTransactionSent   = "Transaction submitted"
	LogMsgTransactionMined  = "Transaction mined"
	LogMsgTransactionFailed = "Transaction failed"
)

// maxReasonLength bounds the reason shown to users
const maxReasonLength = 200
