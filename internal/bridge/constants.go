package bridge

// Notice messages shown to the player
const (
	MsgWalletMissing      = "No wallet found. Configure WALLET_PRIVATE_KEY to enable chain features."
	MsgConnected          = "Wallet connected"
	MsgDisconnected       = "Wallet disconnected"
	MsgNoChainProgress    = "No saved progress found on chain"
	MsgChainLoaded        = "Progress loaded from chain"
	MsgChainLoadFailed    = "Failed to load progress from chain"
	MsgChainSaved         = "Progress saved on chain"
	MsgChainSaveFailed    = "Failed to save progress on chain"
	MsgPurchaseFormat     = "Bought %d %s seeds"
	MsgPurchaseFailed     = "Seed purchase failed"
	MsgDailyClaimedFormat = "Daily seeds claimed: %d %s"
	MsgDailyClaimFailed   = "Daily seed claim failed"
)

// Log Messages
const (
	LogMsgConnected         = "Wallet session connected"
	LogMsgDisconnected      = "Wallet session disconnected"
	LogMsgChainLoadEmpty    = "No progress stored on chain"
	LogMsgChainCallFailed   = "Chain call failed"
	LogMsgPurchaseMined     = "Seed purchase mined"
	LogMsgPurchaseWaitError = "Seed purchase did not settle"
	LogMsgPublishFailed     = "Failed to publish bridge event"
	LogMsgShutdown          = "Shutting down chain bridge"
	LogMsgShutdownTimeout   = "Chain bridge shutdown timed out with purchases still pending"
)

// Seed pack sizes offered by the shop
const (
	PackSingle = 1
	PackTen    = 10
)
