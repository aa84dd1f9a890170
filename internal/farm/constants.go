package farm

// effectCacheSize bounds the number of live tile effects
const effectCacheSize = 128

// Log message constants
const (
	LogMsgActionRejected = "Farm action rejected"
	LogMsgPublishFailed  = "Failed to publish farm event"
	LogMsgLevelUp        = "Player leveled up"
	LogMsgRestored       = "Farm state restored from snapshot"
	LogMsgReset          = "Farm progression reset"
	LogMsgChainApplied   = "Farm progression replaced by chain profile"
	LogMsgDebitClamped   = "Coin debit exceeded balance, clamped at zero"
)
