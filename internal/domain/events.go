package domain

// Event type constants used across the application for event bus subscriptions,
// the SSE feed and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "tile.ready")
const (
	// EventTypeFarmChanged is published after every applied mutation of the farm store
	EventTypeFarmChanged = "farm.changed"

	// EventTypeActionRejected is published when an intent fails its preconditions
	EventTypeActionRejected = "farm.rejected"

	// EventTypeTilesReady is published when the growth tick promotes tiles to ready
	EventTypeTilesReady = "tile.ready"

	// EventTypeLevelUp is published when granted experience crosses a level threshold
	EventTypeLevelUp = "player.level_up"

	// EventTypeQuestClaimed is published when a quest reward is credited
	EventTypeQuestClaimed = "quest.claimed"

	// EventTypeNotice carries a user-facing message (chain results, missing wallet)
	EventTypeNotice = "notice"

	// EventTypeSessionChanged is published on wallet connect and disconnect
	EventTypeSessionChanged = "wallet.session"

	// EventTypeChainTransaction is published when a chain transaction settles or fails
	EventTypeChainTransaction = "chain.transaction"

	// EventTypeAmbienceChanged is published when weather or time of day changes
	EventTypeAmbienceChanged = "ambience.changed"
)

// Farm actions recorded on farm.changed events and in metrics
const (
	ActionPlant          = "plant"
	ActionWater          = "water"
	ActionHarvest        = "harvest"
	ActionMove           = "move"
	ActionSetMode        = "set_mode"
	ActionSelectCrop     = "select_crop"
	ActionTick           = "tick"
	ActionSellHarvest    = "sell_harvest"
	ActionSellProduce    = "sell_produce"
	ActionBuyAnimal      = "buy_animal"
	ActionCollectProduce = "collect_produce"
	ActionClaimQuest     = "claim_quest"
	ActionGrantXP        = "grant_xp"
	ActionCreditSeeds    = "credit_seeds"
	ActionDebitCoins     = "debit_coins"
	ActionApplyChain     = "apply_chain"
	ActionReset          = "reset"
	ActionRestore        = "restore"
	ActionPurchase       = "purchase"
	ActionDismissLevelUp = "dismiss_level_up"
	ActionClick          = "click"
)

// Chain actions
const (
	ChainActionLoad       = "load"
	ChainActionSave       = "save"
	ChainActionBuySeeds   = "buy_seeds"
	ChainActionClaimDaily = "claim_daily"
)
