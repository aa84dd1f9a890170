package ws

import "time"

// Intent types accepted from clients
const (
	IntentPlant          = "plant"
	IntentWater          = "water"
	IntentHarvest        = "harvest"
	IntentClick          = "click"
	IntentMove           = "move"
	IntentMode           = "mode"
	IntentCrop           = "crop"
	IntentSellHarvest    = "sell_harvest"
	IntentSellProduce    = "sell_produce"
	IntentBuyAnimal      = "buy_animal"
	IntentCollect        = "collect"
	IntentClaimQuest     = "claim_quest"
	IntentBuySeeds       = "buy_seeds"
	IntentClaimDaily     = "claim_daily"
	IntentDismissLevelUp = "dismiss_level_up"
	IntentSync           = "sync"
)

// Frame types sent to clients
const (
	FrameView   = "view"
	FrameResult = "result"
	FrameError  = "error"
)

// Connection tuning
const (
	ReadBufferSize  = 4 * 1024
	WriteBufferSize = 64 * 1024
	SendBufferSize  = 16

	MaxMessageSize = 4 * 1024
	WriteWait      = 5 * time.Second
	PongWait       = 60 * time.Second
	PingPeriod     = (PongWait * 9) / 10
)

// Log messages
const (
	LogMsgClientConnected    = "WebSocket client connected"
	LogMsgClientDisconnected = "WebSocket client disconnected"
	LogMsgUpgradeFailed      = "WebSocket upgrade failed"
	LogMsgBadFrame           = "Discarding malformed intent"
	LogMsgSlowClient         = "Dropping frame for slow WebSocket client"
	LogMsgEncodeFailed       = "Failed to encode WebSocket frame"
)

// Error messages
const (
	ErrMsgMalformedIntent = "malformed intent"
	ErrMsgUnknownIntent   = "unknown intent type"
	ErrMsgMissingField    = "missing field"
)
