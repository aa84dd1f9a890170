package sse

import "time"

const (
	BroadcastBufferSize = 100
	ClientEventBuffer   = 50
	ClientChannelBuffer = 10

	KeepaliveInterval = 30 * time.Second
)

// Stream-only event types, never published on the bus
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes filters the stream to a comma separated list of event types,
// e.g. ?types=notice,player.level_up
const QueryParamTypes = "types"

const (
	LogMsgClientConnected    = "Farm event stream client connected"
	LogMsgClientDisconnected = "Farm event stream client disconnected"
	LogMsgEventBroadcast     = "Broadcasting farm event"
	LogMsgEventDropped       = "Farm event buffer full, event dropped"
	LogMsgWriteError         = "Failed to write farm event"
	LogMsgSubscribed         = "Farm event stream subscribed to bus"
)
