package domain

// FarmChangedPayload is the event payload for farm.changed events
type FarmChangedPayload struct {
	Revision  int64  `json:"revision"`
	Action    string `json:"action"`
	Timestamp int64  `json:"timestamp"`
}

// ActionRejectedPayload is the event payload for farm.rejected events
type ActionRejectedPayload struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// TilesReadyPayload is the event payload for tile.ready events
type TilesReadyPayload struct {
	Indices   []int `json:"indices"`
	Timestamp int64 `json:"timestamp"`
}

// LevelUpPayload is the event payload for player.level_up events
type LevelUpPayload struct {
	NoticeID string `json:"notice_id"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
}

// QuestClaimedPayload is the event payload for quest.claimed events
type QuestClaimedPayload struct {
	QuestID string `json:"quest_id"`
	Reward  int64  `json:"reward"`
}

// NoticeLevel classifies a notice
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// NoticePayload is the event payload for notice events
type NoticePayload struct {
	ID      string      `json:"id"`
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
	Reason  string      `json:"reason,omitempty"`
}

// ChainTransactionPayload is the event payload for chain.transaction events
type ChainTransactionPayload struct {
	Action  string `json:"action"`
	TxHash  string `json:"tx_hash,omitempty"`
	Outcome string `json:"outcome"` // "submitted", "mined", "failed"
	Reason  string `json:"reason,omitempty"`
}

// Chain transaction outcomes
const (
	TxOutcomeSubmitted = "submitted"
	TxOutcomeMined     = "mined"
	TxOutcomeFailed    = "failed"
)

// AmbiencePayload is the event payload for ambience.changed events
type AmbiencePayload struct {
	TimeOfDay string `json:"time_of_day"`
	Weather   string `json:"weather"`
	Greeting  string `json:"greeting"`
}
