package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameSecurityEvents       = "http_security_events_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameFarmActions       = "farm_actions_total"
	MetricNameTilesReady        = "farm_tiles_ready_total"
	MetricNameLevelUps          = "player_level_ups_total"
	MetricNameQuestsClaimed     = "quests_claimed_total"
	MetricNameQuestRewards      = "quest_rewards_arc_total"
	MetricNameNotices           = "notices_total"
	MetricNameChainTransactions = "chain_transactions_total"
	MetricNameAutosaveWrites    = "autosave_writes_total"
	MetricNameTickDuration      = "game_tick_duration_seconds"
	MetricNameStreamClients     = "stream_clients"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextSecurityEvents       = "Total number of rejected requests by reason"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextFarmActions       = "Total number of farm intents by action and outcome"
	HelpTextTilesReady        = "Total number of tiles that finished growing"
	HelpTextLevelUps          = "Total number of level-ups"
	HelpTextQuestsClaimed     = "Total number of quest rewards claimed"
	HelpTextQuestRewards      = "Total ARC credited by quest rewards"
	HelpTextNotices           = "Total number of user-facing notices by level"
	HelpTextChainTransactions = "Total number of chain transactions by action and outcome"
	HelpTextAutosaveWrites    = "Total number of autosave writes by outcome"
	HelpTextTickDuration      = "Duration of the game progression tick in seconds"
	HelpTextStreamClients     = "Current number of connected stream clients by transport"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelAction    = "action"
	LabelOutcome   = "outcome"
	LabelQuest     = "quest"
	LabelLevel     = "level"
	LabelTransport = "transport"
	LabelReason    = "reason"
)

// Label values
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"

	TransportWebSocket = "websocket"
	TransportSSE       = "sse"

	ReasonFailedAuth  = "failed_auth"
	ReasonRateLimited = "rate_limited"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickLatencyBuckets covers ticks from 50µs to 250ms
var TickLatencyBuckets = []float64{.00005, .0001, .0005, .001, .005, .01, .05, .25}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
