package event

// EventSchemaVersion is stamped on every event and reported by /version
const EventSchemaVersion = "1.0"

const (
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

	ErrMsgNilPayload = "event has no payload"
)
