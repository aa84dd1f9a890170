package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPathParam      = "Invalid %s path parameter"

	// Save import and export
	ErrMsgExportFailed = "Failed to export save"
	ErrMsgImportFailed = "Failed to import save"
	ErrMsgReadBody     = "Failed to read request body"

	// WebSocket
	ErrMsgUpgradeFailed = "WebSocket upgrade failed"
)

// Path parameters
const (
	PathParamIndex   = "index"
	PathParamSlot    = "slot"
	PathParamQuestID = "questID"
	PathParamNotice  = "noticeID"
)

// Log messages
const (
	LogMsgActionRejected = "Action rejected"
	LogMsgServiceError   = "Service call failed"
	LogMsgSaveImported   = "Save imported"
	LogMsgImportWarning  = "Save import warning"
)
