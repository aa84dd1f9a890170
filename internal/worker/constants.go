package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Progression Jobs
// ============================================================================

const (
	LogMsgTilesReady      = "Tiles ready"
	LogMsgAmbienceChanged = "Ambience changed"
	LogMsgAmbiencePublish = "Failed to publish ambience change"
	LogMsgTickFailed      = "Game tick failed"
)

// ============================================================================
// Log Messages - Autosave Worker
// ============================================================================

const (
	LogMsgAutosaveNoSave        = "No local save found, starting fresh"
	LogMsgAutosaveLoadFailed    = "Failed to read local save, keeping defaults"
	LogMsgAutosaveDecodeFailed  = "Local save is unreadable, keeping defaults"
	LogMsgAutosaveDecodeWarning = "Local save field skipped"
	LogMsgAutosaveRestored      = "Local save restored"
	LogMsgAutosaveWritten       = "Local save written"
	LogMsgAutosaveWriteFailed   = "Failed to write local save"
	LogMsgAutosaveSuspended     = "Autosave suspended"
	LogMsgAutosaveResumed       = "Autosave resumed"
	LogMsgAutosaveShutdown      = "Shutting down autosave worker"
	LogMsgAutosaveShutdownDone  = "Autosave worker shutdown complete"
	LogMsgAutosaveShutdownSlow  = "Autosave worker shutdown timeout, a write may still be running"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
