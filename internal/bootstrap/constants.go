package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionLimit is the number of log files that triggers cleanup
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingArcFarmia   = "Starting ArcFarmia"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Game Loop
// =============================================================================

const (
	// WorkerPoolSize is the number of workers running tick jobs
	WorkerPoolSize = 2

	// WorkerQueueSize bounds queued tick jobs; ticks beyond it are dropped
	WorkerQueueSize = 8
)

// =============================================================================
// Wiring Messages
// =============================================================================

const (
	LogMsgCatalogLoaded              = "Catalog loaded"
	LogMsgChainDisabled              = "No CHAIN_RPC_URL configured, chain features disabled"
	LogMsgChainConnected             = "Chain bridge connected"
	LogMsgWalletMissing              = "No usable wallet key, chain actions will report the wallet unavailable"
	LogMsgJobsScheduled              = "Game loop jobs scheduled"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgAutosaveRegistered         = "Autosave registered"
	LogMsgStreamHubRegistered        = "WebSocket hub subscribed"

	ErrMsgFailedLoadCatalog     = "failed to load catalog"
	ErrMsgFailedOpenStore       = "failed to open save store"
	ErrMsgFailedDialChain       = "failed to connect to chain"
	ErrMsgFailedBindContract    = "failed to bind contract"
	ErrMsgFailedRegisterMetrics = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoreCloseFailed     = "Save store close failed"

	// Service names for shutdown logging
	ServiceNameBridge   = "bridge"
	ServiceNameAutosave = "autosave"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
