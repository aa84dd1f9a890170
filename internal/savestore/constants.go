package savestore

import "os"

// Backends
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendFile     = "file"
)

const (
	saveFileExt      = ".save"
	dirPermissions   = os.FileMode(0o755)
	filePermissions  = os.FileMode(0o644)
	sqliteBusyMillis = 5000
)

// Error Messages
const (
	ErrMsgUnknownBackend  = "unknown save backend"
	ErrMsgInvalidKey      = "invalid save key"
	ErrMsgMigrationFailed = "failed to apply save store migrations"
	ErrMsgOpenFailed      = "failed to open save store"
	ErrMsgReadFailed      = "failed to read save"
	ErrMsgWriteFailed     = "failed to write save"
	ErrMsgDeleteFailed    = "failed to delete save"
)

// Log Messages
const (
	LogMsgStoreOpened     = "Save store opened"
	LogMsgMigrated        = "Save store migrations applied"
	LogMsgTempCleanupFail = "Failed to remove temporary save file"
)
