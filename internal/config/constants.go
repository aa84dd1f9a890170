package config

import "time"

const (
	// Configuration file paths
	ConfigPathCatalog = "configs/catalog.yaml"
)

// Save backends
const (
	SaveBackendSQLite   = "sqlite"
	SaveBackendPostgres = "postgres"
	SaveBackendFile     = "file"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "arcfarmia"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultSaveKey  = "arcfarmia_local_save_v1"
	DefaultSavePath = "data/arcfarmia.db"

	DefaultDBMaxConns        = 5
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultTickInterval     = time.Second
	DefaultAutosaveDebounce = 250 * time.Millisecond

	// Arc testnet deployments
	DefaultGameContractAddress     = "0xffa1378767fc92d9768d342fabdca4492c0867ed"
	DefaultProgressContractAddress = "0xcc2052A8E5F09D15596ad3718939A7af5B66C291"

	// Profiles on the default progress contract store the raw level, so
	// only other deployments get the level+1 empty-profile sentinel.
	DefaultChainLevelOffset = 1
	LegacyChainLevelOffset  = 0
)
