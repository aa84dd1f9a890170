package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	APIKey         string   // API key for authentication
	TrustedProxies []string // proxies whose X-Forwarded-For is honoured
	LogLevel       string
	LogFormat      string
	LogDir         string
	ServiceName    string
	Version        string
	Environment    string

	// Local save store
	SaveBackend  string // sqlite, postgres or file
	SaveKey      string
	SavePath     string // sqlite database file or directory for the file backend
	SaveCompress bool   // zstd-compress snapshots in the file backend

	// Postgres save backend
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Game loop
	CatalogPath      string
	TickInterval     time.Duration
	AutosaveDebounce time.Duration

	// Chain bridge
	ChainRPCURL             string
	WalletPrivateKey        string
	GameContractAddress     string
	ProgressContractAddress string
	ChainLevelOffset        int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		LogLevel:       getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:      getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:         getEnv("LOG_DIR", DefaultLogDir),
		ServiceName:    getEnv("SERVICE_NAME", DefaultServiceName),
		Version:        getEnv("VERSION", DefaultVersion),
		Environment:    getEnv("ENVIRONMENT", DefaultEnvironment),

		SaveBackend:  strings.ToLower(getEnv("SAVE_BACKEND", SaveBackendSQLite)),
		SaveKey:      getEnv("SAVE_KEY", DefaultSaveKey),
		SavePath:     getEnv("SAVE_PATH", DefaultSavePath),
		SaveCompress: getEnvAsBool("SAVE_COMPRESS", true),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "arcfarmia"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		CatalogPath:      getEnv("CATALOG_PATH", ConfigPathCatalog),
		TickInterval:     getEnvAsDuration("GAME_TICK_INTERVAL", DefaultTickInterval),
		AutosaveDebounce: getEnvAsDuration("AUTOSAVE_DEBOUNCE", DefaultAutosaveDebounce),

		ChainRPCURL:             getEnv("CHAIN_RPC_URL", ""),
		WalletPrivateKey:        getEnv("WALLET_PRIVATE_KEY", ""),
		GameContractAddress:     getEnv("GAME_CONTRACT_ADDRESS", DefaultGameContractAddress),
		ProgressContractAddress: getEnv("PROGRESS_CONTRACT_ADDRESS", DefaultProgressContractAddress),
	}
	cfg.ChainLevelOffset = getEnvAsInt("CHAIN_LEVEL_OFFSET", defaultLevelOffset(cfg.ProgressContractAddress))

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch cfg.SaveBackend {
	case SaveBackendSQLite, SaveBackendPostgres, SaveBackendFile:
	default:
		return nil, fmt.Errorf("invalid SAVE_BACKEND %q: expected %s, %s or %s",
			cfg.SaveBackend, SaveBackendSQLite, SaveBackendPostgres, SaveBackendFile)
	}

	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("GAME_TICK_INTERVAL must be positive, got %s", cfg.TickInterval)
	}

	if cfg.ChainLevelOffset < 0 {
		return nil, fmt.Errorf("CHAIN_LEVEL_OFFSET must not be negative, got %d", cfg.ChainLevelOffset)
	}

	return cfg, nil
}

func defaultLevelOffset(progressAddress string) int {
	if strings.EqualFold(progressAddress, DefaultProgressContractAddress) {
		return LegacyChainLevelOffset
	}
	return DefaultChainLevelOffset
}

// ChainEnabled reports whether an RPC endpoint is configured.
func (c *Config) ChainEnabled() bool {
	return c.ChainRPCURL != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
