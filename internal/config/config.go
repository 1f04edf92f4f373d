package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendCSV    = "csv"
	BackendScylla = "scylla"
)

// Config is read from the environment. main loads .env beforehand.
type Config struct {
	APIKey   string
	HTTPPort string

	StorageBackend string
	DataDir        string
	ScyllaHost     string
	ScyllaKeyspace string

	PromotionThreshold int
	DefaultRegion      string

	LogLevel string
}

// defaultPromotionThreshold applies only when PROMOTION_THRESHOLD is unset.
const defaultPromotionThreshold = 3

// Load reads the environment, applies defaults and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:         os.Getenv("API_MASTER_KEY"),
		HTTPPort:       os.Getenv("HTTP_PORT"),
		StorageBackend: strings.ToLower(os.Getenv("STORAGE_BACKEND")),
		DataDir:        os.Getenv("DATA_DIR"),
		ScyllaHost:     os.Getenv("SCYLLA_HOST"),
		ScyllaKeyspace: os.Getenv("SCYLLA_KEYSPACE"),
		DefaultRegion:  os.Getenv("DEFAULT_REGION"),
		LogLevel:       os.Getenv("LOG_LEVEL"),

		PromotionThreshold: defaultPromotionThreshold,
	}

	if raw := os.Getenv("PROMOTION_THRESHOLD"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("PROMOTION_THRESHOLD must be an integer: %w", err)
		}
		cfg.PromotionThreshold = n
	}

	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = ":8080"
	}
	if cfg.StorageBackend == "" {
		cfg.StorageBackend = BackendCSV
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.ScyllaHost == "" {
		cfg.ScyllaHost = "localhost"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func (c *Config) Validate() error {
	if c.PromotionThreshold < 1 {
		return fmt.Errorf("PROMOTION_THRESHOLD must be at least 1")
	}
	switch c.StorageBackend {
	case BackendCSV, BackendScylla:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendCSV, BackendScylla, c.StorageBackend)
	}
	if c.StorageBackend == BackendScylla && c.ScyllaKeyspace == "" {
		return fmt.Errorf("SCYLLA_KEYSPACE is required for the scylla backend")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// NewLogger builds a production zap logger at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
