package config_test

import (
	"testing"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"API_MASTER_KEY", "HTTP_PORT", "STORAGE_BACKEND", "DATA_DIR", "SCYLLA_HOST",
		"SCYLLA_KEYSPACE", "PROMOTION_THRESHOLD", "DEFAULT_REGION", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPPort)
	assert.Equal(t, config.BackendCSV, cfg.StorageBackend)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "localhost", cfg.ScyllaHost)
	assert.Equal(t, 3, cfg.PromotionThreshold)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "Scylla")
	t.Setenv("SCYLLA_KEYSPACE", "detector")
	t.Setenv("PROMOTION_THRESHOLD", "5")
	t.Setenv("DEFAULT_REGION", "CL")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendScylla, cfg.StorageBackend)
	assert.Equal(t, "detector", cfg.ScyllaKeyspace)
	assert.Equal(t, 5, cfg.PromotionThreshold)
	assert.Equal(t, "CL", cfg.DefaultRegion)

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		Name string
		Env  map[string]string
	}{
		{"non numeric threshold", map[string]string{"PROMOTION_THRESHOLD": "three"}},
		{"negative threshold", map[string]string{"PROMOTION_THRESHOLD": "-1"}},
		{"zero threshold", map[string]string{"PROMOTION_THRESHOLD": "0"}},
		{"unknown backend", map[string]string{"STORAGE_BACKEND": "sqlite"}},
		{"scylla without keyspace", map[string]string{"STORAGE_BACKEND": "scylla"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.Env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
