package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies the defaults applied when nothing is configured.
func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout())
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout())
	assert.Equal(t, 16, cfg.Store.ShardCount)
}

// TestLoadFromEnv verifies that Load reads TASKIFY_* environment variables.
func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	setupEnv(t, map[string]string{
		"TASKIFY_SERVER_PORT":                     "9090",
		"TASKIFY_SERVER_LOG_LEVEL":                "debug",
		"TASKIFY_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "3",
		"TASKIFY_STORE_SHARD_COUNT":               "64",
	})

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout())
	assert.Equal(t, 64, cfg.Store.ShardCount)
}

// TestLoadValidationErrors verifies that invalid values are rejected.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Invalid port number",
			envVars: map[string]string{"TASKIFY_SERVER_PORT": "999999"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"TASKIFY_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Zero shards",
			envVars: map[string]string{"TASKIFY_STORE_SHARD_COUNT": "0"},
		},
		{
			name:    "Too many shards",
			envVars: map[string]string{"TASKIFY_STORE_SHARD_COUNT": "4096"},
		},
		{
			name:    "Negative shutdown timeout",
			envVars: map[string]string{"TASKIFY_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "-1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}

// TestLoadFromFiles verifies config.yaml and .env handling and their precedence.
func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, dir, "config.yaml", "server:\n  port: 7070\n  log_level: warn\nstore:\n  shard_count: 8\n")
	writeFile(t, dir, ".env", "TASKIFY_STORE_SHARD_COUNT=32\n")
	// godotenv writes straight into the process environment.
	t.Cleanup(func() { _ = os.Unsetenv("TASKIFY_STORE_SHARD_COUNT") })
	setupEnv(t, map[string]string{"TASKIFY_SERVER_LOG_LEVEL": "error"})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port, "file value applies when no env var is set")
	assert.Equal(t, "error", cfg.Server.LogLevel, "env var overrides file value")
	assert.Equal(t, 32, cfg.Store.ShardCount, ".env value overrides file value")
}

// TestLoadMalformedFile verifies that a broken config.yaml is reported.
func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "config.yaml", "server: [unterminated\n")

	cfg, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
	assert.Nil(t, cfg)
}
