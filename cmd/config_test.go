package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_SSLMODE", "STORAGE", "BATTERY_AUDIT_SCHEDULE", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE", "Memory")

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, StorageMemory, config.Storage)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "@every 1m", config.BatteryAuditSchedule)
	assert.Equal(t, slog.LevelInfo, config.SlogLevel())
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"DB_USER=fleet\nDB_PASSWORD=secret\nDB_NAME=drones\nHTTP_PORT=9090\nLOG_LEVEL=debug\n",
	), 0o600))

	// Values already present in the environment are not overridden by the file.
	t.Setenv("HTTP_PORT", "7070")

	config, err := LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, StoragePostgres, config.Storage)
	assert.Equal(t, "7070", config.HTTPPort)
	assert.Equal(t, slog.LevelDebug, config.SlogLevel())
	assert.Equal(t,
		"host=localhost port=5432 user=fleet password=secret dbname=drones sslmode=disable",
		config.DSN(),
	)
}

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, Config{Storage: StoragePostgres}.Validate())
	assert.NoError(t, Config{Storage: StoragePostgres, DBUser: "u", DBName: "d"}.Validate())
	assert.NoError(t, Config{Storage: StorageMemory}.Validate())
	assert.Error(t, Config{Storage: "redis"}.Validate())
}

func TestConfig_SlogLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "loud"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "warn"}.SlogLevel())
}

func TestOpenStorage_Memory(t *testing.T) {
	storage, err := OpenStorage(Config{Storage: StorageMemory})
	require.NoError(t, err)
	defer storage.Close()

	require.NoError(t, storage.Migrate())
	require.NoError(t, storage.Seed(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil))))

	root := NewCompositionRoot(Config{Storage: StorageMemory}, storage.UoWFactory, slog.New(slog.NewTextHandler(io.Discard, nil)))
	available, err := root.CreateFleetService().CheckAvailableDrones(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Drone-1"}, available)
}

func TestOpenStorage_Unknown(t *testing.T) {
	_, err := OpenStorage(Config{Storage: "redis"})
	assert.Error(t, err)
}
