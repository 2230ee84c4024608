package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insider/internal/domain"
)

// unsetEnv clears key for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "HOST", "ENV", "MIN_PLAYERS", "TIMER_TICK_MS", "TOPICS_FILE", "RANDOM_SEED", "ROOM_CODE_LENGTH", "STALE_ROOM_MINUTES", "LOG_LEVEL", "LOG_FORMAT", "ALLOWED_ORIGINS"} {
		unsetEnv(t, key)
	}

	cfg := Load()

	assert.Equal(t, "0.0.0.0:8080", cfg.GetAddr())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 3, cfg.Game.MinPlayers)
	assert.Equal(t, time.Second, cfg.Game.TickInterval)
	assert.Equal(t, "", cfg.Game.TopicsFile)
	assert.Equal(t, uint64(0), cfg.Game.RandomSeed)
	assert.Equal(t, 6, cfg.Game.RoomCodeLength)
	assert.Equal(t, 2*time.Hour, cfg.Game.StaleRoomTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("MIN_PLAYERS", "4")
	t.Setenv("TIMER_TICK_MS", "250")
	t.Setenv("RANDOM_SEED", "12345")
	t.Setenv("ROOM_CODE_LENGTH", "not-a-number")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 4, cfg.Game.MinPlayers)
	assert.Equal(t, 250*time.Millisecond, cfg.Game.TickInterval)
	assert.Equal(t, uint64(12345), cfg.Game.RandomSeed)
	assert.Equal(t, 6, cfg.Game.RoomCodeLength, "unparsable values fall back to the default")
}

func TestLoadWithEnvFiles(t *testing.T) {
	unsetEnv(t, "LOG_FORMAT")
	unsetEnv(t, "STALE_ROOM_MINUTES")
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_FORMAT=json\nLOG_LEVEL=debug\nSTALE_ROOM_MINUTES=15\n"), 0o600))

	cfg, err := LoadWithEnvFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "warn", cfg.Logging.Level, "the environment wins over the file")
	assert.Equal(t, 15*time.Minute, cfg.Game.StaleRoomTimeout)
}

func TestLoadWithEnvFiles_MissingFile(t *testing.T) {
	_, err := LoadWithEnvFiles(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadTopics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yaml")
	content := "topics:\n  - りんご\n  - \" 自転車 \"\n  - りんご\n  - \"\"\n  - Mango\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	pool, err := LoadTopics(path)
	require.NoError(t, err)
	assert.Equal(t, domain.TopicPool{"りんご", "自転車", "Mango"}, pool)
}

func TestLoadTopics_Default(t *testing.T) {
	pool, err := LoadTopics("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTopics, pool)
}

func TestLoadTopics_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTopics(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("topics: []\n"), 0o600))
	_, err = LoadTopics(empty)
	assert.ErrorIs(t, err, ErrEmptyTopicPool)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("topics: [unclosed\n"), 0o600))
	_, err = LoadTopics(broken)
	assert.Error(t, err)
}
