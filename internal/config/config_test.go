package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pack-odds/internal/config"
	"github.com/KirkDiggler/pack-odds/internal/errors"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.ParseFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, "zero", cfg.Policy)
	assert.False(t, cfg.PublishEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestParseEnvironment(t *testing.T) {
	cfg, err := config.ParseFrom(map[string]string{
		"PACK_ODDS_DATA_DIR":           "/srv/pack-odds",
		"PACK_ODDS_REDIS_ADDR":         "localhost:6379",
		"PACK_ODDS_LOG_LEVEL":          "DEBUG",
		"PACK_ODDS_WORKERS":            "4",
		"PACK_ODDS_COMMON_SLOT_POLICY": "lowest-tier",
	})
	require.NoError(t, err)

	assert.Equal(t, "/srv/pack-odds", cfg.DataDir)
	assert.True(t, cfg.PublishEnabled())
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "lowest-tier", cfg.Policy)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.NoError(t, cfg.Validate())
}

func TestParseBadWorkers(t *testing.T) {
	cfg, err := config.ParseFrom(map[string]string{"PACK_ODDS_WORKERS": "many"})
	assert.Nil(t, cfg)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{DataDir: "data", LogLevel: "info", Policy: "lowest-tier"}
	}

	testCases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{name: "missing data dir", mutate: func(c *config.Config) { c.DataDir = " " }, field: "data_dir"},
		{name: "bad log level", mutate: func(c *config.Config) { c.LogLevel = "trace" }, field: "log_level"},
		{name: "negative workers", mutate: func(c *config.Config) { c.Workers = -1 }, field: "workers"},
		{name: "unknown policy", mutate: func(c *config.Config) { c.Policy = "average" }, field: "policy"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}

	t.Run("nil config", func(t *testing.T) {
		var cfg *config.Config
		assert.True(t, errors.IsInvalidArgument(cfg.Validate()))
	})
}

func TestSlogLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}

	for name, want := range testCases {
		cfg := &config.Config{LogLevel: name}
		assert.Equal(t, want, cfg.SlogLevel(), name)
	}
}

func TestParseProcessEnvironment(t *testing.T) {
	t.Setenv("PACK_ODDS_DATA_DIR", "/tmp/cards")

	cfg, err := config.Parse()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cards", cfg.DataDir)
}
