// Package config loads process configuration from the environment
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/pack-odds/internal/engine"
	"github.com/KirkDiggler/pack-odds/internal/errors"
)

const maxWorkers = 256

// Config holds settings shared by every command. Flags override these.
type Config struct {
	DataDir   string `env:"PACK_ODDS_DATA_DIR"           envDefault:"data"`
	RedisAddr string `env:"PACK_ODDS_REDIS_ADDR"`
	LogLevel  string `env:"PACK_ODDS_LOG_LEVEL"          envDefault:"info"`
	Workers   int    `env:"PACK_ODDS_WORKERS"            envDefault:"0"`
	Policy    string `env:"PACK_ODDS_COMMON_SLOT_POLICY" envDefault:"zero"`
}

// LogLevels lists the accepted log level names
func LogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Parse reads the process environment into a Config
func Parse() (*Config, error) {
	return ParseFrom(nil)
}

// ParseFrom reads environ instead of the process environment; nil means
// the process environment
func ParseFrom(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return &cfg, nil
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("data_dir", c.DataDir, vb)
	errors.ValidateEnum("log_level", strings.ToLower(c.LogLevel), LogLevels(), vb)
	errors.ValidateRange("workers", c.Workers, 0, maxWorkers, vb)
	errors.ValidateEnum("policy", c.Policy, engine.CommonSlotPolicies(), vb)
	return vb.Build()
}

// SlogLevel converts LogLevel for a slog handler; unknown names map to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// PublishEnabled reports whether a Redis address is configured
func (c *Config) PublishEnabled() bool {
	return c.RedisAddr != ""
}
