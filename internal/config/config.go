package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries everything the binaries read from the environment,
// prefixed with ARTFOLIO_. DatabaseURL and SQLitePath are both optional;
// when neither is set the tools fall back to an in-memory store.
type Config struct {
	DatabaseURL      string        `envconfig:"DATABASE_URL" default:""`
	SQLitePath       string        `envconfig:"SQLITE_PATH" default:""`
	AutosaveInterval time.Duration `envconfig:"AUTOSAVE_INTERVAL" default:"60s"`
	SiteOrigin       string        `envconfig:"SITE_ORIGIN" default:"https://artfolio.app"`
	AssetDir         string        `envconfig:"ASSET_DIR" default:""`
	FontPath         string        `envconfig:"FONT_PATH" default:""`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("artfolio", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SlogLevel maps the configured level name onto slog's levels,
// defaulting to info for anything unrecognized.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
