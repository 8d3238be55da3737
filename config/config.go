// Package config reads gridquest settings from the environment and builds
// the process logger.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds settings that command-line flags may override.
type Config struct {
	ConfigPath string `env:"GRIDQUEST_CONFIG" envDefault:"adventures/startrek.advcfg"`
	SoundsDir  string `env:"GRIDQUEST_SOUNDS" envDefault:"sounds"`
	MapFile    string `env:"GRIDQUEST_MAP" envDefault:"map.txt"`
	LogLevel   string `env:"GRIDQUEST_LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"GRIDQUEST_LOG_FORMAT" envDefault:"text"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Level maps LogLevel to a slog level. Unknown names are an error.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelWarn, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// NewLogger builds a logger writing to w: JSON when LogFormat is "json",
// text otherwise.
func NewLogger(cfg *Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("log format %q: want text or json", cfg.LogFormat)
	}
	return slog.New(handler), nil
}
