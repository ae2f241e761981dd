// Package config loads Dorphin settings from DORPHIN_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "DORPHIN"

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type Config struct {
	Debounce     time.Duration `envconfig:"DEBOUNCE" default:"500ms"`
	TickInterval time.Duration `envconfig:"TICK_INTERVAL" default:"1s"`
	VoiceTimeout time.Duration `envconfig:"VOICE_TIMEOUT" default:"2s"`
	UploadDelay  time.Duration `envconfig:"UPLOAD_DELAY" default:"1500ms"`
	Theme        string        `envconfig:"THEME" default:"dark"`
	Avatar       string        `envconfig:"AVATAR" default:"UQ"`
	LogFile      string        `envconfig:"LOG_FILE"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	cfg, err := Process()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Process reads the environment without validating it, so callers can
// apply overrides before calling Validate.
func Process() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that envconfig cannot.
func (c *Config) Validate() error {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		return fmt.Errorf("invalid theme %q (want %s or %s)", c.Theme, ThemeDark, ThemeLight)
	}
	durations := []struct {
		name  string
		value time.Duration
	}{
		{"debounce", c.Debounce},
		{"tick interval", c.TickInterval},
		{"voice timeout", c.VoiceTimeout},
		{"upload delay", c.UploadDelay},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.name, d.value)
		}
	}
	if strings.TrimSpace(c.Avatar) == "" {
		return errors.New("avatar must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// LightMode reports whether the light theme was requested.
func (c *Config) LightMode() bool {
	return c.Theme == ThemeLight
}
