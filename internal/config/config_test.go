package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Debounce != 500*time.Millisecond || cfg.TickInterval != time.Second {
		t.Fatalf("unexpected timing defaults %+v", cfg)
	}
	if cfg.UploadDelay != 1500*time.Millisecond || cfg.VoiceTimeout != 2*time.Second {
		t.Fatalf("unexpected delay defaults %+v", cfg)
	}
	if cfg.Theme != ThemeDark || cfg.Avatar != "UQ" || cfg.LogFile != "" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.LightMode() {
		t.Fatalf("dark theme expected by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DORPHIN_DEBOUNCE", "250ms")
	t.Setenv("DORPHIN_THEME", "Light")
	t.Setenv("DORPHIN_LOG_LEVEL", "debug")
	t.Setenv("DORPHIN_LOG_FILE", "/tmp/dorphin.log")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Debounce != 250*time.Millisecond {
		t.Fatalf("expected 250ms debounce, got %s", cfg.Debounce)
	}
	if !cfg.LightMode() {
		t.Fatalf("expected light theme")
	}
	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v (%v)", level, err)
	}
	if cfg.LogFile != "/tmp/dorphin.log" {
		t.Fatalf("unexpected log file %s", cfg.LogFile)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"DORPHIN_THEME":         "neon",
		"DORPHIN_DEBOUNCE":      "0s",
		"DORPHIN_TICK_INTERVAL": "soon",
		"DORPHIN_LOG_LEVEL":     "chatty",
		"DORPHIN_AVATAR":        " ",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestProcessSkipsValidation(t *testing.T) {
	t.Setenv("DORPHIN_THEME", "blue")
	cfg, err := Process()
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if cfg.Theme != "blue" {
		t.Fatalf("expected raw theme, got %q", cfg.Theme)
	}
	cfg.Theme = ThemeLight
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate after override: %v", err)
	}
}

func TestValidateReportsFirstBadDuration(t *testing.T) {
	t.Setenv("DORPHIN_DEBOUNCE", "0s")
	t.Setenv("DORPHIN_UPLOAD_DELAY", "-1s")
	for i := 0; i < 20; i++ {
		_, err := Load()
		if err == nil || !strings.HasPrefix(err.Error(), "debounce must be positive") {
			t.Fatalf("expected debounce error, got %v", err)
		}
	}
}
