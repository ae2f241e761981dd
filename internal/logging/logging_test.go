package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, closer, err := New("", slog.LevelDebug)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closer.Close()
	logger.Info("dropped")
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dorphin.log")
	logger, closer, err := New(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("screen changed", "to", "shorts")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "screen changed") || !strings.Contains(text, "to=shorts") {
		t.Fatalf("unexpected log contents %q", text)
	}
	if strings.Contains(text, "hidden") {
		t.Fatalf("debug record written at info level")
	}
}

func TestNewRejectsDirectory(t *testing.T) {
	if _, _, err := New(t.TempDir(), slog.LevelInfo); err == nil {
		t.Fatalf("expected error for directory path")
	}
}

func TestContextLogger(t *testing.T) {
	logger := Discard()
	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Fatalf("expected stored logger")
	}
	if FromContext(context.Background()) != slog.Default() {
		t.Fatalf("expected default fallback")
	}
}
