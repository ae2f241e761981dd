package app

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/dorphin/internal/logging"
)

type stubProgram struct {
	err error
}

func (s stubProgram) Run() (tea.Model, error) {
	return nil, s.err
}

func TestRunInvokesProgram(t *testing.T) {
	original := programFactory
	defer func() { programFactory = original }()
	var got tea.Model
	programFactory = func(_ context.Context, m tea.Model) teaProgram {
		got = m
		return stubProgram{}
	}
	ctx := logging.WithLogger(context.Background(), logging.Discard())
	if err := Run(ctx, Options{LightMode: true}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	m, ok := got.(model)
	if !ok {
		t.Fatalf("expected app model, got %T", got)
	}
	if m.ctrl.DarkMode() {
		t.Fatalf("expected light mode to reach the controller")
	}
}

func TestRunPropagatesError(t *testing.T) {
	original := programFactory
	defer func() { programFactory = original }()
	errRun := errors.New("boom")
	programFactory = func(context.Context, tea.Model) teaProgram { return stubProgram{err: errRun} }
	err := Run(context.Background(), Options{})
	if !errors.Is(err, errRun) {
		t.Fatalf("expected error propagation, got %v", err)
	}
}
