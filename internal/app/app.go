package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/dorphin/internal/logging"
)

// Options configure the terminal app.
type Options struct {
	Debounce     time.Duration
	TickInterval time.Duration
	VoiceTimeout time.Duration
	UploadDelay  time.Duration
	LightMode    bool
	Avatar       string
}

type teaProgram interface {
	Run() (tea.Model, error)
}

var programFactory = func(ctx context.Context, m tea.Model) teaProgram {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
}

// Run bootstraps the Bubble Tea program with the provided options. The
// logger stored on ctx receives controller events.
func Run(ctx context.Context, opts Options) error {
	logger := logging.FromContext(ctx)
	model := newModel(opts, logger)
	program := programFactory(ctx, model)
	logger.Info("starting dorphin", "light_mode", opts.LightMode)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
