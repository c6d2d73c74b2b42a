package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/income"
	tea "github.com/charmbracelet/bubbletea"
)

// App is a configured TUI program.
type App struct {
	program  *tea.Program
	bridge   *Bridge
	recorder *Recorder
}

// New wires the income workflow to a bubbletea program.
func New(ctx context.Context, opts ...Option) (*App, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Store == nil {
		return nil, fmt.Errorf("storage is required")
	}
	if _, err := income.NewDateSelector(cfg.PickerMode); err != nil {
		return nil, err
	}

	bridge := &Bridge{}
	workflow, err := income.NewWorkflow(income.Deps{
		Tokens:    cfg.Tokens,
		API:       cfg.API,
		Store:     cfg.Store,
		Notifier:  bridge,
		Navigator: bridge,
	}, income.WithDismissDelay(cfg.DismissDelay))
	if err != nil {
		return nil, fmt.Errorf("failed to create income workflow: %w", err)
	}

	model := newModel(cfg, workflow, bridge)
	if cfg.Record {
		dir := filepath.Join(os.TempDir(), fmt.Sprintf("income-tui-record-%d", time.Now().Unix()))
		recorder, err := NewRecorder(dir)
		if err != nil {
			slog.Warn("TUI recording disabled", "error", err)
		} else {
			slog.Info("Recording TUI frames", "dir", recorder.Dir())
			model.recorder = recorder
		}
	}

	program := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	bridge.Attach(program.Send)

	return &App{
		program:  program,
		bridge:   bridge,
		recorder: model.recorder,
	}, nil
}

// Run starts the program and blocks until the user quits.
func (a *App) Run() error {
	defer func() { _ = a.recorder.Close() }()

	if _, err := a.program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
