package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder dumps every update to a directory for debugging: the rendered
// view as frame-NNNN.txt and one JSON line per update in state.jsonl.
type Recorder struct {
	file   *os.File
	logger *slog.Logger
	dir    string
	frames int
}

// NewRecorder starts a recording in dir, creating it if needed.
func NewRecorder(dir string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create recording directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "state.jsonl")) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to create recording log: %w", err)
	}

	return &Recorder{
		file:   f,
		logger: slog.New(slog.NewJSONHandler(f, nil)),
		dir:    dir,
	}, nil
}

// Dir returns where frames are written.
func (r *Recorder) Dir() string {
	return r.dir
}

// Frames returns how many updates were recorded.
func (r *Recorder) Frames() int {
	return r.frames
}

// RecordState writes the frame produced by msg. A nil recorder does nothing.
func (r *Recorder) RecordState(m Model, msg tea.Msg) {
	if r == nil {
		return
	}
	r.frames++

	attrs := []slog.Attr{
		slog.Int("frame", r.frames),
		slog.String("msg", fmt.Sprintf("%T", msg)),
		slog.String("screen", m.Screen().String()),
		slog.Int("depth", len(m.stack)),
		slog.Bool("toast", m.toast.Visible()),
	}
	if m.Screen() == ScreenAddIncome {
		form := m.addIncome.Form()
		attrs = append(attrs, slog.Group("form",
			slog.Int("screen_id", m.addScreenID),
			slog.String("date", form.DisplayDate()),
			slog.String("category", form.Category),
			slog.String("total", form.Total),
			slog.Bool("picker", m.addIncome.PickerVisible()),
			slog.Bool("pending", m.addIncome.Pending()),
			slog.Bool("saved", m.addIncome.Saved()),
		))
	}
	r.logger.LogAttrs(context.Background(), slog.LevelInfo, "update", attrs...)

	framePath := filepath.Join(r.dir, fmt.Sprintf("frame-%04d.txt", r.frames))
	if err := os.WriteFile(framePath, []byte(m.View()), 0600); err != nil {
		r.logger.Error("Failed to save frame", "frame", r.frames, "error", err)
	}
}

// Close finishes the recording. A nil recorder does nothing.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	r.logger.Info("Recording complete", "frames", r.frames, "dir", r.dir)
	return r.file.Close()
}
