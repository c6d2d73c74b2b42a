package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_WritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "record")
	rec, err := NewRecorder(dir)
	require.NoError(t, err)

	h := newHarness(t, "secret")
	h.model.recorder = rec
	h.keys(t, keyA)

	assert.Equal(t, 1, rec.Frames())
	require.NoError(t, rec.Close())

	frame, err := os.ReadFile(filepath.Join(dir, "frame-0001.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(frame), "Add Income")

	state, err := os.ReadFile(filepath.Join(dir, "state.jsonl"))
	require.NoError(t, err)
	assert.Contains(t, string(state), `"screen":"add-income"`)
	assert.Contains(t, string(state), `"category":"Salary"`)
	assert.Contains(t, string(state), "Recording complete")
}

func TestRecorder_NilIsSafe(t *testing.T) {
	var rec *Recorder
	assert.NotPanics(t, func() {
		rec.RecordState(newHarness(t, "").model, nil)
	})
	assert.NoError(t, rec.Close())
}
