package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier(t *testing.T) {
	tests := []struct {
		name string
		note service.Notification
		want string
	}{
		{
			name: "success",
			note: service.Notification{
				Kind:    service.NotificationSuccess,
				Title:   "Income Added",
				Message: "Your income was saved successfully.",
			},
			want: SuccessIcon + " Income Added: Your income was saved successfully.",
		},
		{
			name: "error without message",
			note: service.Notification{Kind: service.NotificationError, Title: "Failed"},
			want: ErrorIcon + " Failed",
		},
		{
			name: "info",
			note: service.Notification{Kind: service.NotificationInfo, Title: "Heads up"},
			want: InfoIcon + " Heads up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewNotifier(&buf).Notify(tt.note)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestLineReader_ReadLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "line", input: "abc123\n", want: "abc123"},
		{name: "trims whitespace", input: "  token  \n", want: "token"},
		{name: "last line without newline", input: "tail", want: "tail"},
		{name: "empty input", input: "", wantErr: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewLineReader(strings.NewReader(tt.input))
			got, err := r.ReadLine(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLineReader_ReadLineCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewLineReader(pr).ReadLine(ctx)
	assert.ErrorIs(t, err, ErrInputCancelled)
}

func TestLineReader_Prompt(t *testing.T) {
	var out bytes.Buffer
	r := NewLineReader(strings.NewReader("secret\n"))

	got, err := r.Prompt(context.Background(), &out, "Access token")
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
	assert.Contains(t, out.String(), "Access token")
}

func TestInterruptHandler(t *testing.T) {
	var out bytes.Buffer
	h := NewInterruptHandler(&out)

	ctx := h.HandleInterrupts(context.Background(), func() string { return "Imported 3 of 10 rows" })
	assert.False(t, h.WasInterrupted())

	h.Interrupt()
	h.Interrupt()

	select {
	case <-ctx.Done():
	default:
		t.Fatal("context should be canceled after interrupt")
	}
	assert.True(t, h.WasInterrupted())
	assert.Equal(t, 1, strings.Count(out.String(), "Import interrupted!"))
	assert.Contains(t, out.String(), "Imported 3 of 10 rows")
}

func TestNewInterruptHandler_DefaultsToStdout(t *testing.T) {
	h := NewInterruptHandler(nil)
	assert.NotNil(t, h.writer)
}

func TestNewProgressBar(t *testing.T) {
	var out bytes.Buffer
	bar := NewProgressBar(&out, 2, "Importing")

	require.NoError(t, bar.Add(1))
	require.NoError(t, bar.Add(1))
	assert.True(t, bar.IsFinished())
}
