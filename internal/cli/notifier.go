package cli

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/Veraticus/the-income-must-flow/internal/service"
)

// Notifier prints notifications as styled lines. It implements service.Notifier.
type Notifier struct {
	writer io.Writer
	mu     sync.Mutex
}

var _ service.Notifier = (*Notifier)(nil)

// NewNotifier creates a notifier writing to w.
func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{writer: w}
}

// Notify implements service.Notifier.
func (n *Notifier) Notify(note service.Notification) {
	line := note.Title
	if note.Message != "" {
		line += ": " + note.Message
	}

	switch note.Kind {
	case service.NotificationSuccess:
		line = FormatSuccess(line)
	case service.NotificationError:
		line = FormatError(line)
	default:
		line = FormatInfo(line)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := fmt.Fprintln(n.writer, line); err != nil {
		slog.Warn("Failed to write notification", "error", err)
	}
}
