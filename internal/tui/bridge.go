package tui

import (
	"log/slog"
	"sync"

	"github.com/Veraticus/the-income-must-flow/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Bridge delivers workflow callbacks to the running program as messages.
// It implements service.Navigator and service.Notifier.
type Bridge struct {
	send func(tea.Msg)
	mu   sync.RWMutex
}

var (
	_ service.Navigator = (*Bridge)(nil)
	_ service.Notifier  = (*Bridge)(nil)
)

// Attach sets the function used to deliver messages, usually tea.Program.Send.
func (b *Bridge) Attach(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

// GoBack implements service.Navigator.
func (b *Bridge) GoBack() {
	b.emit(goBackMsg{})
}

// ForScreen returns a navigator whose go-back only closes the screen with
// the given id. Stale go-backs from a screen that was already left are ignored.
func (b *Bridge) ForScreen(id int) service.Navigator {
	return screenNavigator{bridge: b, screen: id}
}

type screenNavigator struct {
	bridge *Bridge
	screen int
}

func (n screenNavigator) GoBack() {
	n.bridge.emit(goBackMsg{screen: n.screen})
}

// Notify implements service.Notifier.
func (b *Bridge) Notify(n service.Notification) {
	b.emit(notifyMsg{notification: n})
}

func (b *Bridge) emit(msg tea.Msg) {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()

	if send == nil {
		slog.Debug("Dropping TUI message before program start", "msg", msg)
		return
	}
	send(msg)
}
