package components

import (
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/service"
	"github.com/Veraticus/the-income-must-flow/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultToastDuration is used when a notification has no duration.
const DefaultToastDuration = time.Second

// ToastModel shows one notification at a time and hides it after its duration.
type ToastModel struct {
	theme        themes.Theme
	notification service.Notification
	id           int
	visible      bool
}

// NewToast creates a hidden toast.
func NewToast(theme themes.Theme) ToastModel {
	return ToastModel{theme: theme}
}

// Show displays n, replacing any toast already visible.
func (m ToastModel) Show(n service.Notification) (ToastModel, tea.Cmd) {
	m.id++
	m.notification = n
	m.visible = true

	id := m.id
	d := n.Duration
	if d <= 0 {
		d = DefaultToastDuration
	}
	return m, tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Update hides the toast when its timer fires. Stale timers are ignored.
func (m ToastModel) Update(msg tea.Msg) (ToastModel, tea.Cmd) {
	if expired, ok := msg.(ToastExpiredMsg); ok && expired.ID == m.id {
		m.visible = false
	}
	return m, nil
}

// Visible reports whether the toast is showing.
func (m ToastModel) Visible() bool {
	return m.visible
}

// Notification returns the last notification shown.
func (m ToastModel) Notification() service.Notification {
	return m.notification
}

// View renders the toast, or nothing when hidden.
func (m ToastModel) View() string {
	if !m.visible {
		return ""
	}

	color := m.theme.Info
	switch m.notification.Kind {
	case service.NotificationSuccess:
		color = m.theme.Success
	case service.NotificationError:
		color = m.theme.Error
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(m.notification.Title)
	body := m.theme.Normal.Render(m.notification.Message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}
