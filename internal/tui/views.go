package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content, footer string
	switch m.Screen() {
	case ScreenAddIncome:
		content = m.addIncome.View()
		footer = m.help.View(m.addIncome.Keys())
	default:
		content = m.list.View()
		footer = m.help.View(m.keymap)
	}

	if m.lastError != nil {
		footer = lipgloss.JoinVertical(lipgloss.Left,
			m.theme.StatusError.Render(m.lastError.Error()),
			footer)
	}

	body := m.theme.RoundedBox.Render(content)
	if toast := m.toast.View(); toast != "" {
		body = lipgloss.JoinVertical(lipgloss.Right, toast, body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
