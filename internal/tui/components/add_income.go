package components

import (
	"strings"

	"github.com/Veraticus/the-income-must-flow/internal/income"
	"github.com/Veraticus/the-income-must-flow/internal/model"
	"github.com/Veraticus/the-income-must-flow/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AddIncomeField identifies a focusable control on the Add Income screen.
type AddIncomeField int

// Focusable controls, in tab order.
const (
	FieldDate AddIncomeField = iota
	FieldCategory
	FieldDescription
	FieldTotal
	FieldSave
	FieldCancel
	fieldCount
)

// AddIncomeKeyMap holds the bindings of the Add Income screen.
type AddIncomeKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Back   key.Binding
	Save   key.Binding
}

// DefaultAddIncomeKeyMap returns the default Add Income bindings.
func DefaultAddIncomeKeyMap() AddIncomeKeyMap {
	return AddIncomeKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", "save"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k AddIncomeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Select, k.Save, k.Back}
}

// FullHelp implements help.KeyMap.
func (k AddIncomeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Up, k.Down},
		{k.Left, k.Right, k.Select},
		{k.Save, k.Back},
	}
}

// AddIncomeModel is the Add Income screen.
type AddIncomeModel struct {
	theme         themes.Theme
	selector      income.DateSelector
	form          income.Form
	categories    []model.IncomeCategory
	keys          AddIncomeKeyMap
	description   textinput.Model
	total         textinput.Model
	spinner       spinner.Model
	focus         AddIncomeField
	categoryIndex int
	width         int
	height        int
	pending       bool
	saved         bool
}

// NewAddIncome creates the screen for a fresh form.
func NewAddIncome(form income.Form, selector income.DateSelector, theme themes.Theme) AddIncomeModel {
	description := textinput.New()
	description.Placeholder = "Description (Optional)"
	description.CharLimit = 200
	description.SetValue(form.Description)

	total := textinput.New()
	total.Placeholder = "Total"
	total.CharLimit = 32
	total.SetValue(form.Total)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	m := AddIncomeModel{
		theme:       theme,
		selector:    selector,
		form:        form,
		categories:  model.IncomeCategories(),
		keys:        DefaultAddIncomeKeyMap(),
		description: description,
		total:       total,
		spinner:     s,
		focus:       FieldDate,
	}
	m.Resize(80, 24)
	for i, c := range m.categories {
		if c.Value == form.Category || c.Key == form.Category {
			m.categoryIndex = i
		}
	}
	return m
}

// Init returns initial commands.
func (m AddIncomeModel) Init() tea.Cmd {
	return textinput.Blink
}

// Form returns the current form state.
func (m AddIncomeModel) Form() income.Form {
	return m.form
}

// Focused returns the focused control.
func (m AddIncomeModel) Focused() AddIncomeField {
	return m.focus
}

// Pending reports whether a save is in progress.
func (m AddIncomeModel) Pending() bool {
	return m.pending
}

// PickerVisible reports whether the date picker is showing.
func (m AddIncomeModel) PickerVisible() bool {
	return m.selector.Visible(m.form)
}

// Keys returns the screen's key bindings.
func (m AddIncomeModel) Keys() AddIncomeKeyMap {
	return m.keys
}

// Saved reports whether the form was accepted; the screen is about to close.
func (m AddIncomeModel) Saved() bool {
	return m.saved
}

// MarkSaved ends the pending state and locks Save until the screen closes.
func (m *AddIncomeModel) MarkSaved() {
	m.pending = false
	m.saved = true
}

// SetPending marks a save as started or finished.
func (m *AddIncomeModel) SetPending(pending bool) tea.Cmd {
	m.pending = pending
	if pending {
		return m.spinner.Tick
	}
	return nil
}

// Resize updates the available space.
func (m *AddIncomeModel) Resize(width, height int) {
	m.width = width
	m.height = height
	inputWidth := max(width-20, 10)
	m.description.Width = inputWidth
	m.total.Width = inputWidth
}

// Update handles messages.
func (m AddIncomeModel) Update(msg tea.Msg) (AddIncomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.selector.Visible(m.form) {
			m.handlePickerKeys(msg)
			return m, nil
		}
		return m.handleFormKeys(msg)
	}

	return m.updateInputs(msg)
}

func (m *AddIncomeModel) handlePickerKeys(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.shiftDate(-1)
	case key.Matches(msg, m.keys.Right):
		m.shiftDate(1)
	case key.Matches(msg, m.keys.Up):
		m.shiftDate(-7)
	case key.Matches(msg, m.keys.Down):
		m.shiftDate(7)
	case key.Matches(msg, m.keys.Select):
		m.selector.Done(&m.form)
	case key.Matches(msg, m.keys.Back):
		m.selector.Cancel(&m.form)
	}
}

func (m *AddIncomeModel) shiftDate(days int) {
	m.selector.Change(&m.form, m.selector.Shown(m.form).AddDate(0, 0, days))
}

func (m AddIncomeModel) handleFormKeys(msg tea.KeyMsg) (AddIncomeModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		cmd := m.submit()
		return m, cmd

	case key.Matches(msg, m.keys.Back):
		return m, cancel

	case key.Matches(msg, m.keys.Next, m.keys.Down):
		cmd := m.setFocus((m.focus + 1) % fieldCount)
		return m, cmd

	case key.Matches(msg, m.keys.Prev, m.keys.Up):
		cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd

	case m.focus == FieldCategory && key.Matches(msg, m.keys.Left):
		m.cycleCategory(-1)
		return m, nil

	case m.focus == FieldCategory && key.Matches(msg, m.keys.Right):
		m.cycleCategory(1)
		return m, nil

	case key.Matches(msg, m.keys.Select):
		switch m.focus {
		case FieldDate:
			m.selector.Open(&m.form)
			return m, nil
		case FieldCategory:
			m.cycleCategory(1)
			return m, nil
		case FieldDescription, FieldTotal:
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		case FieldSave:
			cmd := m.submit()
			return m, cmd
		case FieldCancel:
			return m, cancel
		}
	}

	return m.updateInputs(msg)
}

// updateInputs forwards msg to the focused text input and syncs the form.
func (m AddIncomeModel) updateInputs(msg tea.Msg) (AddIncomeModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FieldDescription:
		m.description, cmd = m.description.Update(msg)
		m.form.Description = m.description.Value()
	case FieldTotal:
		m.total, cmd = m.total.Update(msg)
		m.form.Total = m.total.Value()
	}
	return m, cmd
}

func (m *AddIncomeModel) setFocus(field AddIncomeField) tea.Cmd {
	m.focus = field
	m.description.Blur()
	m.total.Blur()

	switch field {
	case FieldDescription:
		return m.description.Focus()
	case FieldTotal:
		return m.total.Focus()
	}
	return nil
}

func (m *AddIncomeModel) cycleCategory(step int) {
	n := len(m.categories)
	m.categoryIndex = (m.categoryIndex + step + n) % n
	m.form.SelectCategory(m.categories[m.categoryIndex].Key)
}

// submit emits the form unless a save is running or already succeeded.
func (m *AddIncomeModel) submit() tea.Cmd {
	if m.pending || m.saved {
		return nil
	}
	m.pending = true
	form := m.form
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return SubmitIncomeMsg{Form: form} },
	)
}

func cancel() tea.Msg {
	return CancelAddIncomeMsg{}
}

// View renders the screen.
func (m AddIncomeModel) View() string {
	visible := m.selector.Visible(m.form)
	if visible && m.selector.Mode() == income.PickerModal {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderPicker())
	}

	rows := []string{
		m.theme.Title.Render("Add Income"),
		m.renderRow(FieldDate, "Date", m.form.DisplayDate()),
	}
	if visible {
		rows = append(rows, m.renderPicker())
	}
	rows = append(rows,
		m.renderRow(FieldCategory, "Category", "‹ "+m.form.Category+" ›"),
		m.renderRow(FieldDescription, "Description", m.description.View()),
		m.renderRow(FieldTotal, "Total", m.total.View()),
		"",
		m.renderButtons(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m AddIncomeModel) renderRow(field AddIncomeField, label, value string) string {
	labelStyle := m.theme.Normal.Width(14)
	if m.focus == field {
		labelStyle = m.theme.Bold.Foreground(m.theme.Primary).Width(14)
	}
	return labelStyle.Render(label) + value
}

func (m AddIncomeModel) renderButtons() string {
	button := func(field AddIncomeField, label string) string {
		if m.focus == field {
			return m.theme.Selected.Render("[ " + label + " ]")
		}
		return m.theme.Normal.Render("[ " + label + " ]")
	}

	save := button(FieldSave, "Save")
	switch {
	case m.pending:
		save = m.spinner.View() + " " + m.theme.StatusPending.Render("Saving...")
	case m.saved:
		save = m.theme.StatusSuccess.Render("Saved")
	}
	return save + "  " + button(FieldCancel, "Cancel")
}

func (m AddIncomeModel) renderPicker() string {
	shown := m.selector.Shown(m.form)

	var b strings.Builder
	b.WriteString(m.theme.Bold.Render(income.DisplayDate(shown)))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(shown.Format("Monday, January 2006")))
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render("←/→ day  ↑/↓ week  Enter done  Esc cancel"))

	return m.theme.RoundedBox.Render(b.String())
}
