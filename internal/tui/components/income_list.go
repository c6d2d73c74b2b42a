package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/income"
	"github.com/Veraticus/the-income-must-flow/internal/model"
	"github.com/Veraticus/the-income-must-flow/internal/service"
	"github.com/Veraticus/the-income-must-flow/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// IncomeListModel shows the records in the local finances store.
type IncomeListModel struct {
	theme   themes.Theme
	records []model.IncomeRecord
	summary []service.CategoryTotal
	table   table.Model
	width   int
	height  int
}

// NewIncomeList creates an empty income list.
func NewIncomeList(theme themes.Theme) IncomeListModel {
	t := table.New(
		table.WithColumns(incomeColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return IncomeListModel{
		theme:  theme,
		table:  t,
		width:  80,
		height: 24,
	}
}

func incomeColumns(width int) []table.Column {
	description := max(width-12-14-14-8, 10)
	return []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Category", Width: 14},
		{Title: "Description", Width: description},
		{Title: "Total", Width: 14},
	}
}

// SetRecords replaces the listed records.
func (m *IncomeListModel) SetRecords(records []model.IncomeRecord) {
	m.records = records

	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, table.Row{
			displayRecordDate(r.Date),
			r.IncomeCategory,
			r.Description,
			r.Total.StringFixed(2),
		})
	}
	m.table.SetRows(rows)
}

// SetSummary replaces the per-category totals.
func (m *IncomeListModel) SetSummary(summary []service.CategoryTotal) {
	m.summary = summary
}

// Records returns the listed records.
func (m IncomeListModel) Records() []model.IncomeRecord {
	return m.records
}

// Resize updates the available space.
func (m *IncomeListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(incomeColumns(width))
	m.table.SetHeight(max(height-6, 3))
}

// Update handles messages.
func (m IncomeListModel) Update(msg tea.Msg) (IncomeListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the list.
func (m IncomeListModel) View() string {
	header := m.theme.Title.Render("Income")

	var body string
	if len(m.records) == 0 {
		body = lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("No income recorded yet. Press a to add one.")
	} else {
		body = m.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, "", m.renderSummary())
}

func (m IncomeListModel) renderSummary() string {
	if len(m.summary) == 0 {
		return ""
	}

	parts := make([]string, 0, len(m.summary))
	grand := decimal.Zero
	for _, s := range m.summary {
		parts = append(parts, fmt.Sprintf("%s %s (%d)", s.Category, s.Total.StringFixed(2), s.Count))
		grand = grand.Add(s.Total)
	}

	total := m.theme.StatusSuccess.Render("Total " + grand.StringFixed(2))
	return total + "  " + lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(parts, " · "))
}

func displayRecordDate(date string) string {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return income.DisplayDate(t)
}
