package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/income"
	"github.com/Veraticus/the-income-must-flow/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// loadIncomes loads records and totals from the store.
func (m Model) loadIncomes() tea.Cmd {
	store := m.store
	limit := m.config.ListLimit
	return func() tea.Msg {
		if store == nil {
			return incomesLoadedMsg{err: fmt.Errorf("storage not configured")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		records, err := store.ListIncomes(ctx, service.IncomeFilter{Limit: limit})
		if err != nil {
			return incomesLoadedMsg{err: fmt.Errorf("failed to load incomes: %w", err)}
		}

		summary, err := store.GetIncomeSummary(ctx)
		if err != nil {
			return incomesLoadedMsg{err: fmt.Errorf("failed to load income summary: %w", err)}
		}

		return incomesLoadedMsg{
			records: records,
			summary: summary,
		}
	}
}

// submit runs the workflow off the event loop. The go-back it schedules is
// tied to the current Add Income screen.
func (m Model) submit(form income.Form) tea.Cmd {
	workflow := m.workflow
	screen := m.addScreenID
	var navigator service.Navigator
	if m.bridge != nil {
		navigator = m.bridge.ForScreen(screen)
	}
	return func() tea.Msg {
		if workflow == nil {
			return submissionResultMsg{err: fmt.Errorf("income workflow not configured"), screen: screen}
		}
		record, err := workflow.SubmitWithNavigator(context.Background(), form, navigator)
		return submissionResultMsg{
			record: record,
			err:    err,
			screen: screen,
		}
	}
}
