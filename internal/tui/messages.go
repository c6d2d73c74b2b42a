package tui

import (
	"github.com/Veraticus/the-income-must-flow/internal/model"
	"github.com/Veraticus/the-income-must-flow/internal/service"
)

// Data loading messages.
type incomesLoadedMsg struct {
	err     error
	records []model.IncomeRecord
	summary []service.CategoryTotal
}

// Submission messages.
type submissionResultMsg struct {
	err    error
	record *model.IncomeRecord
	screen int
}

// Messages sent by the workflow through the Bridge.
type notifyMsg struct {
	notification service.Notification
}

// goBackMsg closes the Add Income screen. A zero screen closes whichever
// one is open.
type goBackMsg struct {
	screen int
}

// openAddIncomeMsg pushes the Add Income screen.
type openAddIncomeMsg struct{}
