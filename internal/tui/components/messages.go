package components

import "github.com/Veraticus/the-income-must-flow/internal/income"

// SubmitIncomeMsg asks the app to submit a filled-in form.
type SubmitIncomeMsg struct {
	Form income.Form
}

// CancelAddIncomeMsg leaves the Add Income screen without saving.
type CancelAddIncomeMsg struct{}

// ToastExpiredMsg hides the toast with the given ID.
type ToastExpiredMsg struct {
	ID int
}
