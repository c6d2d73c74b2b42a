// Package income implements the "add income" form and its submission workflow.
package income

import (
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/model"
)

// DisplayLayout is how dates are shown on screen (dd/MM/yyyy).
const DisplayLayout = "02/01/2006"

// Form holds the mutable values of the add income screen.
type Form struct {
	Date              time.Time
	Category          string
	Description       string
	Total             string // raw text, validated only by the backend
	DatePickerVisible bool
}

// NewForm returns a form with the screen defaults: date now, category Salary.
func NewForm(now time.Time) Form {
	return Form{
		Date:     now,
		Category: model.DefaultIncomeCategory,
	}
}

// SelectCategory applies a catalog selection. Unknown keys are kept as typed.
func (f *Form) SelectCategory(key string) {
	f.Category = model.ResolveIncomeCategory(key)
}

// DisplayDate formats the form date for the screen.
func (f Form) DisplayDate() string {
	return DisplayDate(f.Date)
}

// Payload builds the request body from the current form values.
func (f Form) Payload() model.IncomeSubmission {
	return model.IncomeSubmission{
		Date:           f.Date.Format(model.DateLayout),
		IncomeCategory: model.ResolveIncomeCategory(f.Category),
		Description:    f.Description,
		Total:          ParseTotal(f.Total),
	}
}

// DisplayDate formats t as dd/MM/yyyy.
func DisplayDate(t time.Time) string {
	return t.Format(DisplayLayout)
}
