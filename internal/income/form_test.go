package income

import (
	"math"
	"testing"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNewForm_Defaults(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	f := NewForm(now)

	assert.Equal(t, now, f.Date)
	assert.Equal(t, "Salary", f.Category)
	assert.Empty(t, f.Description)
	assert.Empty(t, f.Total)
	assert.False(t, f.DatePickerVisible)
}

func TestForm_SelectCategory(t *testing.T) {
	f := NewForm(time.Now())

	f.SelectCategory("3")
	assert.Equal(t, "Investment", f.Category)

	f.SelectCategory("Royalties")
	assert.Equal(t, "Royalties", f.Category)
}

func TestForm_Payload(t *testing.T) {
	tests := []struct {
		form Form
		want model.IncomeSubmission
		name string
	}{
		{
			name: "catalog key resolves to label",
			form: Form{
				Date:        time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC),
				Category:    "2",
				Description: "side gig",
				Total:       "150.75",
			},
			want: model.IncomeSubmission{
				Date:           "2024-03-05",
				IncomeCategory: "Freelance",
				Description:    "side gig",
				Total:          150.75,
			},
		},
		{
			name: "label passes through",
			form: Form{
				Date:     time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
				Category: "Salary",
				Total:    "12.5",
			},
			want: model.IncomeSubmission{
				Date:           "2023-12-01",
				IncomeCategory: "Salary",
				Total:          12.5,
			},
		},
		{
			name: "free form category",
			form: Form{
				Date:     time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
				Category: "Gifts",
				Total:    "7",
			},
			want: model.IncomeSubmission{
				Date:           "2024-01-09",
				IncomeCategory: "Gifts",
				Total:          7,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.form.Payload())
		})
	}
}

func TestForm_Payload_EmptyTotalIsNaN(t *testing.T) {
	f := NewForm(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))

	p := f.Payload()
	assert.True(t, math.IsNaN(p.Total))
	assert.Equal(t, "2024-03-05", p.Date)
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "05/03/2024", DisplayDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31/12/1999", NewForm(time.Date(1999, 12, 31, 8, 0, 0, 0, time.UTC)).DisplayDate())
}
