package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncomeSubmission_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		want string
		sub  IncomeSubmission
	}{
		{
			name: "finite total",
			sub:  IncomeSubmission{Date: "2024-03-05", IncomeCategory: "Freelance", Description: "side gig", Total: 150.75},
			want: `{"date":"2024-03-05","income_category":"Freelance","description":"side gig","total":150.75}`,
		},
		{
			name: "NaN total is sent as null",
			sub:  IncomeSubmission{Date: "2024-03-05", IncomeCategory: "Salary", Total: math.NaN()},
			want: `{"date":"2024-03-05","income_category":"Salary","description":"","total":null}`,
		},
		{
			name: "infinite total is sent as null",
			sub:  IncomeSubmission{Date: "2024-03-05", IncomeCategory: "Salary", Total: math.Inf(1)},
			want: `{"date":"2024-03-05","income_category":"Salary","description":"","total":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.sub)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestIncomeRecord_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantID    string
		wantTotal decimal.Decimal
	}{
		{
			name:      "numeric id and total",
			body:      `{"id":7,"date":"2024-03-05","income_category":"Freelance","description":"side gig","total":150.75,"user_id":3}`,
			wantID:    "7",
			wantTotal: decimal.RequireFromString("150.75"),
		},
		{
			name:      "string id and total",
			body:      `{"id":"abc-1","date":"2024-03-05","income_category":"Salary","description":"","total":"1200.10"}`,
			wantID:    "abc-1",
			wantTotal: decimal.RequireFromString("1200.10"),
		},
		{
			name:      "missing id",
			body:      `{"date":"2024-03-05","income_category":"Salary","total":5}`,
			wantID:    "",
			wantTotal: decimal.NewFromInt(5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec IncomeRecord
			require.NoError(t, json.Unmarshal([]byte(tt.body), &rec))

			assert.Equal(t, tt.wantID, rec.RemoteID)
			assert.True(t, tt.wantTotal.Equal(rec.Total), "total %s", rec.Total)
			assert.Equal(t, "2024-03-05", rec.Date)
			assert.JSONEq(t, tt.body, string(rec.Raw))
		})
	}
}

func TestIncomeRecord_UnmarshalJSON_NotAnObject(t *testing.T) {
	var rec IncomeRecord
	err := json.Unmarshal([]byte(`"created"`), &rec)
	assert.Error(t, err)
}
