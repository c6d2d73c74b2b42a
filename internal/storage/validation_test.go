package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/the-income-must-flow/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{
			name:    "valid context",
			ctx:     context.Background(),
			wantErr: false,
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: true,
		},
		{
			name: "canceled context still valid",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateContext() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateString(t *testing.T) {
	assert.NoError(t, validateString("income.db", "dbPath"))
	assert.ErrorIs(t, validateString("", "dbPath"), ErrEmptyString)
	assert.ErrorIs(t, validateString(" \t", "dbPath"), ErrEmptyString)
}

func TestValidateFilter(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		filter  service.IncomeFilter
	}{
		{name: "empty"},
		{name: "open ended", filter: service.IncomeFilter{From: "2024-01-01"}},
		{name: "same day", filter: service.IncomeFilter{From: "2024-01-01", To: "2024-01-01"}},
		{name: "reversed", filter: service.IncomeFilter{From: "2024-02-01", To: "2024-01-01"}, wantErr: ErrInvalidDateRange},
		{name: "negative limit", filter: service.IncomeFilter{Limit: -5}, wantErr: ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFilter(tt.filter)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
