// Package storage provides the local finances store for the income application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/the-income-must-flow/internal/model"
	"github.com/Veraticus/the-income-must-flow/internal/service"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrInvalidIncome    = errors.New("invalid income")
	ErrInvalidFilter    = errors.New("invalid income filter")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateIncome checks the fields the incomes table requires.
func validateIncome(record *model.IncomeRecord) error {
	if record == nil {
		return fmt.Errorf("%w: income", ErrNilParameter)
	}
	if strings.TrimSpace(record.Date) == "" {
		return fmt.Errorf("%w: missing date", ErrInvalidIncome)
	}
	if strings.TrimSpace(record.IncomeCategory) == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidIncome)
	}
	return nil
}

func validateFilter(filter service.IncomeFilter) error {
	if filter.Limit < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalidFilter)
	}
	if filter.From != "" && filter.To != "" && filter.To < filter.From {
		return fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, filter.From, filter.To)
	}
	return nil
}
