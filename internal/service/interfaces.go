// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/model"
	"github.com/shopspring/decimal"
)

// IncomeFilter narrows income queries. Zero values mean unbounded.
type IncomeFilter struct {
	Category string
	From     string // inclusive, YYYY-MM-DD
	To       string // inclusive, YYYY-MM-DD
	Limit    int
}

// CategoryTotal is the summed income for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// FinancesStore is the app-wide holder of income records.
// Idempotency and conflict handling belong to the implementation.
type FinancesStore interface {
	AddIncome(ctx context.Context, record *model.IncomeRecord) error
	ListIncomes(ctx context.Context, filter IncomeFilter) ([]model.IncomeRecord, error)
	GetIncomeSummary(ctx context.Context) ([]CategoryTotal, error)
}

// Storage is the persistence layer: the finances store plus lifecycle.
type Storage interface {
	FinancesStore

	Migrate(ctx context.Context) error
	Close() error
}

// TokenProvider supplies the bearer token for API calls.
// Implementations return common.ErrMissingToken when no token is available.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// IncomeAPI is the remote endpoint that creates income records.
type IncomeAPI interface {
	AddIncome(ctx context.Context, token string, income model.IncomeSubmission) (*model.IncomeRecord, error)
}

// Navigator returns to the previous screen.
type Navigator interface {
	GoBack()
}

// NotificationKind selects how a notification is styled.
type NotificationKind string

// Notification kinds.
const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

// Notification is a transient message such as a toast.
type Notification struct {
	Kind     NotificationKind
	Title    string
	Message  string
	Duration time.Duration
}

// Notifier shows transient notifications.
type Notifier interface {
	Notify(n Notification)
}
