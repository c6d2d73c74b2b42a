package testutil

import (
	"context"
	"sync"

	"github.com/Veraticus/the-income-must-flow/internal/common"
	"github.com/Veraticus/the-income-must-flow/internal/model"
	"github.com/Veraticus/the-income-must-flow/internal/service"
)

// EventLog records the order in which collaborators were called.
type EventLog struct {
	events []string
	mu     sync.Mutex
}

// Add appends an event.
func (l *EventLog) Add(event string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

// Events returns a copy of the recorded events.
func (l *EventLog) Events() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

// MockTokenProvider is a scriptable service.TokenProvider.
type MockTokenProvider struct {
	TokenFn func(ctx context.Context) (string, error)
	Value   string
	calls   int
	mu      sync.Mutex
}

// Token implements service.TokenProvider. An empty Value means no token.
func (m *MockTokenProvider) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.TokenFn != nil {
		return m.TokenFn(ctx)
	}
	if m.Value == "" {
		return "", common.ErrMissingToken
	}
	return m.Value, nil
}

// Calls returns how many times Token was called.
func (m *MockTokenProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// AddIncomeCall records the parameters of an AddIncome call.
type AddIncomeCall struct {
	Token  string
	Income model.IncomeSubmission
}

// MockIncomeAPI is a scriptable service.IncomeAPI.
type MockIncomeAPI struct {
	AddIncomeFn func(ctx context.Context, token string, income model.IncomeSubmission) (*model.IncomeRecord, error)
	Log         *EventLog
	calls       []AddIncomeCall
	mu          sync.Mutex
}

// AddIncome implements service.IncomeAPI.
func (m *MockIncomeAPI) AddIncome(ctx context.Context, token string, income model.IncomeSubmission) (*model.IncomeRecord, error) {
	m.mu.Lock()
	m.calls = append(m.calls, AddIncomeCall{Token: token, Income: income})
	m.mu.Unlock()
	m.Log.Add("api")

	if m.AddIncomeFn != nil {
		return m.AddIncomeFn(ctx, token, income)
	}

	// Default behavior: echo the submission back as a record
	return &model.IncomeRecord{
		RemoteID:       "1",
		Date:           income.Date,
		IncomeCategory: income.IncomeCategory,
		Description:    income.Description,
	}, nil
}

// Calls returns a copy of the recorded calls.
func (m *MockIncomeAPI) Calls() []AddIncomeCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]AddIncomeCall(nil), m.calls...)
}

// MockStore is an in-memory service.FinancesStore.
type MockStore struct {
	AddIncomeErr error
	Log          *EventLog
	records      []model.IncomeRecord
	addCalls     int
	mu           sync.Mutex
}

// AddIncome implements service.FinancesStore.
func (m *MockStore) AddIncome(_ context.Context, record *model.IncomeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addCalls++
	m.Log.Add("store")

	if m.AddIncomeErr != nil {
		return m.AddIncomeErr
	}
	record.ID = int64(len(m.records) + 1)
	m.records = append(m.records, *record)
	return nil
}

// ListIncomes implements service.FinancesStore. Only Category is honoured.
func (m *MockStore) ListIncomes(_ context.Context, filter service.IncomeFilter) ([]model.IncomeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.IncomeRecord
	for _, r := range m.records {
		if filter.Category != "" && r.IncomeCategory != filter.Category {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// GetIncomeSummary implements service.FinancesStore.
func (m *MockStore) GetIncomeSummary(_ context.Context) ([]service.CategoryTotal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	index := map[string]int{}
	var out []service.CategoryTotal
	for _, r := range m.records {
		i, ok := index[r.IncomeCategory]
		if !ok {
			i = len(out)
			index[r.IncomeCategory] = i
			out = append(out, service.CategoryTotal{Category: r.IncomeCategory})
		}
		out[i].Total = out[i].Total.Add(r.Total)
		out[i].Count++
	}
	return out, nil
}

// AddCalls returns how many times AddIncome was called.
func (m *MockStore) AddCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addCalls
}

// Records returns a copy of the stored records.
func (m *MockStore) Records() []model.IncomeRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.IncomeRecord(nil), m.records...)
}

// MockNotifier records notifications.
type MockNotifier struct {
	Log           *EventLog
	notifications []service.Notification
	mu            sync.Mutex
}

// Notify implements service.Notifier.
func (m *MockNotifier) Notify(n service.Notification) {
	m.mu.Lock()
	m.notifications = append(m.notifications, n)
	m.mu.Unlock()
	m.Log.Add("notify")
}

// Notifications returns a copy of the recorded notifications.
func (m *MockNotifier) Notifications() []service.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]service.Notification(nil), m.notifications...)
}

// MockNavigator counts GoBack calls.
type MockNavigator struct {
	Log   *EventLog
	backs int
	mu    sync.Mutex
}

// GoBack implements service.Navigator.
func (m *MockNavigator) GoBack() {
	m.mu.Lock()
	m.backs++
	m.mu.Unlock()
	m.Log.Add("back")
}

// Backs returns how many times GoBack was called.
func (m *MockNavigator) Backs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.backs
}

var (
	_ service.TokenProvider = (*MockTokenProvider)(nil)
	_ service.IncomeAPI     = (*MockIncomeAPI)(nil)
	_ service.FinancesStore = (*MockStore)(nil)
	_ service.Notifier      = (*MockNotifier)(nil)
	_ service.Navigator     = (*MockNavigator)(nil)
)
