package income

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/api"
	"github.com/Veraticus/the-income-must-flow/internal/common"
	"github.com/Veraticus/the-income-must-flow/internal/model"
	"github.com/Veraticus/the-income-must-flow/internal/service"
)

// DefaultDismissDelay is how long the screen stays after a successful save.
const DefaultDismissDelay = time.Second

// SuccessNotification is shown once an income has been saved.
var SuccessNotification = service.Notification{
	Kind:     service.NotificationSuccess,
	Title:    "Income Added",
	Message:  "Your income was saved successfully.",
	Duration: time.Second,
}

// Scheduler runs fn after d. Tests replace it to run fn synchronously.
type Scheduler func(d time.Duration, fn func())

// Deps are the collaborators a Workflow needs.
// Notifier and Navigator are optional; batch callers leave them nil.
type Deps struct {
	Tokens    service.TokenProvider
	API       service.IncomeAPI
	Store     service.FinancesStore
	Notifier  service.Notifier
	Navigator service.Navigator
}

// Workflow submits a filled-in form: token, POST, store update, toast, back.
type Workflow struct {
	tokens       service.TokenProvider
	api          service.IncomeAPI
	store        service.FinancesStore
	notifier     service.Notifier
	navigator    service.Navigator
	schedule     Scheduler
	dismissDelay time.Duration
	inFlight     atomic.Bool
}

// WorkflowOption configures a Workflow.
type WorkflowOption func(*Workflow)

// WithDismissDelay sets the pause between the toast and going back.
func WithDismissDelay(d time.Duration) WorkflowOption {
	return func(w *Workflow) {
		w.dismissDelay = d
	}
}

// WithScheduler replaces the timer used to delay navigation.
func WithScheduler(s Scheduler) WorkflowOption {
	return func(w *Workflow) {
		w.schedule = s
	}
}

// NewWorkflow wires a workflow. Tokens, API and Store are required.
func NewWorkflow(deps Deps, opts ...WorkflowOption) (*Workflow, error) {
	if deps.Tokens == nil {
		return nil, fmt.Errorf("%w: token provider", common.ErrMissingConfig)
	}
	if deps.API == nil {
		return nil, fmt.Errorf("%w: income api", common.ErrMissingConfig)
	}
	if deps.Store == nil {
		return nil, fmt.Errorf("%w: finances store", common.ErrMissingConfig)
	}

	w := &Workflow{
		tokens:       deps.Tokens,
		api:          deps.API,
		store:        deps.Store,
		notifier:     deps.Notifier,
		navigator:    deps.Navigator,
		dismissDelay: DefaultDismissDelay,
		schedule:     afterFunc,
	}
	if w.notifier == nil {
		w.notifier = nopNotifier{}
	}
	if w.navigator == nil {
		w.navigator = nopNavigator{}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Pending reports whether a submission is currently in flight.
func (w *Workflow) Pending() bool {
	return w.inFlight.Load()
}

// Submit sends the form to the backend. The form is taken by value and is
// never modified, so a failed attempt can be retried as is.
//
// A missing token aborts before any network call. API failures are logged
// and returned; nothing is retried. On success the record is added to the
// store, the success notification is shown and navigation back is
// scheduled after the dismiss delay.
func (w *Workflow) Submit(ctx context.Context, form Form) (*model.IncomeRecord, error) {
	return w.SubmitWithNavigator(ctx, form, nil)
}

// SubmitWithNavigator is Submit with the go-back sent to navigator instead of
// the configured one, so a screen can tie the delayed navigation to itself.
// A nil navigator uses the configured one.
func (w *Workflow) SubmitWithNavigator(ctx context.Context, form Form, navigator service.Navigator) (*model.IncomeRecord, error) {
	if navigator == nil {
		navigator = w.navigator
	}
	if !w.inFlight.CompareAndSwap(false, true) {
		slog.Warn("Ignoring save while a submission is in flight")
		return nil, common.ErrSubmissionInFlight
	}
	defer w.inFlight.Store(false)

	payload := form.Payload()

	token, err := w.tokens.Token(ctx)
	if err != nil {
		if errors.Is(err, common.ErrMissingToken) {
			slog.Error("No access token available!")
			return nil, err
		}
		common.LogError(err, "Failed to read access token", nil)
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	record, err := w.api.AddIncome(ctx, token, payload)
	if err != nil {
		logSubmitFailure(err)
		return nil, err
	}

	slog.Info("Income added",
		"remote_id", record.RemoteID,
		"date", payload.Date,
		"category", payload.IncomeCategory)

	// The backend already holds the record, so a local store failure still
	// completes the screen; the caller gets the error to report.
	storeErr := w.store.AddIncome(ctx, record)
	if storeErr != nil {
		common.LogError(storeErr, "Failed to add income to local store", common.Fields{
			"remote_id": record.RemoteID,
		})
		storeErr = fmt.Errorf("income saved remotely but not locally: %w", storeErr)
	}

	w.notifier.Notify(SuccessNotification)
	w.schedule(w.dismissDelay, navigator.GoBack)

	return record, storeErr
}

func logSubmitFailure(err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		slog.Error("Error adding income",
			"status", apiErr.StatusCode,
			"detail", apiErr.Message())
		return
	}
	slog.Error("Error during API call", "error", err)
}

func afterFunc(d time.Duration, fn func()) {
	if d <= 0 {
		fn()
		return
	}
	time.AfterFunc(d, fn)
}

type nopNotifier struct{}

func (nopNotifier) Notify(service.Notification) {}

type nopNavigator struct{}

func (nopNavigator) GoBack() {}
