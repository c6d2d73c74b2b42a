package income

import (
	"fmt"
	"runtime"
	"time"
)

// PickerMode identifies a date selection strategy.
type PickerMode string

// Picker modes.
const (
	// PickerModal stages changes and commits them only on confirmation.
	PickerModal PickerMode = "modal"
	// PickerInline applies every change immediately; closing never reverts.
	PickerInline PickerMode = "inline"
	// PickerAuto picks a mode from the platform.
	PickerAuto PickerMode = "auto"
)

// DateSelector drives the date picker for a form.
type DateSelector interface {
	Mode() PickerMode
	// Open shows the picker for the form's current date.
	Open(f *Form)
	Visible(f Form) bool
	// Shown is the date currently displayed by the picker.
	Shown(f Form) time.Time
	// Change is a user edit inside the picker.
	Change(f *Form, date time.Time)
	// Done is the confirm control.
	Done(f *Form)
	// Cancel is the dismiss control.
	Cancel(f *Form)
}

// NewDateSelector returns the strategy for mode, resolving auto from the platform.
func NewDateSelector(mode PickerMode) (DateSelector, error) {
	if mode == PickerAuto || mode == "" {
		mode = PlatformPickerMode(runtime.GOOS)
	}

	switch mode {
	case PickerModal:
		return &ModalDateSelector{}, nil
	case PickerInline:
		return &InlineDateSelector{}, nil
	default:
		return nil, fmt.Errorf("unknown date picker mode %q", mode)
	}
}

// PlatformPickerMode is the default strategy for an OS: darwin gets the
// inline spinner, everything else the modal picker.
func PlatformPickerMode(goos string) PickerMode {
	if goos == "darwin" || goos == "ios" {
		return PickerInline
	}
	return PickerModal
}

// ModalDateSelector behaves like a native modal dialog: edits are staged
// and reach the form only when confirmed.
type ModalDateSelector struct {
	staged time.Time
	open   bool
}

// Mode implements DateSelector.
func (s *ModalDateSelector) Mode() PickerMode { return PickerModal }

// Open implements DateSelector.
func (s *ModalDateSelector) Open(f *Form) {
	s.staged = f.Date
	s.open = true
	f.DatePickerVisible = true
}

// Visible implements DateSelector.
func (s *ModalDateSelector) Visible(_ Form) bool { return s.open }

// Shown implements DateSelector.
func (s *ModalDateSelector) Shown(f Form) time.Time {
	if s.open {
		return s.staged
	}
	return f.Date
}

// Change implements DateSelector.
func (s *ModalDateSelector) Change(_ *Form, date time.Time) {
	if s.open {
		s.staged = date
	}
}

// Done implements DateSelector.
func (s *ModalDateSelector) Done(f *Form) {
	if !s.open {
		return
	}
	f.Date = s.staged
	s.close(f)
}

// Cancel implements DateSelector.
func (s *ModalDateSelector) Cancel(f *Form) {
	s.close(f)
}

func (s *ModalDateSelector) close(f *Form) {
	s.open = false
	s.staged = time.Time{}
	f.DatePickerVisible = false
}

// InlineDateSelector behaves like an embedded spinner: changes apply at
// once and the Cancel/Done controls only hide it.
type InlineDateSelector struct{}

// Mode implements DateSelector.
func (s *InlineDateSelector) Mode() PickerMode { return PickerInline }

// Open implements DateSelector.
func (s *InlineDateSelector) Open(f *Form) { f.DatePickerVisible = true }

// Visible implements DateSelector.
func (s *InlineDateSelector) Visible(f Form) bool { return f.DatePickerVisible }

// Shown implements DateSelector.
func (s *InlineDateSelector) Shown(f Form) time.Time { return f.Date }

// Change implements DateSelector.
func (s *InlineDateSelector) Change(f *Form, date time.Time) {
	if f.DatePickerVisible {
		f.Date = date
	}
}

// Done implements DateSelector.
func (s *InlineDateSelector) Done(f *Form) { f.DatePickerVisible = false }

// Cancel implements DateSelector. It does not restore the previous date.
func (s *InlineDateSelector) Cancel(f *Form) { f.DatePickerVisible = false }
