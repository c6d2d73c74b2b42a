package tui

import (
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/income"
	"github.com/Veraticus/the-income-must-flow/internal/service"
	"github.com/Veraticus/the-income-must-flow/internal/tui/themes"
)

// Screen identifies an entry on the navigation stack.
type Screen int

// Screens.
const (
	ScreenList Screen = iota
	ScreenAddIncome
)

func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "list"
	case ScreenAddIncome:
		return "add-income"
	default:
		return "unknown"
	}
}

// Config holds TUI configuration.
type Config struct {
	Theme         themes.Theme
	Store         service.FinancesStore
	Tokens        service.TokenProvider
	API           service.IncomeAPI
	Now           func() time.Time
	PickerMode    income.PickerMode
	InitialScreen Screen
	DismissDelay  time.Duration
	ListLimit     int
	Width         int
	Height        int
	Record        bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:         themes.Default,
		Now:           time.Now,
		PickerMode:    income.PickerAuto,
		InitialScreen: ScreenList,
		DismissDelay:  income.DefaultDismissDelay,
		ListLimit:     200,
		Width:         80,
		Height:        24,
	}
}

// WithStore sets the local finances store.
func WithStore(store service.FinancesStore) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithTokens sets the access token source.
func WithTokens(tokens service.TokenProvider) Option {
	return func(c *Config) {
		c.Tokens = tokens
	}
}

// WithAPI sets the remote income API.
func WithAPI(api service.IncomeAPI) Option {
	return func(c *Config) {
		c.API = api
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithPickerMode selects the date picker strategy.
func WithPickerMode(mode income.PickerMode) Option {
	return func(c *Config) {
		c.PickerMode = mode
	}
}

// WithDismissDelay sets how long the Add Income screen stays after saving.
func WithDismissDelay(d time.Duration) Option {
	return func(c *Config) {
		c.DismissDelay = d
	}
}

// WithInitialScreen opens the given screen on top of the list at startup.
func WithInitialScreen(screen Screen) Option {
	return func(c *Config) {
		c.InitialScreen = screen
	}
}

// WithClock replaces time.Now for new forms.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithRecording dumps every frame to a temp directory for debugging.
func WithRecording(enabled bool) Option {
	return func(c *Config) {
		c.Record = enabled
	}
}
