package tui

import (
	"log/slog"
	"slices"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/income"
	"github.com/Veraticus/the-income-must-flow/internal/service"
	"github.com/Veraticus/the-income-must-flow/internal/tui/components"
	"github.com/Veraticus/the-income-must-flow/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the main TUI state.
type Model struct {
	theme     themes.Theme
	now       func() time.Time
	store     service.FinancesStore
	workflow  *income.Workflow
	bridge    *Bridge
	recorder  *Recorder
	lastError error
	config    Config
	keymap    KeyMap
	help      help.Model
	list      components.IncomeListModel
	addIncome components.AddIncomeModel
	toast     components.ToastModel
	stack     []Screen
	width     int
	height    int
	quitting  bool

	// addScreenID identifies the open Add Income screen; lastScreenID
	// is the most recent one handed out.
	addScreenID  int
	lastScreenID int
}

// newModel creates a new model with the given configuration. bridge may be
// nil, in which case go-backs are not tied to a screen.
func newModel(cfg Config, workflow *income.Workflow, bridge *Bridge) Model {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		theme:    cfg.Theme,
		now:      now,
		store:    cfg.Store,
		workflow: workflow,
		bridge:   bridge,
		config:   cfg,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		list:     components.NewIncomeList(cfg.Theme),
		toast:    components.NewToast(cfg.Theme),
		stack:    []Screen{ScreenList},
		width:    cfg.Width,
		height:   cfg.Height,
	}
	m.handleResize()

	if cfg.InitialScreen == ScreenAddIncome {
		// A bad picker mode is caught by New; fall back quietly here.
		_ = m.pushAddIncome()
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadIncomes()}
	if m.Screen() == ScreenAddIncome {
		cmds = append(cmds, m.addIncome.Init())
	}
	return tea.Batch(cmds...)
}

// Screen returns the screen on top of the navigation stack.
func (m Model) Screen() Screen {
	return m.stack[len(m.stack)-1]
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if m.recorder != nil {
		m.recorder.RecordState(next, msg)
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.Screen() == ScreenList {
			return m.handleListKeys(msg)
		}

	case incomesLoadedMsg:
		m.lastError = msg.err
		if msg.err == nil {
			m.list.SetRecords(msg.records)
			m.list.SetSummary(msg.summary)
		}
		return m, nil

	case openAddIncomeMsg:
		cmd := m.pushAddIncome()
		return m, cmd

	case components.SubmitIncomeMsg:
		return m, m.submit(msg.Form)

	case submissionResultMsg:
		return m.handleSubmissionResult(msg)

	case notifyMsg:
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Show(msg.notification)
		return m, cmd

	case components.ToastExpiredMsg:
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Update(msg)
		return m, cmd

	case goBackMsg:
		if msg.screen != 0 && msg.screen != m.addScreenID {
			slog.Debug("Ignoring go back from a closed screen", "screen", msg.screen)
			return m, nil
		}
		m.popAddIncome()
		return m, nil

	case components.CancelAddIncomeMsg:
		m.popAddIncome()
		return m, nil
	}

	// Delegate to the active screen
	var cmd tea.Cmd
	switch m.Screen() {
	case ScreenList:
		m.list, cmd = m.list.Update(msg)
	case ScreenAddIncome:
		m.addIncome, cmd = m.addIncome.Update(msg)
	}
	return m, cmd
}

func (m Model) handleListKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Add):
		cmd := m.pushAddIncome()
		return m, cmd
	case key.Matches(msg, m.keymap.Refresh):
		return m, m.loadIncomes()
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleSubmissionResult(msg submissionResultMsg) (Model, tea.Cmd) {
	if m.Screen() == ScreenAddIncome && msg.screen == m.addScreenID {
		if msg.record != nil {
			// Stay locked until the scheduled go-back closes the screen.
			m.addIncome.MarkSaved()
		} else {
			m.addIncome.SetPending(false)
		}
	}
	// Failures are logged by the workflow and leave the form as it was.
	// A record means the backend accepted it, even if the local store failed.
	if msg.record != nil {
		return m, m.loadIncomes()
	}
	return m, nil
}

// pushAddIncome opens the Add Income screen with a fresh form.
func (m *Model) pushAddIncome() tea.Cmd {
	if m.Screen() == ScreenAddIncome {
		return nil
	}

	selector, err := income.NewDateSelector(m.config.PickerMode)
	if err != nil {
		m.lastError = err
		selector, _ = income.NewDateSelector(income.PickerAuto)
	}

	m.lastScreenID++
	m.addScreenID = m.lastScreenID
	m.addIncome = components.NewAddIncome(income.NewForm(m.now()), selector, m.theme)
	m.addIncome.Resize(m.width-2, m.height-4)
	m.stack = append(slices.Clone(m.stack), ScreenAddIncome)
	return m.addIncome.Init()
}

// popAddIncome returns to the previous screen if Add Income is on top.
func (m *Model) popAddIncome() {
	if len(m.stack) < 2 || m.Screen() != ScreenAddIncome {
		return
	}
	m.stack = slices.Clone(m.stack[:len(m.stack)-1])
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	// Account for borders (2) and help line (2)
	m.list.Resize(m.width-2, m.height-4)
	m.addIncome.Resize(m.width-2, m.height-4)
	m.help.Width = m.width
}
