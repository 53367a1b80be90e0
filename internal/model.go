package internal

import (
	"context"
	"log/slog"

	"focus_timer/internal/sessionlog"
	"focus_timer/internal/timer"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

const (
	defaultWidth  = 56
	historyHeight = 6
)

// Options configures a Model. Zero values pick the real clock, the light
// theme and the default logger.
type Options struct {
	Clock  clockwork.Clock
	Dark   bool
	Logger *slog.Logger
}

type Model struct {
	Timer    *timer.Timer
	Sessions *sessionlog.Log
	Dark     bool
	Err      error

	clock   clockwork.Clock
	logger  *slog.Logger
	keys    keyMap
	help    help.Model
	history viewport.Model
	width   int
}

func NewModel(sessions *sessionlog.Log, opts Options) *Model {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	vp := viewport.New(defaultWidth, historyHeight)
	vp.KeyMap = historyKeyMap()

	m := &Model{
		Timer:    timer.New(clock),
		Sessions: sessions,
		Dark:     opts.Dark,
		clock:    clock,
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		history:  vp,
		width:    defaultWidth,
	}
	m.refreshHistory()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg:
		if m.Timer.Tick(msg) {
			return m, m.Timer.WaitTick()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = min(max(msg.Width-8, 30), defaultWidth)
		m.help.Width = m.width
		m.history.Width = m.width
		m.refreshHistory()
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	return m.mainView()
}

func (m *Model) styles() styles {
	if m.Dark {
		return darkStyles
	}
	return lightStyles
}

// Start begins timing. It returns the command that waits for the first tick,
// or nil if the timer was already running.
func (m *Model) Start() tea.Cmd {
	if m.Timer.Running() {
		return nil
	}
	m.Timer.Start()
	m.logger.Debug("Timer started", "elapsed", m.Timer.Elapsed())
	return m.Timer.WaitTick()
}

// Stop halts the timer and records the session when any time was counted.
func (m *Model) Stop() {
	elapsed, ok := m.Timer.Stop()
	if !ok {
		return
	}

	rec := sessionlog.NewRecord(elapsed, m.clock.Now())
	if err := m.Sessions.Append(context.Background(), rec); err != nil {
		m.Err = err
		m.logger.Error("Persisting session failed", "duration", rec.Duration, "error", err)
	} else {
		m.Err = nil
		m.logger.Info("Session recorded", "duration", rec.Duration, "timestamp", rec.Timestamp)
	}
	m.refreshHistory()
}

func (m *Model) Reset() {
	m.Timer.Reset()
	m.logger.Debug("Timer reset")
}

func (m *Model) ToggleTheme() {
	m.Dark = !m.Dark
	m.refreshHistory()
}

// Close cancels the tick schedule. A running session is dropped, not logged.
func (m *Model) Close() error {
	m.Timer.Close()
	return nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Timer.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		return m, m.Start()
	case key.Matches(msg, m.keys.Stop):
		m.Stop()
	case key.Matches(msg, m.keys.Toggle):
		if m.Timer.Running() {
			m.Stop()
			return m, nil
		}
		return m, m.Start()
	case key.Matches(msg, m.keys.Reset):
		m.Reset()
	case key.Matches(msg, m.keys.Theme):
		m.ToggleTheme()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}
	return m, nil
}

func historyKeyMap() viewport.KeyMap {
	keys := defaultKeyMap()
	return viewport.KeyMap{
		Up:       keys.Up,
		Down:     keys.Down,
		PageUp:   keys.PageUp,
		PageDown: keys.PageDown,
	}
}
