package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/charlit/internal/models"
	"github.com/julianstephens/charlit/internal/scoring"
	"github.com/julianstephens/charlit/internal/storage"
)

type SessionState int

const (
	StateScores SessionState = iota
	StateHighlights
	StatePrompts
	StateStreak
)

const tabCount = 4

type reportMsg struct {
	report   models.WeeklyReport
	streak   models.CheckInStreak
	settings storage.Settings
}

type errMsg struct {
	err error
}

type Model struct {
	store     storage.Provider
	engine    *scoring.Engine
	state     SessionState
	keys      KeyMap
	help      help.Model
	weekStart string
	report    *models.WeeklyReport
	streak    models.CheckInStreak
	hidden    map[string]bool
	loading   bool
	err       error
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, engine *scoring.Engine) Model {
	return Model{
		store:     store,
		engine:    engine,
		state:     StateScores,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		weekStart: engine.CurrentWeekStart(),
		loading:   true,
	}
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.PrevWeek, m.keys.NextWeek, m.keys.Refresh, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.PrevWeek, m.keys.NextWeek, m.keys.Refresh},
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadReport()
}

// loadReport recomputes the selected week from the store. Recomputation on
// every refresh is intentional: stored entries are the single source of
// truth and no derived state is cached between views.
func (m Model) loadReport() tea.Cmd {
	weekStart := m.weekStart
	engine := m.engine
	store := m.store
	return func() tea.Msg {
		report, err := engine.CalculateWeeklyReport(weekStart)
		if err != nil {
			return errMsg{err: err}
		}
		streak, err := engine.Streak()
		if err != nil {
			return errMsg{err: err}
		}
		settings, err := store.GetSettings()
		if err != nil {
			return errMsg{err: err}
		}
		return reportMsg{report: report, streak: streak, settings: settings}
	}
}

func (m *Model) shiftWeek(days int) {
	t, err := time.Parse("2006-01-02", m.weekStart)
	if err != nil {
		return
	}
	m.weekStart = t.AddDate(0, 0, days).Format("2006-01-02")
}
