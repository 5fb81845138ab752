package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case reportMsg:
		m.report = &msg.report
		m.streak = msg.streak
		m.hidden = make(map[string]bool, len(msg.settings.HiddenThemes))
		for _, t := range msg.settings.HiddenThemes {
			m.hidden[t] = true
		}
		m.loading = false
		m.err = nil

	case errMsg:
		m.err = msg.err
		m.loading = false

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
		case key.Matches(msg, m.keys.PrevWeek):
			m.shiftWeek(-7)
			m.loading = true
			return m, m.loadReport()
		case key.Matches(msg, m.keys.NextWeek):
			m.shiftWeek(7)
			m.loading = true
			return m, m.loadReport()
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadReport()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}
