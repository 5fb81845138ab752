package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/charlit/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case m.err != nil:
		content = errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	case m.loading || m.report == nil:
		content = dimStyle.Render("Computing report...")
	default:
		switch m.state {
		case StateScores:
			content = m.viewScores()
		case StateHighlights:
			content = m.viewHighlights()
		case StatePrompts:
			content = m.viewPrompts()
		case StateStreak:
			content = m.viewStreak()
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Scores", "Highlights", "Prompts", "Streak"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewScores() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Week %s – %s", m.report.WeekStartDate, m.report.WeekEndDate)))
	b.WriteString("\n\n")

	for _, score := range m.report.Scores {
		if m.hidden[string(score.Theme)] {
			continue
		}
		name := constants.ThemeDefinitions[score.Theme].Name
		b.WriteString(fmt.Sprintf("%-12s %s %4.1f %s  %s\n",
			name, ScoreBar(score.Score), score.Score, TrendGlyph(score.Trend),
			dimStyle.Render(fmt.Sprintf("%.0f%%", score.Confidence*100))))
	}

	return b.String()
}

func (m Model) viewHighlights() string {
	if len(m.report.Highlights) == 0 {
		return dimStyle.Render("No highlights for this week yet.")
	}

	var b strings.Builder
	for _, h := range m.report.Highlights {
		b.WriteString(fmt.Sprintf("• %s\n", h.Message))
	}
	return b.String()
}

func (m Model) viewPrompts() string {
	if len(m.report.ReflectivePrompts) == 0 {
		return dimStyle.Render("No reflective prompts for this week yet.")
	}

	var b strings.Builder
	for _, p := range m.report.ReflectivePrompts {
		b.WriteString(titleStyle.Render(constants.ThemeDefinitions[p.Theme].Name))
		b.WriteString(fmt.Sprintf("\n  %s\n\n", p.Prompt))
	}
	return b.String()
}

func (m Model) viewStreak() string {
	if m.streak.LastCheckInDate == "" {
		return dimStyle.Render("No check-ins yet.")
	}

	return fmt.Sprintf("Current streak: %d days\nLongest streak: %d days\nLast check-in:  %s\n",
		m.streak.CurrentStreak, m.streak.LongestStreak, m.streak.LastCheckInDate)
}
