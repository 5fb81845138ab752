package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	barFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	barEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)
