package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/julianstephens/charlit/internal/constants"
	"github.com/julianstephens/charlit/internal/tui"
)

var (
	weekTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginTop(1)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type WeekCmd struct {
	Week string `arg:"" help:"Any date inside the week to report on (YYYY-MM-DD), or 'current'." default:"current"`
}

func (c *WeekCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	weekStart, err := resolveWeekStart(c.Week, ctx.Engine)
	if err != nil {
		return err
	}

	report, err := ctx.Engine.CalculateWeeklyReport(weekStart)
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	hidden := make(map[string]bool, len(settings.HiddenThemes))
	for _, t := range settings.HiddenThemes {
		hidden[t] = true
	}

	fmt.Println(weekTitleStyle.Render(fmt.Sprintf("Week %s – %s", report.WeekStartDate, report.WeekEndDate)))
	fmt.Println()

	for _, score := range report.Scores {
		if hidden[string(score.Theme)] {
			continue
		}
		name := constants.ThemeDefinitions[score.Theme].Name
		fmt.Printf("  %-12s %s %4.1f %s  %s\n",
			name, tui.ScoreBar(score.Score), score.Score, tui.TrendGlyph(score.Trend),
			dimStyle.Render(fmt.Sprintf("confidence %.0f%%", score.Confidence*100)))
	}

	if len(report.Highlights) > 0 {
		fmt.Println(sectionStyle.Render("Highlights"))
		for _, h := range report.Highlights {
			fmt.Printf("  • %s\n", h.Message)
		}
	}

	if len(report.ReflectivePrompts) > 0 {
		fmt.Println(sectionStyle.Render("Reflect"))
		for _, p := range report.ReflectivePrompts {
			fmt.Printf("  • [%s] %s\n", constants.ThemeDefinitions[p.Theme].Name, p.Prompt)
		}
	}

	return nil
}
