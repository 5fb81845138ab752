package tui

import (
	"strings"

	"github.com/julianstephens/charlit/internal/models"
)

// ScoreBar renders a 10-cell bar for a 0-10 score. Shared by the dashboard
// and the week command so the two renderings can't drift.
func ScoreBar(score float64) string {
	filled := int(score + 0.5)
	if filled > 10 {
		filled = 10
	}
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", 10-filled))
}

// TrendGlyph maps a trend to its arrow.
func TrendGlyph(trend models.Trend) string {
	switch trend {
	case models.TrendUp:
		return "↑"
	case models.TrendDown:
		return "↓"
	default:
		return "→"
	}
}
