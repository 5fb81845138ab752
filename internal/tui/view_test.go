package tui

import (
	"strings"
	"testing"

	"github.com/julianstephens/charlit/internal/constants"
	"github.com/julianstephens/charlit/internal/models"
	"github.com/julianstephens/charlit/internal/storage"
)

func sampleReport() models.WeeklyReport {
	scores := make([]models.ThemeScore, 0, len(models.AllThemes))
	for _, theme := range models.AllThemes {
		scores = append(scores, models.ThemeScore{
			Theme:      theme,
			Score:      5,
			Confidence: 1,
			Trend:      models.TrendStable,
		})
	}
	return models.WeeklyReport{
		WeekStartDate: "2026-08-17",
		WeekEndDate:   "2026-08-23",
		Scores:        scores,
	}
}

func TestViewScoresOmitsHiddenThemes(t *testing.T) {
	report := sampleReport()
	m := Model{
		report: &report,
		hidden: map[string]bool{string(models.ThemeSloth): true},
	}

	out := m.viewScores()

	if strings.Contains(out, constants.ThemeDefinitions[models.ThemeSloth].Name) {
		t.Error("expected hidden theme to be omitted from the scores view")
	}
	if !strings.Contains(out, constants.ThemeDefinitions[models.ThemeEnvy].Name) {
		t.Error("expected visible themes to remain in the scores view")
	}
}

func TestReportMsgCarriesHiddenThemes(t *testing.T) {
	var m Model
	msg := reportMsg{
		report:   sampleReport(),
		settings: storage.Settings{HiddenThemes: []string{"sloth", "envy"}},
	}

	updated, _ := m.Update(msg)
	got := updated.(Model)

	if !got.hidden["sloth"] || !got.hidden["envy"] {
		t.Errorf("expected hidden set from settings, got %v", got.hidden)
	}
	if got.hidden["pride"] {
		t.Error("did not expect pride in the hidden set")
	}
}

func TestScoreBarFill(t *testing.T) {
	cases := []struct {
		score      float64
		wantFilled int
	}{
		{0, 0},
		{4.4, 4},
		{4.5, 5},
		{10, 10},
		{12, 10}, // clamped
	}

	for _, c := range cases {
		bar := ScoreBar(c.score)
		filled := strings.Count(bar, "█")
		empty := strings.Count(bar, "░")
		if filled != c.wantFilled || filled+empty != 10 {
			t.Errorf("ScoreBar(%v): %d filled of %d cells, want %d of 10",
				c.score, filled, filled+empty, c.wantFilled)
		}
	}
}

func TestTrendGlyph(t *testing.T) {
	cases := []struct {
		trend models.Trend
		want  string
	}{
		{models.TrendUp, "↑"},
		{models.TrendDown, "↓"},
		{models.TrendStable, "→"},
		{models.Trend("unknown"), "→"},
	}

	for _, c := range cases {
		if got := TrendGlyph(c.trend); got != c.want {
			t.Errorf("TrendGlyph(%s) = %s, want %s", c.trend, got, c.want)
		}
	}
}
