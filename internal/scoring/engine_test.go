package scoring

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/charlit/internal/constants"
	"github.com/julianstephens/charlit/internal/models"
	"github.com/julianstephens/charlit/internal/storage"
)

// newTestEngine builds an engine over a fresh JSON store with the clock
// pinned to Thursday 2026-08-20, inside the week starting Monday 2026-08-17.
func newTestEngine(t *testing.T) (*Engine, storage.Provider) {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "charlit.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	engine := NewEngine(store)
	engine.now = func() time.Time {
		return time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	}
	return engine, store
}

func slothUsageEntry(date string) models.UsageEntry {
	return models.UsageEntry{
		Date:                  date,
		EntertainmentMinutes:  280,
		ProductivityMinutes:   30,
		LateNightUsageMinutes: 90,
		Steps:                 1500,
		SleepHours:            10,
		WakeTime:              "10:15",
		CreatedAt:             time.Now(),
	}
}

func weekDates(start string, t *testing.T) []string {
	t.Helper()
	base, err := time.Parse(dateLayout, start)
	if err != nil {
		t.Fatalf("bad start date %s: %v", start, err)
	}
	dates := make([]string, 0, constants.DaysPerWeek)
	for i := 0; i < constants.DaysPerWeek; i++ {
		dates = append(dates, base.AddDate(0, 0, i).Format(dateLayout))
	}
	return dates
}

func TestCalculateDailyScoresEmptyDate(t *testing.T) {
	engine, _ := newTestEngine(t)

	scores, err := engine.CalculateDailyScores("2026-08-17")
	if err != nil {
		t.Fatalf("unexpected error for empty date: %v", err)
	}
	if len(scores) != len(models.AllThemes) {
		t.Fatalf("expected %d scores, got %d", len(models.AllThemes), len(scores))
	}
	for _, score := range scores {
		if score.Confidence != 0 {
			t.Errorf("theme %s: expected confidence 0 for empty date, got %v", score.Theme, score.Confidence)
		}
	}
}

func TestWeeklyReportEmptyStore(t *testing.T) {
	engine, _ := newTestEngine(t)

	report, err := engine.CalculateWeeklyReport("2026-08-17")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.WeekStartDate != "2026-08-17" || report.WeekEndDate != "2026-08-23" {
		t.Errorf("unexpected window %s..%s", report.WeekStartDate, report.WeekEndDate)
	}
	if len(report.Scores) != len(models.AllThemes) {
		t.Fatalf("expected %d scores, got %d", len(models.AllThemes), len(report.Scores))
	}
	for _, score := range report.Scores {
		if score.Score != 0 || score.Confidence != 0 || score.Trend != models.TrendStable {
			t.Errorf("theme %s: expected zeroed stable score, got %+v", score.Theme, score)
		}
	}
	if len(report.Highlights) != 0 {
		t.Errorf("expected no highlights for an empty week, got %d", len(report.Highlights))
	}
	if len(report.ReflectivePrompts) != 0 {
		t.Errorf("expected no prompts for an empty week, got %d", len(report.ReflectivePrompts))
	}
}

func TestWeeklyReportFullSlothWeek(t *testing.T) {
	engine, store := newTestEngine(t)

	for _, date := range weekDates("2026-08-17", t) {
		if err := store.SaveUsageEntry(slothUsageEntry(date)); err != nil {
			t.Fatalf("failed to save usage entry: %v", err)
		}
	}

	report, err := engine.CalculateWeeklyReport("2026-08-17")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sloth models.ThemeScore
	for _, score := range report.Scores {
		if score.Confidence != 1 {
			t.Errorf("theme %s: expected full-week confidence 1, got %v", score.Theme, score.Confidence)
		}
		// The previous week is empty, so no trend can register.
		if score.Trend != models.TrendStable {
			t.Errorf("theme %s: expected stable trend with an empty previous week, got %s", score.Theme, score.Trend)
		}
		if score.Theme == models.ThemeSloth {
			sloth = score
		}
	}

	for _, score := range report.Scores {
		if score.Theme != models.ThemeSloth && score.Score >= sloth.Score {
			t.Errorf("expected sloth (%v) to outrank %s (%v)", sloth.Score, score.Theme, score.Score)
		}
	}

	if len(report.Highlights) == 0 {
		t.Fatal("expected highlights for a week of heavy usage")
	}
	if report.Highlights[0].Kind != models.HighlightHighest || report.Highlights[0].Theme != models.ThemeSloth {
		t.Errorf("expected sloth as the highest-theme highlight, got %+v", report.Highlights[0])
	}

	if len(report.ReflectivePrompts) == 0 {
		t.Fatal("expected reflective prompts for a week of heavy usage")
	}
	if len(report.ReflectivePrompts) > constants.MaxPrompts {
		t.Errorf("expected at most %d prompts, got %d", constants.MaxPrompts, len(report.ReflectivePrompts))
	}
	if report.ReflectivePrompts[0].Theme != models.ThemeSloth {
		t.Errorf("expected the first prompt to target sloth, got %s", report.ReflectivePrompts[0].Theme)
	}
	for _, prompt := range report.ReflectivePrompts {
		pool := constants.ThemeDefinitions[prompt.Theme].ReflectivePrompts
		found := false
		for _, candidate := range pool {
			if candidate == prompt.Prompt {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("prompt for %s is not from its theme's pool: %q", prompt.Theme, prompt.Prompt)
		}
	}
}

func TestWeeklyReportPartialWeekConfidence(t *testing.T) {
	engine, store := newTestEngine(t)

	// Monday, Wednesday, Friday only.
	for _, date := range []string{"2026-08-17", "2026-08-19", "2026-08-21"} {
		if err := store.SaveUsageEntry(slothUsageEntry(date)); err != nil {
			t.Fatalf("failed to save usage entry: %v", err)
		}
	}

	report, err := engine.CalculateWeeklyReport("2026-08-17")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 3.0 / 7.0
	for _, score := range report.Scores {
		if score.Confidence != want {
			t.Errorf("theme %s: expected confidence %v for 3 of 7 days, got %v", score.Theme, want, score.Confidence)
		}
	}

	// The average only divides by contributing days, so three identical days
	// score the same as seven.
	var sloth models.ThemeScore
	for _, score := range report.Scores {
		if score.Theme == models.ThemeSloth {
			sloth = score
		}
	}
	daily := CalculateThemeScore(models.ThemeSloth, slothDayFeatures())
	if sloth.Score != daily.Score {
		t.Errorf("expected weekly average %v to match the identical daily score %v", sloth.Score, daily.Score)
	}
}

func TestWeeklyReportTrendsAgainstPreviousWeek(t *testing.T) {
	engine, store := newTestEngine(t)

	// Previous week: heavy late-night usage, no steps, no productive time.
	for _, date := range weekDates("2026-08-10", t) {
		entry := models.UsageEntry{
			Date:                  date,
			LateNightUsageMinutes: 120,
			CreatedAt:             time.Now(),
		}
		if err := store.SaveUsageEntry(entry); err != nil {
			t.Fatalf("failed to save usage entry: %v", err)
		}
	}

	// Current week: late nights gone, but a shopping spike.
	for _, date := range weekDates("2026-08-17", t) {
		entry := models.UsageEntry{
			Date:                date,
			ShoppingMinutes:     90,
			ProductivityMinutes: 120,
			Steps:               10000,
			SleepHours:          7,
			CreatedAt:           time.Now(),
		}
		if err := store.SaveUsageEntry(entry); err != nil {
			t.Fatalf("failed to save usage entry: %v", err)
		}
	}

	report, err := engine.CalculateWeeklyReport("2026-08-17")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	trends := make(map[models.Theme]models.Trend, len(report.Scores))
	for _, score := range report.Scores {
		trends[score.Theme] = score.Trend
	}

	if trends[models.ThemeGreed] != models.TrendUp {
		t.Errorf("expected greed trending up after a shopping spike, got %s", trends[models.ThemeGreed])
	}
	if trends[models.ThemeGuilt] != models.TrendDown {
		t.Errorf("expected guilt trending down after late nights stopped, got %s", trends[models.ThemeGuilt])
	}
	if trends[models.ThemeSloth] != models.TrendDown {
		t.Errorf("expected sloth trending down, got %s", trends[models.ThemeSloth])
	}
	if trends[models.ThemePride] != models.TrendStable {
		t.Errorf("expected pride stable at zero both weeks, got %s", trends[models.ThemePride])
	}

	kinds := make(map[models.HighlightKind]models.ThemeHighlight, len(report.Highlights))
	for _, h := range report.Highlights {
		kinds[h.Kind] = h
	}
	if h, ok := kinds[models.HighlightNeedsAttention]; !ok || h.Theme != models.ThemeGreed {
		t.Errorf("expected greed flagged as needing attention, got %+v", kinds[models.HighlightNeedsAttention])
	}
	if h, ok := kinds[models.HighlightMostImproved]; !ok {
		t.Error("expected a most-improved highlight")
	} else if trends[h.Theme] != models.TrendDown {
		t.Errorf("most-improved theme %s is not trending down", h.Theme)
	}
	if len(report.Highlights) > constants.MaxHighlights {
		t.Errorf("expected at most %d highlights, got %d", constants.MaxHighlights, len(report.Highlights))
	}
}

func TestWeeklyReportRejectsBadDate(t *testing.T) {
	engine, _ := newTestEngine(t)

	if _, err := engine.CalculateWeeklyReport("17-08-2026"); err == nil {
		t.Error("expected an error for a malformed week start date")
	}
}

func TestStreakFromStore(t *testing.T) {
	engine, store := newTestEngine(t)

	// Clock is pinned to 2026-08-20.
	for _, date := range []string{"2026-08-18", "2026-08-19", "2026-08-20"} {
		checkIn := models.CheckIn{
			ID:           "checkin-" + date,
			Date:         date,
			MoodScore:    6,
			PrimaryTheme: models.ThemeSloth,
			CreatedAt:    time.Now(),
		}
		if err := store.SaveCheckIn(checkIn); err != nil {
			t.Fatalf("failed to save check-in: %v", err)
		}
	}

	streak, err := engine.Streak()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streak.CurrentStreak != 3 || streak.LongestStreak != 3 {
		t.Errorf("expected streak 3/3, got %d/%d", streak.CurrentStreak, streak.LongestStreak)
	}
	if streak.LastCheckInDate != "2026-08-20" {
		t.Errorf("expected last check-in 2026-08-20, got %s", streak.LastCheckInDate)
	}
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC), "2026-08-17"},  // Monday
		{time.Date(2026, 8, 20, 23, 0, 0, 0, time.UTC), "2026-08-17"}, // Thursday
		{time.Date(2026, 8, 23, 1, 0, 0, 0, time.UTC), "2026-08-17"},  // Sunday
		{time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), "2026-08-24"},  // next Monday
	}

	for _, c := range cases {
		if got := WeekStart(c.in); got != c.want {
			t.Errorf("WeekStart(%s) = %s, want %s", c.in.Format(dateLayout), got, c.want)
		}
	}
}

func TestApplyTrendsConfidenceGate(t *testing.T) {
	current := []models.ThemeScore{{Theme: models.ThemeSloth, Score: 8}}

	// A previous week at the gate exactly must not register a trend.
	previous := []models.ThemeScore{{Theme: models.ThemeSloth, Score: 2, Confidence: constants.TrendMinConfidence}}
	applyTrends(current, previous)
	if current[0].Trend != models.TrendStable {
		t.Errorf("expected stable trend at the confidence gate, got %s", current[0].Trend)
	}

	previous[0].Confidence = 1
	applyTrends(current, previous)
	if current[0].Trend != models.TrendUp {
		t.Errorf("expected up trend with a confident previous week, got %s", current[0].Trend)
	}
}

func TestApplyTrendsDeltaThreshold(t *testing.T) {
	previous := []models.ThemeScore{{Theme: models.ThemeSloth, Score: 5, Confidence: 1}}

	cases := []struct {
		score float64
		want  models.Trend
	}{
		{5.9, models.TrendStable},
		{6.0, models.TrendUp},
		{4.1, models.TrendStable},
		{4.0, models.TrendDown},
	}

	for _, c := range cases {
		current := []models.ThemeScore{{Theme: models.ThemeSloth, Score: c.score}}
		applyTrends(current, previous)
		if current[0].Trend != c.want {
			t.Errorf("score %v vs previous 5: trend = %s, want %s", c.score, current[0].Trend, c.want)
		}
	}
}

func TestGenerateHighlightsThresholds(t *testing.T) {
	// A top score at exactly 3 is too faint to headline.
	faint := []models.ThemeScore{{Theme: models.ThemeSloth, Score: 3, Trend: models.TrendStable}}
	if got := generateHighlights(faint); len(got) != 0 {
		t.Errorf("expected no highlights at score 3, got %d", len(got))
	}

	// An upward trend at exactly 5 is not yet worth flagging.
	borderline := []models.ThemeScore{{Theme: models.ThemeGreed, Score: 5, Trend: models.TrendUp}}
	highlights := generateHighlights(borderline)
	for _, h := range highlights {
		if h.Kind == models.HighlightNeedsAttention {
			t.Errorf("did not expect a needs-attention highlight at score 5")
		}
	}
}

func TestGeneratePromptsSkipsQuietWeeks(t *testing.T) {
	quiet := make([]models.ThemeScore, 0, len(models.AllThemes))
	for _, theme := range models.AllThemes {
		quiet = append(quiet, models.ThemeScore{Theme: theme, Score: 2})
	}
	if got := generatePrompts(quiet); len(got) != 0 {
		t.Errorf("expected no prompts when every score is at or below 2, got %d", len(got))
	}
}

func TestAggregateWeeklyScoresSkipsEmptyDays(t *testing.T) {
	day := func(score float64, confidence float64) []models.ThemeScore {
		scores := make([]models.ThemeScore, 0, len(models.AllThemes))
		for _, theme := range models.AllThemes {
			scores = append(scores, models.ThemeScore{
				Theme:      theme,
				Score:      score,
				Confidence: confidence,
			})
		}
		return scores
	}

	week := [][]models.ThemeScore{
		day(2, 1),
		day(0, 0), // no data, must not drag the average down
		day(4, 1),
		day(0, 0),
		day(6, 1),
		day(0, 0),
		day(0, 0),
	}

	for _, score := range aggregateWeeklyScores(week) {
		if score.Score != 4 {
			t.Errorf("theme %s: expected average 4 over contributing days, got %v", score.Theme, score.Score)
		}
		if score.Confidence != 3.0/7.0 {
			t.Errorf("theme %s: expected confidence 3/7, got %v", score.Theme, score.Confidence)
		}
	}
}

func TestMostFrequent(t *testing.T) {
	labels := []string{"a", "b", "a", "c", "b", "a", "d"}

	got := mostFrequent(labels, 3)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	if got := mostFrequent(nil, 3); got == nil || len(got) != 0 {
		t.Errorf("expected an empty slice for no labels, got %v", got)
	}
}
