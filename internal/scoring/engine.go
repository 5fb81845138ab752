package scoring

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/julianstephens/charlit/internal/constants"
	"github.com/julianstephens/charlit/internal/models"
	"github.com/julianstephens/charlit/internal/storage"
)

const dateLayout = "2006-01-02"

// Engine computes theme scores and weekly reports from the raw records in
// the store. It holds no derived state: every report is recomputed from
// scratch so that stored entries remain the single source of truth.
type Engine struct {
	store storage.Provider
	now   func() time.Time
}

func NewEngine(store storage.Provider) *Engine {
	return &Engine{
		store: store,
		now:   time.Now,
	}
}

// CalculateDailyScores loads the date's records, extracts features, and runs
// every theme scorer. A date with no records is not an error; it yields
// zero-confidence scores. Store failures propagate in full.
func (e *Engine) CalculateDailyScores(date string) ([]models.ThemeScore, error) {
	usage, err := e.store.GetUsageForDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load usage for %s: %w", date, err)
	}

	checkIn, err := e.store.GetCheckInForDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-in for %s: %w", date, err)
	}

	features := ExtractFeatures(usage, checkIn)
	return CalculateAllScores(features), nil
}

// CalculateWeeklyReport computes the full report for the Monday-anchored week
// starting at weekStartDate. The previous week is recomputed through the same
// day-by-day pipeline so the trend baseline always follows the same rules as
// the current week. Report generation is all-or-nothing: any failed store
// read fails the whole report.
func (e *Engine) CalculateWeeklyReport(weekStartDate string) (models.WeeklyReport, error) {
	start, err := time.Parse(dateLayout, weekStartDate)
	if err != nil {
		return models.WeeklyReport{}, fmt.Errorf("invalid week start date %q: %w", weekStartDate, err)
	}

	dailyScores, err := e.scoreWeek(start)
	if err != nil {
		return models.WeeklyReport{}, err
	}
	scores := aggregateWeeklyScores(dailyScores)

	prevDailyScores, err := e.scoreWeek(start.AddDate(0, 0, -constants.DaysPerWeek))
	if err != nil {
		return models.WeeklyReport{}, err
	}
	applyTrends(scores, aggregateWeeklyScores(prevDailyScores))

	return models.WeeklyReport{
		WeekStartDate:     weekStartDate,
		WeekEndDate:       start.AddDate(0, 0, constants.DaysPerWeek-1).Format(dateLayout),
		Scores:            scores,
		Highlights:        generateHighlights(scores),
		ReflectivePrompts: generatePrompts(scores),
	}, nil
}

// Streak computes the check-in streak from the stored check-in history.
func (e *Engine) Streak() (models.CheckInStreak, error) {
	checkIns, err := e.store.ListCheckIns()
	if err != nil {
		return models.CheckInStreak{}, fmt.Errorf("failed to list check-ins: %w", err)
	}

	dates := make([]string, 0, len(checkIns))
	for _, c := range checkIns {
		dates = append(dates, c.Date)
	}
	return ComputeStreak(dates, e.now()), nil
}

// CurrentWeekStart returns the Monday of the current week in YYYY-MM-DD form.
func (e *Engine) CurrentWeekStart() string {
	return WeekStart(e.now())
}

// WeekStart returns the Monday on or before t.
func WeekStart(t time.Time) string {
	// time.Weekday has Sunday = 0; shift so Monday = 0.
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format(dateLayout)
}

func (e *Engine) scoreWeek(start time.Time) ([][]models.ThemeScore, error) {
	dailyScores := make([][]models.ThemeScore, 0, constants.DaysPerWeek)
	for i := 0; i < constants.DaysPerWeek; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		scores, err := e.CalculateDailyScores(date)
		if err != nil {
			return nil, err
		}
		dailyScores = append(dailyScores, scores)
	}
	return dailyScores, nil
}

// aggregateWeeklyScores averages the days where a theme had data. The average
// divides by the count of contributing days, not the window length; the
// window length only enters through confidence.
func aggregateWeeklyScores(dailyScores [][]models.ThemeScore) []models.ThemeScore {
	if len(dailyScores) == 0 {
		scores := make([]models.ThemeScore, 0, len(models.AllThemes))
		for _, theme := range models.AllThemes {
			scores = append(scores, models.ThemeScore{
				Theme:           theme,
				Trend:           models.TrendStable,
				TopContributors: []string{},
				SignalBreakdown: []models.SignalContribution{},
			})
		}
		return scores
	}

	type themeTally struct {
		sum          float64
		count        int
		contributors []string
	}
	tallies := make(map[models.Theme]*themeTally, len(models.AllThemes))
	for _, theme := range models.AllThemes {
		tallies[theme] = &themeTally{}
	}

	for _, day := range dailyScores {
		for _, score := range day {
			if score.Confidence <= 0 {
				continue
			}
			t := tallies[score.Theme]
			t.sum += score.Score
			t.count++
			t.contributors = append(t.contributors, score.TopContributors...)
		}
	}

	scores := make([]models.ThemeScore, 0, len(models.AllThemes))
	for _, theme := range models.AllThemes {
		t := tallies[theme]
		avg := 0.0
		if t.count > 0 {
			avg = t.sum / float64(t.count)
		}
		scores = append(scores, models.ThemeScore{
			Theme:           theme,
			Score:           roundScore(avg),
			Confidence:      float64(t.count) / float64(len(dailyScores)),
			Trend:           models.TrendStable,
			TopContributors: mostFrequent(t.contributors, 3),
			SignalBreakdown: []models.SignalContribution{},
		})
	}
	return scores
}

// applyTrends sets each current score's trend against the previous week's
// aggregate. A trend only registers when the previous week had enough data
// to compare against; otherwise it stays stable.
func applyTrends(current, previous []models.ThemeScore) {
	prevByTheme := make(map[models.Theme]models.ThemeScore, len(previous))
	for _, p := range previous {
		prevByTheme[p.Theme] = p
	}

	for i := range current {
		prev, ok := prevByTheme[current[i].Theme]
		if !ok || prev.Confidence <= constants.TrendMinConfidence {
			current[i].Trend = models.TrendStable
			continue
		}

		diff := current[i].Score - prev.Score
		switch {
		case diff >= constants.TrendDelta:
			current[i].Trend = models.TrendUp
		case diff <= -constants.TrendDelta:
			current[i].Trend = models.TrendDown
		default:
			current[i].Trend = models.TrendStable
		}
	}
}

func generateHighlights(scores []models.ThemeScore) []models.ThemeHighlight {
	highlights := make([]models.ThemeHighlight, 0, constants.MaxHighlights)

	sorted := make([]models.ThemeScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	if len(sorted) > 0 && sorted[0].Score > 3 {
		highlights = append(highlights, models.ThemeHighlight{
			Theme: sorted[0].Theme,
			Kind:  models.HighlightHighest,
			Message: fmt.Sprintf("%s was your most prominent theme this week (%.1f/10)",
				themeName(sorted[0].Theme), sorted[0].Score),
		})
	}

	// Most improved: trending down with the lowest remaining score.
	var improved *models.ThemeScore
	for i := range scores {
		if scores[i].Trend != models.TrendDown {
			continue
		}
		if improved == nil || scores[i].Score < improved.Score {
			improved = &scores[i]
		}
	}
	if improved != nil {
		highlights = append(highlights, models.ThemeHighlight{
			Theme:   improved.Theme,
			Kind:    models.HighlightMostImproved,
			Message: fmt.Sprintf("%s showed improvement this week", themeName(improved.Theme)),
		})
	}

	// Needs attention: trending up with a high score.
	var attention *models.ThemeScore
	for i := range scores {
		if scores[i].Trend != models.TrendUp || scores[i].Score <= 5 {
			continue
		}
		if attention == nil || scores[i].Score > attention.Score {
			attention = &scores[i]
		}
	}
	if attention != nil {
		highlights = append(highlights, models.ThemeHighlight{
			Theme:   attention.Theme,
			Kind:    models.HighlightNeedsAttention,
			Message: fmt.Sprintf("%s is trending upward - consider reflection", themeName(attention.Theme)),
		})
	}

	if len(highlights) > constants.MaxHighlights {
		highlights = highlights[:constants.MaxHighlights]
	}
	return highlights
}

// generatePrompts picks one reflective prompt for each of the top themes.
// Prompt choice is intentionally unseeded: repeated reports over the same
// data may surface different prompts.
func generatePrompts(scores []models.ThemeScore) []models.GeneratedPrompt {
	sorted := make([]models.ThemeScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	prompts := make([]models.GeneratedPrompt, 0, constants.MaxPrompts)
	for _, score := range sorted {
		if len(prompts) == constants.MaxPrompts {
			break
		}
		if score.Score <= 2 {
			break
		}
		pool := constants.ThemeDefinitions[score.Theme].ReflectivePrompts
		if len(pool) == 0 {
			continue
		}
		prompts = append(prompts, models.GeneratedPrompt{
			Theme:  score.Theme,
			Prompt: pool[rand.Intn(len(pool))],
		})
	}
	return prompts
}

// mostFrequent tallies labels by how many days they appeared and returns the
// top n, most frequent first. Ties keep first-appearance order.
func mostFrequent(labels []string, n int) []string {
	counts := make(map[string]int, len(labels))
	order := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	if order == nil {
		order = []string{}
	}
	return order
}

func themeName(theme models.Theme) string {
	if info, ok := constants.ThemeDefinitions[theme]; ok {
		return info.Name
	}
	return string(theme)
}
