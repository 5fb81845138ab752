package models

// Theme is one of the twelve character themes being scored.
type Theme string

const (
	ThemePride      Theme = "pride"
	ThemeGreed      Theme = "greed"
	ThemeLust       Theme = "lust"
	ThemeAnger      Theme = "anger"
	ThemeGluttony   Theme = "gluttony"
	ThemeEnvy       Theme = "envy"
	ThemeSloth      Theme = "sloth"
	ThemeFear       Theme = "fear"
	ThemeSelfPity   Theme = "self_pity"
	ThemeGuilt      Theme = "guilt"
	ThemeShame      Theme = "shame"
	ThemeDishonesty Theme = "dishonesty"
)

// AllThemes lists every theme in canonical scoring order.
var AllThemes = []Theme{
	ThemePride,
	ThemeGreed,
	ThemeLust,
	ThemeAnger,
	ThemeGluttony,
	ThemeEnvy,
	ThemeSloth,
	ThemeFear,
	ThemeSelfPity,
	ThemeGuilt,
	ThemeShame,
	ThemeDishonesty,
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// SignalContribution is one scorer's accounting of a single input signal.
type SignalContribution struct {
	Source          string  `json:"source"`
	Label           string  `json:"label"`
	Weight          float64 `json:"weight"`
	RawValue        float64 `json:"raw_value"`
	NormalizedValue float64 `json:"normalized_value"` // 0-1
}

// ThemeScore is a theme's score for a day or an aggregated window. Scores
// are recomputed from raw entries on every read; they are never the source
// of truth.
type ThemeScore struct {
	Theme           Theme                `json:"theme"`
	Score           float64              `json:"score"`      // 0-10
	Confidence      float64              `json:"confidence"` // 0-1
	Trend           Trend                `json:"trend"`
	TopContributors []string             `json:"top_contributors"`
	SignalBreakdown []SignalContribution `json:"signal_breakdown"`
}

type HighlightKind string

const (
	HighlightHighest        HighlightKind = "highest"
	HighlightMostImproved   HighlightKind = "most_improved"
	HighlightNeedsAttention HighlightKind = "needs_attention"
)

type ThemeHighlight struct {
	Theme   Theme         `json:"theme"`
	Kind    HighlightKind `json:"kind"`
	Message string        `json:"message"`
}

type GeneratedPrompt struct {
	Theme  Theme  `json:"theme"`
	Prompt string `json:"prompt"`
}

// WeeklyReport covers a Monday-to-Sunday window identified by its Monday date.
type WeeklyReport struct {
	WeekStartDate     string            `json:"week_start_date"` // YYYY-MM-DD, a Monday
	WeekEndDate       string            `json:"week_end_date"`
	Scores            []ThemeScore      `json:"scores"`
	Highlights        []ThemeHighlight  `json:"highlights"`
	ReflectivePrompts []GeneratedPrompt `json:"reflective_prompts"`
}
