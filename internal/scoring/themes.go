package scoring

import "github.com/julianstephens/charlit/internal/models"

// Signal value helpers. Inverse signals (too little of something) are
// expressed as a deficit against a healthy baseline so that normalization
// stays a plain raw/max clamp.

func inactivityGap(f ExtractedFeatures) float64 {
	gap := activeStepsBaseline - f.Steps
	if gap < 0 {
		return 0
	}
	return gap
}

func sleepDeficitHours(f ExtractedFeatures) float64 {
	deficit := restfulSleepHours - f.SleepHours
	if deficit < 0 {
		return 0
	}
	return deficit
}

func oversleepHours(f ExtractedFeatures) float64 {
	excess := f.SleepHours - restfulSleepHours
	if excess < 0 {
		return 0
	}
	return excess
}

func productivityDeficit(f ExtractedFeatures) float64 {
	deficit := productiveMinutesBaseline - f.ProductivityMinutes
	if deficit < 0 {
		return 0
	}
	return deficit
}

func lowMood(f ExtractedFeatures) float64 {
	if !f.HasMood {
		return 0
	}
	gap := neutralMoodScore - f.MoodScore
	if gap < 0 {
		return 0
	}
	return gap
}

const (
	activeStepsBaseline       = 8000.0
	restfulSleepHours         = 7.0
	productiveMinutesBaseline = 120.0
	neutralMoodScore          = 6.0
)

// themeConfigs holds the per-theme signal tables: which features each theme
// reads, their reference maxima, and their weights. This is the domain
// configuration behind all twelve scorers; the mechanics in scorer.go are
// identical across themes.
var themeConfigs = map[models.Theme]themeConfig{
	models.ThemePride: {
		theme: models.ThemePride,
		signals: []signalSpec{
			{"social_media_minutes", "Social media time", 3, 180, func(f ExtractedFeatures) float64 { return f.SocialMediaMinutes }},
			{"phone_pickups", "Phone pickups", 2, 120, func(f ExtractedFeatures) float64 { return f.PhonePickups }},
		},
	},
	models.ThemeGreed: {
		theme: models.ThemeGreed,
		signals: []signalSpec{
			{"shopping_minutes", "Shopping time", 3, 90, func(f ExtractedFeatures) float64 { return f.ShoppingMinutes }},
			{"games_minutes", "Gaming time", 1, 120, func(f ExtractedFeatures) float64 { return f.GamesMinutes }},
			{"total_screen_time", "Total screen time", 1, 480, func(f ExtractedFeatures) float64 { return f.TotalScreenTimeMinutes }},
		},
	},
	models.ThemeLust: {
		theme: models.ThemeLust,
		signals: []signalSpec{
			{"dating_apps_minutes", "Dating app time", 3, 60, func(f ExtractedFeatures) float64 { return f.DatingAppsMinutes }},
			{"late_night_usage", "Late-night usage", 2, 120, func(f ExtractedFeatures) float64 { return f.LateNightUsageMinutes }},
			{"social_media_minutes", "Social media time", 1, 180, func(f ExtractedFeatures) float64 { return f.SocialMediaMinutes }},
		},
	},
	models.ThemeAnger: {
		theme: models.ThemeAnger,
		signals: []signalSpec{
			{"news_minutes", "News consumption", 2, 90, func(f ExtractedFeatures) float64 { return f.NewsMinutes }},
			{"phone_pickups", "Phone pickups", 2, 120, func(f ExtractedFeatures) float64 { return f.PhonePickups }},
			{"sleep_deficit", "Short sleep", 2, 3, sleepDeficitHours},
		},
	},
	models.ThemeGluttony: {
		theme: models.ThemeGluttony,
		signals: []signalSpec{
			{"entertainment_minutes", "Entertainment bingeing", 2, 360, func(f ExtractedFeatures) float64 { return f.EntertainmentMinutes }},
			{"games_minutes", "Gaming time", 2, 150, func(f ExtractedFeatures) float64 { return f.GamesMinutes }},
			{"total_screen_time", "Total screen time", 1.5, 480, func(f ExtractedFeatures) float64 { return f.TotalScreenTimeMinutes }},
		},
	},
	models.ThemeEnvy: {
		theme: models.ThemeEnvy,
		signals: []signalSpec{
			{"social_media_minutes", "Social media scrolling", 2.5, 200, func(f ExtractedFeatures) float64 { return f.SocialMediaMinutes }},
			{"shopping_minutes", "Comparison shopping", 1.5, 90, func(f ExtractedFeatures) float64 { return f.ShoppingMinutes }},
			{"phone_pickups", "Phone pickups", 1, 120, func(f ExtractedFeatures) float64 { return f.PhonePickups }},
		},
	},
	models.ThemeSloth: {
		theme: models.ThemeSloth,
		signals: []signalSpec{
			{"passive_consumption", "Passive consumption", 3, 300, func(f ExtractedFeatures) float64 { return f.PassiveConsumptionMinutes }},
			{"inactivity", "Low physical activity", 2, activeStepsBaseline, inactivityGap},
			{"late_night_usage", "Late-night usage", 2, 120, func(f ExtractedFeatures) float64 { return f.LateNightUsageMinutes }},
			{"oversleep", "Oversleeping", 2, 3, oversleepHours},
		},
	},
	models.ThemeFear: {
		theme: models.ThemeFear,
		signals: []signalSpec{
			{"news_minutes", "News monitoring", 3, 90, func(f ExtractedFeatures) float64 { return f.NewsMinutes }},
			{"phone_pickups", "Checking behavior", 2, 120, func(f ExtractedFeatures) float64 { return f.PhonePickups }},
			{"late_night_usage", "Late-night usage", 1, 120, func(f ExtractedFeatures) float64 { return f.LateNightUsageMinutes }},
		},
	},
	models.ThemeSelfPity: {
		theme: models.ThemeSelfPity,
		signals: []signalSpec{
			{"passive_consumption", "Passive consumption", 2, 300, func(f ExtractedFeatures) float64 { return f.PassiveConsumptionMinutes }},
			{"low_mood", "Low reported mood", 2, 5, lowMood},
			{"inactivity", "Low physical activity", 1, activeStepsBaseline, inactivityGap},
		},
	},
	models.ThemeGuilt: {
		theme: models.ThemeGuilt,
		signals: []signalSpec{
			{"late_night_usage", "Late-night usage", 2, 120, func(f ExtractedFeatures) float64 { return f.LateNightUsageMinutes }},
			{"productivity_deficit", "Postponed work", 1.5, productiveMinutesBaseline, productivityDeficit},
			{"passive_consumption", "Passive consumption", 1, 300, func(f ExtractedFeatures) float64 { return f.PassiveConsumptionMinutes }},
		},
	},
	models.ThemeShame: {
		theme: models.ThemeShame,
		signals: []signalSpec{
			{"late_night_usage", "Late-night usage", 2, 120, func(f ExtractedFeatures) float64 { return f.LateNightUsageMinutes }},
			{"social_media_minutes", "Social media time", 1.5, 180, func(f ExtractedFeatures) float64 { return f.SocialMediaMinutes }},
			{"low_mood", "Low reported mood", 1.5, 5, lowMood},
		},
	},
	models.ThemeDishonesty: {
		theme: models.ThemeDishonesty,
		signals: []signalSpec{
			{"late_night_usage", "Hidden late-night usage", 2, 120, func(f ExtractedFeatures) float64 { return f.LateNightUsageMinutes }},
			{"dating_apps_minutes", "Dating app time", 1.5, 60, func(f ExtractedFeatures) float64 { return f.DatingAppsMinutes }},
			{"games_minutes", "Gaming time", 1, 120, func(f ExtractedFeatures) float64 { return f.GamesMinutes }},
		},
	},
}

// CalculateThemeScore scores one theme for a single day's features.
func CalculateThemeScore(theme models.Theme, f ExtractedFeatures) models.ThemeScore {
	return themeConfigs[theme].calculate(f)
}

// CalculateAllScores runs every theme scorer against one day's features, in
// canonical theme order.
func CalculateAllScores(f ExtractedFeatures) []models.ThemeScore {
	scores := make([]models.ThemeScore, 0, len(models.AllThemes))
	for _, theme := range models.AllThemes {
		scores = append(scores, CalculateThemeScore(theme, f))
	}
	return scores
}
