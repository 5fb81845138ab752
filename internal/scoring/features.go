package scoring

import (
	"strconv"
	"strings"

	"github.com/julianstephens/charlit/internal/constants"
	"github.com/julianstephens/charlit/internal/models"
)

// ExtractedFeatures is the derived per-date record the theme scorers consume.
// It is ephemeral: recomputed from raw records on every scoring pass, never
// persisted.
type ExtractedFeatures struct {
	Date string

	// Category time (minutes)
	SocialMediaMinutes   float64
	ShoppingMinutes      float64
	EntertainmentMinutes float64
	DatingAppsMinutes    float64
	ProductivityMinutes  float64
	NewsMinutes          float64
	GamesMinutes         float64

	// Derived aggregates
	TotalScreenTimeMinutes    float64
	PassiveConsumptionMinutes float64 // entertainment + social + news
	PhonePickups              float64
	LateNightUsageMinutes     float64

	// Health metrics
	Steps        float64
	SleepHours   float64
	WakeTimeHour float64 // 0-23

	// Self-report, carried from the check-in when present
	HasMood      bool
	MoodScore    float64
	PrimaryTheme models.Theme
	HasCheckIn   bool

	// Derived patterns
	IsLowActivity    bool // steps below LowActivitySteps
	IsHighScreenTime bool // total above HighScreenTimeMinutes
	IsLateWake       bool // wake hour at or past LateWakeHour
	IsHighLateNight  bool // late-night minutes above HighLateNightMinutes

	// HasData reports whether any raw record existed for the date. Scorers
	// use it for the binary daily confidence.
	HasData bool
}

// ExtractFeatures derives the feature record for one date. Either input may
// be nil; absent inputs yield zeroed features and it never fails.
func ExtractFeatures(usage *models.UsageEntry, checkIn *models.CheckIn) ExtractedFeatures {
	f := ExtractedFeatures{}

	if usage != nil {
		f.Date = usage.Date
		f.SocialMediaMinutes = float64(usage.SocialMediaMinutes)
		f.ShoppingMinutes = float64(usage.ShoppingMinutes)
		f.EntertainmentMinutes = float64(usage.EntertainmentMinutes)
		f.DatingAppsMinutes = float64(usage.DatingAppsMinutes)
		f.ProductivityMinutes = float64(usage.ProductivityMinutes)
		f.NewsMinutes = float64(usage.NewsMinutes)
		f.GamesMinutes = float64(usage.GamesMinutes)
		f.PhonePickups = float64(usage.PhonePickups)
		f.LateNightUsageMinutes = float64(usage.LateNightUsageMinutes)
		f.Steps = float64(usage.Steps)
		f.SleepHours = usage.SleepHours
		f.WakeTimeHour = parseWakeHour(usage.WakeTime)

		f.TotalScreenTimeMinutes = f.SocialMediaMinutes + f.ShoppingMinutes +
			f.EntertainmentMinutes + f.DatingAppsMinutes + f.ProductivityMinutes +
			f.NewsMinutes + f.GamesMinutes
		f.PassiveConsumptionMinutes = f.EntertainmentMinutes + f.SocialMediaMinutes + f.NewsMinutes

		f.IsLowActivity = usage.Steps < constants.LowActivitySteps
		f.IsHighScreenTime = f.TotalScreenTimeMinutes > constants.HighScreenTimeMinutes
		f.IsLateWake = f.WakeTimeHour >= constants.LateWakeHour
		f.IsHighLateNight = usage.LateNightUsageMinutes > constants.HighLateNightMinutes

		f.HasData = true
	}

	if checkIn != nil {
		if f.Date == "" {
			f.Date = checkIn.Date
		}
		f.HasMood = true
		f.MoodScore = float64(checkIn.MoodScore)
		f.PrimaryTheme = checkIn.PrimaryTheme
		f.HasCheckIn = true
		f.HasData = true
	}

	return f
}

// parseWakeHour extracts the hour from an HH:MM string. Malformed or empty
// values yield 0 rather than an error; the extractor is total.
func parseWakeHour(wakeTime string) float64 {
	parts := strings.SplitN(wakeTime, ":", 2)
	if len(parts) == 0 || parts[0] == "" {
		return 0
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0
	}
	return float64(hour)
}
