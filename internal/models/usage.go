package models

import "time"

// UsageEntry is one day's self-reported usage record. At most one entry
// exists per date; saving again for the same date replaces it.
type UsageEntry struct {
	Date string `json:"date"` // YYYY-MM-DD format

	// Minutes per app category
	SocialMediaMinutes   int `json:"social_media_minutes"`
	ShoppingMinutes      int `json:"shopping_minutes"`
	EntertainmentMinutes int `json:"entertainment_minutes"`
	DatingAppsMinutes    int `json:"dating_apps_minutes"`
	ProductivityMinutes  int `json:"productivity_minutes"`
	NewsMinutes          int `json:"news_minutes"`
	GamesMinutes         int `json:"games_minutes"`

	// Behavioral metrics
	PhonePickups          int `json:"phone_pickups"`
	LateNightUsageMinutes int `json:"late_night_usage_minutes"` // after 11pm

	// Health metrics
	Steps      int     `json:"steps"`
	SleepHours float64 `json:"sleep_hours"`
	WakeTime   string  `json:"wake_time"` // HH:MM format

	CreatedAt time.Time `json:"created_at"`
}
