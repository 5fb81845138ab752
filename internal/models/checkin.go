package models

import "time"

// CheckIn is one day's self-reflection record. At most one check-in exists
// per date; saving again for the same date replaces it.
type CheckIn struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`       // YYYY-MM-DD format
	MoodScore    int       `json:"mood_score"` // 1-10
	PrimaryTheme Theme     `json:"primary_theme"`
	JournalEntry string    `json:"journal_entry,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CheckInStreak summarizes consecutive-day check-in runs.
type CheckInStreak struct {
	CurrentStreak   int    `json:"current_streak"`
	LongestStreak   int    `json:"longest_streak"`
	LastCheckInDate string `json:"last_check_in_date,omitempty"`
}
