// Package demo seeds the store with realistic sample data so reports have
// something to show before two weeks of real entries exist.
package demo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/julianstephens/charlit/internal/models"
	"github.com/julianstephens/charlit/internal/storage"
)

const dateLayout = "2006-01-02"

func randomInRange(min, max int) int {
	return min + rand.Intn(max-min+1)
}

func randomTheme() models.Theme {
	return models.AllThemes[rand.Intn(len(models.AllThemes))]
}

// Seed wipes the store and writes 14 days of randomized entries ending
// today, with weekend/weekday variation and roughly 80% check-in completion.
func Seed(store storage.Provider, now time.Time) error {
	if err := store.ClearAll(); err != nil {
		return fmt.Errorf("failed to clear existing data: %w", err)
	}

	for i := 13; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		date := day.Format(dateLayout)
		isWeekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday

		screenFactor := 1.0
		activityFactor := 1.0
		if isWeekend {
			screenFactor = 1.3
			activityFactor = 0.8
		}

		entry := models.UsageEntry{
			Date:                  date,
			SocialMediaMinutes:    scale(randomInRange(45, 120), screenFactor),
			ShoppingMinutes:       randomInRange(5, 40),
			EntertainmentMinutes:  scale(randomInRange(60, 180), screenFactor),
			DatingAppsMinutes:     randomInRange(0, 30),
			ProductivityMinutes:   scale(randomInRange(60, 180), activityFactor),
			NewsMinutes:           randomInRange(15, 60),
			GamesMinutes:          scale(randomInRange(15, 90), screenFactor),
			PhonePickups:          randomInRange(40, 90),
			LateNightUsageMinutes: randomInRange(10, 75),
			Steps:                 scale(randomInRange(3000, 10000), activityFactor),
			SleepHours:            float64(randomInRange(5, 9)),
			WakeTime:              fmt.Sprintf("%02d:%02d", randomInRange(6, 9), randomInRange(0, 59)),
			CreatedAt:             day,
		}
		if err := store.SaveUsageEntry(entry); err != nil {
			return fmt.Errorf("failed to seed usage for %s: %w", date, err)
		}

		// ~80% check-in completion rate
		if rand.Float64() > 0.2 {
			checkIn := models.CheckIn{
				ID:           uuid.New().String(),
				Date:         date,
				MoodScore:    randomInRange(4, 9),
				PrimaryTheme: randomTheme(),
				CreatedAt:    day,
			}
			if i%3 == 0 {
				checkIn.JournalEntry = fmt.Sprintf("Day %d reflection notes...", 14-i)
			}
			if err := store.SaveCheckIn(checkIn); err != nil {
				return fmt.Errorf("failed to seed check-in for %s: %w", date, err)
			}
		}
	}

	return nil
}

// SeedSlothWeek writes seven identical low-momentum days ending today. Useful
// for demoing what a dominant theme looks like in the weekly report.
func SeedSlothWeek(store storage.Provider, now time.Time) error {
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		entry := models.UsageEntry{
			Date:                  day.Format(dateLayout),
			EntertainmentMinutes:  280,
			ProductivityMinutes:   30,
			LateNightUsageMinutes: 90,
			Steps:                 1500,
			SleepHours:            10,
			WakeTime:              "10:15",
			CreatedAt:             day,
		}
		if err := store.SaveUsageEntry(entry); err != nil {
			return fmt.Errorf("failed to seed usage for %s: %w", entry.Date, err)
		}
	}
	return nil
}

func scale(v int, factor float64) int {
	return int(float64(v)*factor + 0.5)
}
