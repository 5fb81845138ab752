package storage

import "github.com/julianstephens/charlit/internal/models"

// Provider is the keyed record store the scoring engine reads from. Per-date
// lookups return (nil, nil) when no record exists for the date: absent data
// is never an error, only real storage failures are.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Usage entries (upsert by date, at most one per date)
	SaveUsageEntry(models.UsageEntry) error
	GetUsageForDate(date string) (*models.UsageEntry, error)
	GetUsageForDateRange(startDate, endDate string) ([]models.UsageEntry, error)

	// Check-ins (upsert by date, at most one per date)
	SaveCheckIn(models.CheckIn) error
	GetCheckInForDate(date string) (*models.CheckIn, error)
	GetCheckInsForDateRange(startDate, endDate string) ([]models.CheckIn, error)
	ListCheckIns() ([]models.CheckIn, error) // date-descending

	// Wipes all usage and check-in records.
	ClearAll() error

	// Utils
	GetConfigPath() string
}
