package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/charlit/internal/models"
	_ "modernc.org/sqlite"
)

// schemaVersion is written to PRAGMA user_version when the schema is created.
const schemaVersion = 1

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.ensureSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'charlit init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than this build supports (%d)", version, schemaVersion)
	}
	if version < schemaVersion {
		if err := s.ensureSchema(); err != nil {
			return fmt.Errorf("failed to upgrade schema: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS usage_entries (
			date TEXT PRIMARY KEY,
			social_media_minutes INTEGER NOT NULL DEFAULT 0,
			shopping_minutes INTEGER NOT NULL DEFAULT 0,
			entertainment_minutes INTEGER NOT NULL DEFAULT 0,
			dating_apps_minutes INTEGER NOT NULL DEFAULT 0,
			productivity_minutes INTEGER NOT NULL DEFAULT 0,
			news_minutes INTEGER NOT NULL DEFAULT 0,
			games_minutes INTEGER NOT NULL DEFAULT 0,
			phone_pickups INTEGER NOT NULL DEFAULT 0,
			late_night_usage_minutes INTEGER NOT NULL DEFAULT 0,
			steps INTEGER NOT NULL DEFAULT 0,
			sleep_hours REAL NOT NULL DEFAULT 0,
			wake_time TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS check_ins (
			date TEXT PRIMARY KEY,
			id TEXT NOT NULL,
			mood_score INTEGER NOT NULL,
			primary_theme TEXT NOT NULL,
			journal_entry TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	return err
}

func (s *SQLiteStore) SaveUsageEntry(entry models.UsageEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO usage_entries (
			date, social_media_minutes, shopping_minutes, entertainment_minutes,
			dating_apps_minutes, productivity_minutes, news_minutes, games_minutes,
			phone_pickups, late_night_usage_minutes, steps, sleep_hours, wake_time, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			social_media_minutes = excluded.social_media_minutes,
			shopping_minutes = excluded.shopping_minutes,
			entertainment_minutes = excluded.entertainment_minutes,
			dating_apps_minutes = excluded.dating_apps_minutes,
			productivity_minutes = excluded.productivity_minutes,
			news_minutes = excluded.news_minutes,
			games_minutes = excluded.games_minutes,
			phone_pickups = excluded.phone_pickups,
			late_night_usage_minutes = excluded.late_night_usage_minutes,
			steps = excluded.steps,
			sleep_hours = excluded.sleep_hours,
			wake_time = excluded.wake_time,
			created_at = excluded.created_at`,
		entry.Date, entry.SocialMediaMinutes, entry.ShoppingMinutes, entry.EntertainmentMinutes,
		entry.DatingAppsMinutes, entry.ProductivityMinutes, entry.NewsMinutes, entry.GamesMinutes,
		entry.PhonePickups, entry.LateNightUsageMinutes, entry.Steps, entry.SleepHours,
		entry.WakeTime, entry.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save usage entry for %s: %w", entry.Date, err)
	}
	return nil
}

const usageColumns = `date, social_media_minutes, shopping_minutes, entertainment_minutes,
	dating_apps_minutes, productivity_minutes, news_minutes, games_minutes,
	phone_pickups, late_night_usage_minutes, steps, sleep_hours, wake_time, created_at`

func scanUsageEntry(row interface{ Scan(...any) error }) (models.UsageEntry, error) {
	var e models.UsageEntry
	var createdAt string
	err := row.Scan(
		&e.Date, &e.SocialMediaMinutes, &e.ShoppingMinutes, &e.EntertainmentMinutes,
		&e.DatingAppsMinutes, &e.ProductivityMinutes, &e.NewsMinutes, &e.GamesMinutes,
		&e.PhonePickups, &e.LateNightUsageMinutes, &e.Steps, &e.SleepHours,
		&e.WakeTime, &createdAt,
	)
	if err != nil {
		return models.UsageEntry{}, err
	}
	if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
		e.CreatedAt = t
	}
	return e, nil
}

func (s *SQLiteStore) GetUsageForDate(date string) (*models.UsageEntry, error) {
	row := s.db.QueryRow("SELECT "+usageColumns+" FROM usage_entries WHERE date = ?", date)
	entry, err := scanUsageEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read usage entry for %s: %w", date, err)
	}
	return &entry, nil
}

func (s *SQLiteStore) GetUsageForDateRange(startDate, endDate string) ([]models.UsageEntry, error) {
	rows, err := s.db.Query(
		"SELECT "+usageColumns+" FROM usage_entries WHERE date >= ? AND date <= ? ORDER BY date",
		startDate, endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read usage entries %s..%s: %w", startDate, endDate, err)
	}
	defer rows.Close()

	var entries []models.UsageEntry
	for rows.Next() {
		entry, err := scanUsageEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) SaveCheckIn(checkIn models.CheckIn) error {
	_, err := s.db.Exec(`
		INSERT INTO check_ins (date, id, mood_score, primary_theme, journal_entry, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			id = excluded.id,
			mood_score = excluded.mood_score,
			primary_theme = excluded.primary_theme,
			journal_entry = excluded.journal_entry,
			created_at = excluded.created_at`,
		checkIn.Date, checkIn.ID, checkIn.MoodScore, string(checkIn.PrimaryTheme),
		checkIn.JournalEntry, checkIn.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save check-in for %s: %w", checkIn.Date, err)
	}
	return nil
}

func scanCheckIn(row interface{ Scan(...any) error }) (models.CheckIn, error) {
	var c models.CheckIn
	var theme, createdAt string
	err := row.Scan(&c.Date, &c.ID, &c.MoodScore, &theme, &c.JournalEntry, &createdAt)
	if err != nil {
		return models.CheckIn{}, err
	}
	c.PrimaryTheme = models.Theme(theme)
	if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
		c.CreatedAt = t
	}
	return c, nil
}

func (s *SQLiteStore) GetCheckInForDate(date string) (*models.CheckIn, error) {
	row := s.db.QueryRow(
		"SELECT date, id, mood_score, primary_theme, journal_entry, created_at FROM check_ins WHERE date = ?",
		date,
	)
	checkIn, err := scanCheckIn(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read check-in for %s: %w", date, err)
	}
	return &checkIn, nil
}

func (s *SQLiteStore) GetCheckInsForDateRange(startDate, endDate string) ([]models.CheckIn, error) {
	return s.queryCheckIns(
		"SELECT date, id, mood_score, primary_theme, journal_entry, created_at FROM check_ins WHERE date >= ? AND date <= ? ORDER BY date",
		startDate, endDate,
	)
}

func (s *SQLiteStore) ListCheckIns() ([]models.CheckIn, error) {
	return s.queryCheckIns(
		"SELECT date, id, mood_score, primary_theme, journal_entry, created_at FROM check_ins ORDER BY date DESC",
	)
}

func (s *SQLiteStore) queryCheckIns(query string, args ...any) ([]models.CheckIn, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to read check-ins: %w", err)
	}
	defer rows.Close()

	var checkIns []models.CheckIn
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, err
		}
		checkIns = append(checkIns, c)
	}
	return checkIns, rows.Err()
}

func (s *SQLiteStore) ClearAll() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM usage_entries"); err != nil {
		return fmt.Errorf("failed to clear usage entries: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM check_ins"); err != nil {
		return fmt.Errorf("failed to clear check-ins: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	row := s.db.QueryRow("SELECT value FROM settings WHERE key = 'app_settings'")

	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, err
	}

	var settings Settings
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO settings (key, value) VALUES ('app_settings', ?)",
		string(data),
	)
	return err
}

// GetConfigPath returns the path to the underlying database file.
//
// Concurrency note:
//   - SQLiteStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple charlit processes against the same database path at the
//     same time is not supported and may lead to data loss or corruption.
func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
