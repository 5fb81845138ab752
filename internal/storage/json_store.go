package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/charlit/internal/models"
)

// Store is the on-disk document shape for the JSON backend. Records are
// keyed by date, which gives upsert semantics for free.
type Store struct {
	Version  int                          `json:"version"`
	Settings Settings                     `json:"settings"`
	Usage    map[string]models.UsageEntry `json:"usage"`
	CheckIns map[string]models.CheckIn    `json:"check_ins"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Usage:    make(map[string]models.UsageEntry),
		CheckIns: make(map[string]models.CheckIn),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	if s.store != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'charlit init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Usage == nil {
		s.store.Usage = make(map[string]models.UsageEntry)
	}
	if s.store.CheckIns == nil {
		s.store.CheckIns = make(map[string]models.CheckIn)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) SaveUsageEntry(entry models.UsageEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Usage[entry.Date] = entry
	return s.save()
}

func (s *JSONStore) GetUsageForDate(date string) (*models.UsageEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	entry, ok := s.store.Usage[date]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (s *JSONStore) GetUsageForDateRange(startDate, endDate string) ([]models.UsageEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var entries []models.UsageEntry
	for date, entry := range s.store.Usage {
		if date >= startDate && date <= endDate {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries, nil
}

func (s *JSONStore) SaveCheckIn(checkIn models.CheckIn) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.CheckIns[checkIn.Date] = checkIn
	return s.save()
}

func (s *JSONStore) GetCheckInForDate(date string) (*models.CheckIn, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	checkIn, ok := s.store.CheckIns[date]
	if !ok {
		return nil, nil
	}
	return &checkIn, nil
}

func (s *JSONStore) GetCheckInsForDateRange(startDate, endDate string) ([]models.CheckIn, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var checkIns []models.CheckIn
	for date, checkIn := range s.store.CheckIns {
		if date >= startDate && date <= endDate {
			checkIns = append(checkIns, checkIn)
		}
	}
	sort.Slice(checkIns, func(i, j int) bool { return checkIns[i].Date < checkIns[j].Date })
	return checkIns, nil
}

func (s *JSONStore) ListCheckIns() ([]models.CheckIn, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	checkIns := make([]models.CheckIn, 0, len(s.store.CheckIns))
	for _, checkIn := range s.store.CheckIns {
		checkIns = append(checkIns, checkIn)
	}
	sort.Slice(checkIns, func(i, j int) bool { return checkIns[i].Date > checkIns[j].Date })
	return checkIns, nil
}

func (s *JSONStore) ClearAll() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Usage = make(map[string]models.UsageEntry)
	s.store.CheckIns = make(map[string]models.CheckIn)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
