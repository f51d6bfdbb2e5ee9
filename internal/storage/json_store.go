package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thisisharsh7/drink-log/internal/constants"
	"github.com/thisisharsh7/drink-log/internal/models"
)

type Store struct {
	Version  int                         `json:"version"`
	Settings models.Settings             `json:"settings"`
	Intake   *models.WaterIntake         `json:"intake,omitempty"`
	History  map[string]models.DayRecord `json:"history"`
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

	// Initialize with default settings
	s.store = &Store{
		Version: 1,
		Settings: models.Settings{
			DailyGoal:            constants.DefaultDailyGoal,
			NotificationsEnabled: constants.DefaultNotificationsEnabled,
		},
		History: make(map[string]models.DayRecord),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'drinklog init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.History == nil {
		s.store.History = make(map[string]models.DayRecord)
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

func (s *JSONStore) GetIntake() (models.WaterIntake, error) {
	if s.store == nil {
		return models.WaterIntake{}, fmt.Errorf("storage not loaded")
	}
	if s.store.Intake == nil {
		return models.WaterIntake{}, ErrNotFound
	}
	return *s.store.Intake, nil
}

func (s *JSONStore) SaveIntake(intake models.WaterIntake) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Intake = &intake
	return s.save()
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) GetHistory() (map[string]models.DayRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	// Copy so callers cannot mutate the ledger behind the store's back
	history := make(map[string]models.DayRecord, len(s.store.History))
	for date, record := range s.store.History {
		history[date] = record
	}

	return history, nil
}

func (s *JSONStore) GetDayRecord(date string) (models.DayRecord, error) {
	if s.store == nil {
		return models.DayRecord{}, fmt.Errorf("storage not loaded")
	}

	record, ok := s.store.History[date]
	if !ok {
		return models.DayRecord{}, ErrNotFound
	}

	return record, nil
}

func (s *JSONStore) SaveDayRecord(record models.DayRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.History[record.Date] = record
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
