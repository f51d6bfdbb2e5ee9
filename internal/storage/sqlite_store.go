package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/thisisharsh7/drink-log/internal/constants"
	"github.com/thisisharsh7/drink-log/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS intake (
	id    INTEGER PRIMARY KEY CHECK (id = 1),
	count INTEGER NOT NULL,
	date  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS history (
	date     TEXT PRIMARY KEY,
	count    INTEGER NOT NULL,
	goal     INTEGER NOT NULL,
	goal_met INTEGER NOT NULL
);
`

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

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		defaultSettings := models.Settings{
			DailyGoal:            constants.DefaultDailyGoal,
			NotificationsEnabled: constants.DefaultNotificationsEnabled,
		}
		if err := s.SaveSettings(defaultSettings); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'drinklog init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetIntake() (models.WaterIntake, error) {
	var intake models.WaterIntake
	err := s.db.QueryRow(`SELECT count, date FROM intake WHERE id = 1`).Scan(&intake.Count, &intake.Date)
	if err == sql.ErrNoRows {
		return models.WaterIntake{}, ErrNotFound
	}
	if err != nil {
		return models.WaterIntake{}, fmt.Errorf("failed to get intake: %w", err)
	}
	return intake, nil
}

func (s *SQLiteStore) SaveIntake(intake models.WaterIntake) error {
	_, err := s.db.Exec(`
		INSERT INTO intake (id, count, date) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET count = excluded.count, date = excluded.date`,
		intake.Count, intake.Date)
	if err != nil {
		return fmt.Errorf("failed to save intake: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, fmt.Errorf("failed to scan setting: %w", err)
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	if len(data) == 0 {
		return models.Settings{}, ErrNotFound
	}

	settings, err := models.MapToSettings(data)
	if err != nil {
		return models.Settings{}, err
	}
	models.ApplyDefaultSettings(&settings)

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for key, value := range models.SettingsToMap(settings) {
		if _, err := tx.Exec(`
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
			key, value); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetHistory() (map[string]models.DayRecord, error) {
	rows, err := s.db.Query(`SELECT date, count, goal, goal_met FROM history`)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	history := make(map[string]models.DayRecord)
	for rows.Next() {
		var record models.DayRecord
		if err := rows.Scan(&record.Date, &record.Count, &record.Goal, &record.GoalMet); err != nil {
			return nil, fmt.Errorf("failed to scan day record: %w", err)
		}
		history[record.Date] = record
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return history, nil
}

func (s *SQLiteStore) GetDayRecord(date string) (models.DayRecord, error) {
	var record models.DayRecord
	err := s.db.QueryRow(`SELECT date, count, goal, goal_met FROM history WHERE date = ?`, date).
		Scan(&record.Date, &record.Count, &record.Goal, &record.GoalMet)
	if err == sql.ErrNoRows {
		return models.DayRecord{}, ErrNotFound
	}
	if err != nil {
		return models.DayRecord{}, fmt.Errorf("failed to get day record: %w", err)
	}
	return record, nil
}

func (s *SQLiteStore) SaveDayRecord(record models.DayRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO history (date, count, goal, goal_met) VALUES (?, ?, ?, ?)
		ON CONFLICT (date) DO UPDATE SET
			count = excluded.count,
			goal = excluded.goal,
			goal_met = excluded.goal_met`,
		record.Date, record.Count, record.Goal, record.GoalMet)
	if err != nil {
		return fmt.Errorf("failed to save day record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
