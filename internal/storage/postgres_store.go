package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/lib/pq"

	"github.com/thisisharsh7/drink-log/internal/constants"
	"github.com/thisisharsh7/drink-log/internal/models"
)

var (
	// ErrInvalidConnectionString is returned when the connection string is malformed
	ErrInvalidConnectionString = errors.New("invalid connection string")
	// ErrEmbeddedCredentials is returned when a connection string carries a password
	ErrEmbeddedCredentials = errors.New("connection string must not contain a password")
)

const postgresSchema = `
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
	goal_met BOOLEAN NOT NULL
);
`

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// ValidateConnString checks that the given PostgreSQL connection string (URI
// or DSN) is well-formed and does not contain an embedded password.
// Credentials belong in the environment, .pgpass, or the OS keyring.
func ValidateConnString(connStr string) (bool, error) {
	if strings.TrimSpace(connStr) == "" {
		return false, fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return false, fmt.Errorf("%w: invalid connection string format: %v", ErrInvalidConnectionString, err)
	}

	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		parsedURL, err := url.Parse(connStr)
		if err != nil {
			return false, fmt.Errorf("%w: failed to parse connection URL: %v", ErrInvalidConnectionString, err)
		}

		if _, isSet := parsedURL.User.Password(); isSet {
			return false, ErrEmbeddedCredentials
		}
	} else {
		for _, pair := range strings.Fields(connStr) {
			parts := strings.SplitN(pair, "=", 2)
			if len(parts) == 2 && strings.ToLower(strings.TrimSpace(parts[0])) == "password" {
				return false, ErrEmbeddedCredentials
			}
		}
	}

	return true, nil
}

func (s *PostgresStore) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
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

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) GetIntake() (models.WaterIntake, error) {
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

func (s *PostgresStore) SaveIntake(intake models.WaterIntake) error {
	_, err := s.db.Exec(`
		INSERT INTO intake (id, count, date) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET count = EXCLUDED.count, date = EXCLUDED.date`,
		intake.Count, intake.Date)
	if err != nil {
		return fmt.Errorf("failed to save intake: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetSettings() (models.Settings, error) {
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

func (s *PostgresStore) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for key, value := range models.SettingsToMap(settings) {
		if _, err := tx.Exec(`
			INSERT INTO settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
			key, value); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	return tx.Commit()
}

func (s *PostgresStore) GetHistory() (map[string]models.DayRecord, error) {
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

func (s *PostgresStore) GetDayRecord(date string) (models.DayRecord, error) {
	var record models.DayRecord
	err := s.db.QueryRow(`SELECT date, count, goal, goal_met FROM history WHERE date = $1`, date).
		Scan(&record.Date, &record.Count, &record.Goal, &record.GoalMet)
	if err == sql.ErrNoRows {
		return models.DayRecord{}, ErrNotFound
	}
	if err != nil {
		return models.DayRecord{}, fmt.Errorf("failed to get day record: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) SaveDayRecord(record models.DayRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO history (date, count, goal, goal_met) VALUES ($1, $2, $3, $4)
		ON CONFLICT (date) DO UPDATE SET
			count = EXCLUDED.count,
			goal = EXCLUDED.goal,
			goal_met = EXCLUDED.goal_met`,
		record.Date, record.Count, record.Goal, record.GoalMet)
	if err != nil {
		return fmt.Errorf("failed to save day record: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
