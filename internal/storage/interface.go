package storage

import (
	"errors"

	"github.com/thisisharsh7/drink-log/internal/models"
)

// ErrNotFound is returned when a key has never been written. Callers treat
// absence as "use default", never as a hard failure.
var ErrNotFound = errors.New("not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Today's intake (fast-path duplicate of today's ledger record)
	GetIntake() (models.WaterIntake, error)
	SaveIntake(models.WaterIntake) error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// History ledger: one record per calendar day, keyed by date
	GetHistory() (map[string]models.DayRecord, error)
	GetDayRecord(date string) (models.DayRecord, error)
	SaveDayRecord(models.DayRecord) error

	// Utils
	GetConfigPath() string
}
