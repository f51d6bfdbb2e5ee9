package storage

import (
	"path/filepath"
	"testing"

	"github.com/thisisharsh7/drink-log/internal/constants"
	"github.com/thisisharsh7/drink-log/internal/models"
)

func setupTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "drinklog.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteInitSeedsDefaults(t *testing.T) {
	store := setupTestSQLiteStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.DailyGoal != constants.DefaultDailyGoal {
		t.Errorf("expected default goal %d, got %d", constants.DefaultDailyGoal, settings.DailyGoal)
	}
}

func TestSQLiteInitIsIdempotent(t *testing.T) {
	store := setupTestSQLiteStore(t)

	custom := models.Settings{DailyGoal: 15, NotificationsEnabled: true}
	if err := store.SaveSettings(custom); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	// A second init over an existing database must not reset settings
	reopened := NewSQLiteStore(store.GetConfigPath())
	if err := reopened.Init(); err != nil {
		t.Fatalf("failed to re-init store: %v", err)
	}
	defer reopened.Close()

	settings, err := reopened.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings != custom {
		t.Errorf("expected settings preserved across init, got %+v", settings)
	}
}

func TestSQLiteLoadMissingFile(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))

	if err := store.Load(); err == nil {
		t.Error("expected error when loading a store that was never initialized")
	}
}

func TestSQLiteIntakeNotFound(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if _, err := store.GetIntake(); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for fresh store, got %v", err)
	}
}

func TestSQLiteIntakeSingleRow(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if err := store.SaveIntake(models.WaterIntake{Count: 3, Date: "2025-06-14"}); err != nil {
		t.Fatalf("failed to save intake: %v", err)
	}
	// Saving again replaces the single row rather than adding a second one
	want := models.WaterIntake{Count: 0, Date: "2025-06-15"}
	if err := store.SaveIntake(want); err != nil {
		t.Fatalf("failed to overwrite intake: %v", err)
	}

	got, err := store.GetIntake()
	if err != nil {
		t.Fatalf("failed to get intake: %v", err)
	}
	if got != want {
		t.Errorf("intake mismatch: got %+v, want %+v", got, want)
	}
}

func TestSQLiteDayRecordUpsert(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if err := store.SaveDayRecord(models.NewDayRecord("2025-06-15", 3, 8)); err != nil {
		t.Fatalf("failed to save day record: %v", err)
	}
	updated := models.NewDayRecord("2025-06-15", 8, 8)
	if err := store.SaveDayRecord(updated); err != nil {
		t.Fatalf("failed to update day record: %v", err)
	}

	got, err := store.GetDayRecord("2025-06-15")
	if err != nil {
		t.Fatalf("failed to get day record: %v", err)
	}
	if got != updated {
		t.Errorf("expected updated record %+v, got %+v", updated, got)
	}

	history, err := store.GetHistory()
	if err != nil {
		t.Fatalf("failed to get history: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("expected single ledger entry after upsert, got %d", len(history))
	}
}

func TestSQLiteDayRecordNotFound(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if _, err := store.GetDayRecord("2025-06-15"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	store := setupTestSQLiteStore(t)

	record := models.NewDayRecord("2025-06-15", 8, 8)
	if err := store.SaveDayRecord(record); err != nil {
		t.Fatalf("failed to save day record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	reopened := NewSQLiteStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetDayRecord("2025-06-15")
	if err != nil {
		t.Fatalf("failed to get day record: %v", err)
	}
	if got != record {
		t.Errorf("record mismatch after reopen: got %+v, want %+v", got, record)
	}
}
