package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/thisisharsh7/drink-log/internal/constants"
	"github.com/thisisharsh7/drink-log/internal/models"
)

func setupTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "drinklog.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store
}

func TestJSONInitSeedsDefaults(t *testing.T) {
	store := setupTestJSONStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.DailyGoal != constants.DefaultDailyGoal {
		t.Errorf("expected default goal %d, got %d", constants.DefaultDailyGoal, settings.DailyGoal)
	}
	if settings.NotificationsEnabled != constants.DefaultNotificationsEnabled {
		t.Errorf("expected default notifications %v, got %v",
			constants.DefaultNotificationsEnabled, settings.NotificationsEnabled)
	}
}

func TestJSONInitRefusesExisting(t *testing.T) {
	store := setupTestJSONStore(t)

	second := NewJSONStore(store.GetConfigPath())
	if err := second.Init(); err == nil {
		t.Error("expected error when initializing over an existing store")
	}
}

func TestJSONLoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))

	if err := store.Load(); err == nil {
		t.Error("expected error when loading a store that was never initialized")
	}
}

func TestJSONIntakeNotFound(t *testing.T) {
	store := setupTestJSONStore(t)

	if _, err := store.GetIntake(); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for fresh store, got %v", err)
	}
}

func TestJSONIntakePersistence(t *testing.T) {
	store := setupTestJSONStore(t)

	intake := models.WaterIntake{Count: 5, Date: "2025-06-15"}
	if err := store.SaveIntake(intake); err != nil {
		t.Fatalf("failed to save intake: %v", err)
	}

	// Reopen from disk to confirm the write went through
	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	got, err := reopened.GetIntake()
	if err != nil {
		t.Fatalf("failed to get intake: %v", err)
	}
	if got != intake {
		t.Errorf("intake mismatch: got %+v, want %+v", got, intake)
	}
}

func TestJSONSettingsRoundTrip(t *testing.T) {
	store := setupTestJSONStore(t)

	settings := models.Settings{DailyGoal: 12, NotificationsEnabled: true}
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if got != settings {
		t.Errorf("settings mismatch: got %+v, want %+v", got, settings)
	}
}

func TestJSONDayRecordNotFound(t *testing.T) {
	store := setupTestJSONStore(t)

	if _, err := store.GetDayRecord("2025-06-15"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestJSONDayRecordUpsert(t *testing.T) {
	store := setupTestJSONStore(t)

	first := models.NewDayRecord("2025-06-15", 3, 8)
	if err := store.SaveDayRecord(first); err != nil {
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

func TestJSONUpsertIdempotent(t *testing.T) {
	store := setupTestJSONStore(t)

	record := models.NewDayRecord("2025-06-15", 8, 8)
	if err := store.SaveDayRecord(record); err != nil {
		t.Fatalf("failed to save day record: %v", err)
	}

	before, err := os.ReadFile(store.GetConfigPath())
	if err != nil {
		t.Fatalf("failed to read store file: %v", err)
	}

	// Writing the identical record again must not change the serialized state
	if err := store.SaveDayRecord(record); err != nil {
		t.Fatalf("failed to re-save day record: %v", err)
	}

	after, err := os.ReadFile(store.GetConfigPath())
	if err != nil {
		t.Fatalf("failed to read store file: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Error("expected byte-identical store file after idempotent upsert")
	}
}

func TestJSONHistoryCopyIsDetached(t *testing.T) {
	store := setupTestJSONStore(t)

	if err := store.SaveDayRecord(models.NewDayRecord("2025-06-15", 8, 8)); err != nil {
		t.Fatalf("failed to save day record: %v", err)
	}

	history, err := store.GetHistory()
	if err != nil {
		t.Fatalf("failed to get history: %v", err)
	}
	delete(history, "2025-06-15")

	if _, err := store.GetDayRecord("2025-06-15"); err != nil {
		t.Errorf("mutating the returned history map must not affect the store: %v", err)
	}
}
