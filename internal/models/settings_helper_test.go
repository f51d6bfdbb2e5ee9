package models

import (
	"testing"

	"github.com/thisisharsh7/drink-log/internal/constants"
)

func TestSettingsMapRoundTrip(t *testing.T) {
	original := Settings{DailyGoal: 10, NotificationsEnabled: true}

	m := SettingsToMap(original)
	parsed, err := MapToSettings(m)
	if err != nil {
		t.Fatalf("MapToSettings failed: %v", err)
	}
	if parsed != original {
		t.Errorf("round trip mismatch: got %+v, want %+v", parsed, original)
	}
}

func TestMapToSettingsUnknownKeysIgnored(t *testing.T) {
	m := map[string]string{
		constants.KeyDailyGoal: "6",
		"some_future_key":      "whatever",
	}

	settings, err := MapToSettings(m)
	if err != nil {
		t.Fatalf("MapToSettings failed: %v", err)
	}
	if settings.DailyGoal != 6 {
		t.Errorf("expected daily goal 6, got %d", settings.DailyGoal)
	}
}

func TestMapToSettingsBadGoal(t *testing.T) {
	m := map[string]string{constants.KeyDailyGoal: "eight"}

	if _, err := MapToSettings(m); err == nil {
		t.Error("expected error for non-numeric daily goal")
	}
}

func TestMapToSettingsNotificationsFlag(t *testing.T) {
	enabled, err := MapToSettings(map[string]string{constants.KeyNotificationsEnabled: "true"})
	if err != nil {
		t.Fatalf("MapToSettings failed: %v", err)
	}
	if !enabled.NotificationsEnabled {
		t.Error("expected notifications enabled for \"true\"")
	}

	// anything other than the literal "true" is treated as off
	disabled, err := MapToSettings(map[string]string{constants.KeyNotificationsEnabled: "TRUE"})
	if err != nil {
		t.Fatalf("MapToSettings failed: %v", err)
	}
	if disabled.NotificationsEnabled {
		t.Error("expected notifications disabled for \"TRUE\"")
	}
}

func TestApplyDefaultSettings(t *testing.T) {
	settings := Settings{}
	ApplyDefaultSettings(&settings)

	if settings.DailyGoal != constants.DefaultDailyGoal {
		t.Errorf("expected default goal %d, got %d", constants.DefaultDailyGoal, settings.DailyGoal)
	}

	custom := Settings{DailyGoal: 12}
	ApplyDefaultSettings(&custom)
	if custom.DailyGoal != 12 {
		t.Errorf("expected custom goal preserved, got %d", custom.DailyGoal)
	}
}

func TestClampGoal(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"below minimum", 0, constants.MinDailyGoal},
		{"negative", -5, constants.MinDailyGoal},
		{"in range", 8, 8},
		{"at maximum", constants.MaxDailyGoal, constants.MaxDailyGoal},
		{"above maximum", 99, constants.MaxDailyGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampGoal(tt.in); got != tt.want {
				t.Errorf("ClampGoal(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewDayRecord(t *testing.T) {
	met := NewDayRecord("2025-06-15", 8, 8)
	if !met.GoalMet {
		t.Error("expected goal met when count equals goal")
	}

	over := NewDayRecord("2025-06-15", 11, 8)
	if !over.GoalMet {
		t.Error("expected goal met when count exceeds goal")
	}

	unmet := NewDayRecord("2025-06-15", 3, 8)
	if unmet.GoalMet {
		t.Error("expected goal not met when count below goal")
	}
}
