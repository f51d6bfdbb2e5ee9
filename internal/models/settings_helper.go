package models

import (
	"fmt"

	"github.com/thisisharsh7/drink-log/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.KeyDailyGoal:
			if _, err := fmt.Sscanf(value, "%d", &settings.DailyGoal); err != nil {
				return Settings{}, fmt.Errorf("parsing daily_goal: %w", err)
			}
		case constants.KeyNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.KeyDailyGoal:            fmt.Sprintf("%d", settings.DailyGoal),
		constants.KeyNotificationsEnabled: fmt.Sprintf("%v", settings.NotificationsEnabled),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.DailyGoal == 0 {
		settings.DailyGoal = constants.DefaultDailyGoal
	}
}

// ClampGoal forces a proposed daily goal into the allowed range.
func ClampGoal(goal int) int {
	if goal < constants.MinDailyGoal {
		return constants.MinDailyGoal
	}
	if goal > constants.MaxDailyGoal {
		return constants.MaxDailyGoal
	}
	return goal
}
