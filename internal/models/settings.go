package models

// Settings represents application-wide settings
type Settings struct {
	DailyGoal            int  `json:"daily_goal"`            // target number of drinks per day
	NotificationsEnabled bool `json:"notifications_enabled"` // whether hydration reminders are enabled
}
