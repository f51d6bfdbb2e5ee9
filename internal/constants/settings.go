package constants

const (
	// Default Settings Values
	DefaultDailyGoal            = 8
	DefaultNotificationsEnabled = false

	// Goal stepper bounds
	MinDailyGoal = 1
	MaxDailyGoal = 20
)

// ReminderTimes are the daily reminder slots (HH:MM, local time).
var ReminderTimes = []string{"09:00", "12:00", "15:00", "18:00"}

// ReminderMessages rotate across the reminder slots.
var ReminderMessages = []string{
	"Thirsty? 💧",
	"Time for a refill! 🥤",
	"Stay hydrated! 💙",
	"Don't forget to drink water! 💦",
	"Hydration check! 🌊",
}
