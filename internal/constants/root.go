package constants

import "time"

const (
	AppName            = "drinklog"
	Version            = "v0.3.0"
	DefaultConfigPath  = "~/.config/drinklog/drinklog.db"
	DefaultKeyringUser = "database-connection"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage keys for the key-value settings tables
	KeyDailyGoal            = "daily_goal"
	KeyNotificationsEnabled = "notifications_enabled"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "drinklog-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "drinklog-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.thisisharsh7.drinklog"

	// ReminderGracePeriod is how far past a scheduled reminder time the notify
	// command will still deliver it.
	ReminderGracePeriod = 10 * time.Minute
)
