package constants

import "time"

// Priority represents the priority of a reminder
type Priority string

// RepeatType represents the frequency of a reminder's repeat rule
type RepeatType string

const (
	AppName            = "remind"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/remind/reminders.json"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "remind-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.remind"

	// Sweep constants
	DefaultCheckInterval = 30 * time.Second
	SweepStartupDelay    = 5 * time.Second

	// Priority constants
	PriorityNone   Priority = "none"
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"

	// Repeat type constants
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatYearly  RepeatType = "yearly"

	// Default Settings Values
	DefaultNotificationsEnabled  = true
	DefaultQuietHoursEnd         = "06:00"
	DefaultCheckIntervalSec      = 30
	DefaultNotifyAnchorInstances = false
	DefaultTimezone              = "Local" // Use system local timezone by default
)
