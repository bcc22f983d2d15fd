package models

// Settings represents application-wide settings
type Settings struct {
	NotificationsEnabled  bool   `json:"notifications_enabled"`   // whether the sweep fires notifications at all
	QuietHoursEnd         string `json:"quiet_hours_end"`         // no alerts before this local time, e.g. "06:00"
	CheckIntervalSec      int    `json:"check_interval_sec"`      // seconds between sweep ticks
	NotifyAnchorInstances bool   `json:"notify_anchor_instances"` // whether repeat instances on the anchor date notify independently
	Timezone              string `json:"timezone"`                // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
}
