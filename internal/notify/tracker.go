package notify

import (
	"strings"

	"github.com/julianstephens/remind/internal/models"
	"github.com/julianstephens/remind/internal/utils"
)

// InstanceKey identifies one timed occurrence of a recurring reminder for
// notification dedup. It is a typed composite rather than an ad hoc
// concatenation so membership checks cannot be fooled by odd date or time
// strings; Encode fixes the persisted wire form.
type InstanceKey struct {
	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// Encode returns the persisted form of the key ("date_time").
func (k InstanceKey) Encode() string {
	return k.Date + "_" + k.Time
}

// ParseInstanceKey decodes a persisted key. It reports false for entries that
// do not split into a date and a time.
func ParseInstanceKey(s string) (InstanceKey, bool) {
	date, timeStr, ok := strings.Cut(s, "_")
	if !ok || date == "" || timeStr == "" {
		return InstanceKey{}, false
	}
	return InstanceKey{Date: date, Time: timeStr}, true
}

// ShouldNotifyNow is the per-occurrence timed due test. It returns true only
// when the item is dated today, carries a time of day, has not already
// alerted, and the current time has reached or passed the item's time. Times
// compare as minutes since midnight; an unparseable time never fires.
func ShouldNotifyNow(date, timeStr string, alreadyNotified bool, today, currentTime string) bool {
	if date != today {
		return false
	}
	if timeStr == "" {
		return false
	}
	if alreadyNotified {
		return false
	}

	itemMin, err := utils.ParseTimeToMinutes(timeStr)
	if err != nil {
		return false
	}
	nowMin, err := utils.ParseTimeToMinutes(currentTime)
	if err != nil {
		return false
	}
	return nowMin >= itemMin
}

// HasNotified reports whether the occurrence identified by key has already
// alerted under the given rule.
func HasNotified(rule *models.RepeatRule, key InstanceKey) bool {
	if rule == nil {
		return false
	}
	encoded := key.Encode()
	for _, e := range rule.NotifiedInstances {
		if e == encoded {
			return true
		}
	}
	return false
}

// MarkNotified records that the occurrence identified by key has alerted.
// Entries are append-only for the lifetime of the rule. It reports whether the
// rule changed.
func MarkNotified(rule *models.RepeatRule, key InstanceKey) bool {
	if rule == nil {
		return false
	}
	if HasNotified(rule, key) {
		return false
	}
	rule.NotifiedInstances = append(rule.NotifiedInstances, key.Encode())
	return true
}

// MarkReminderNotified sets the single-occurrence dedup flag on a plain
// reminder. It reports whether the record changed.
func MarkReminderNotified(r *models.Reminder) bool {
	if r.Notified {
		return false
	}
	r.Notified = true
	return true
}
