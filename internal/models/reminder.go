package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/remind/internal/constants"
)

// Reminder is a single stored reminder record. Date-only reminders (no Time)
// are treated as all-day; EndDate marks a multi-day span.
type Reminder struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Note       string              `json:"note,omitempty"`
	Date       string              `json:"date"`               // YYYY-MM-DD
	EndDate    string              `json:"end_date,omitempty"` // YYYY-MM-DD, inclusive span end
	Time       string              `json:"time,omitempty"`     // HH:MM, empty means all-day
	EndTime    string              `json:"end_time,omitempty"` // HH:MM
	Priority   constants.Priority  `json:"priority,omitempty"`
	CategoryID string              `json:"category_id,omitempty"`
	Completed  bool                `json:"completed"`
	Notified   bool                `json:"notified,omitempty"`
	Repeat     *RepeatRule         `json:"repeat,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// RepeatRule describes how a reminder recurs. A rule with an unknown type or
// an interval below 1 is treated as disabled rather than rejected, so a bad
// rule degrades to "no occurrences" instead of breaking a sweep.
type RepeatRule struct {
	Enabled     bool                 `json:"enabled"`
	Type        constants.RepeatType `json:"type,omitempty"`
	Interval    int                  `json:"interval,omitempty"`     // every N days/weeks/months/years
	WeekdayMask []time.Weekday       `json:"weekday_mask,omitempty"` // weekly: which weekdays
	MonthDays   []int                `json:"month_days,omitempty"`   // monthly: which days of month

	// CompletedInstances holds occurrence dates (YYYY-MM-DD) that are done
	// independent of the parent's Completed flag.
	CompletedInstances []string `json:"completed_instances,omitempty"`

	// NotifiedInstances holds encoded InstanceKeys ("date_time") for
	// occurrences that already alerted. Entries are only ever appended.
	NotifiedInstances []string `json:"notified_instances,omitempty"`

	// InstanceModifications maps an occurrence date to per-instance overrides.
	InstanceModifications map[string]InstanceModification `json:"instance_modifications,omitempty"`
}

// InstanceModification carries per-occurrence overrides for a repeat rule.
type InstanceModification struct {
	Note string `json:"note,omitempty"`
}

// Occurrence is one concrete materialization of a recurring reminder. It is
// derived on every expansion and never persisted.
type Occurrence struct {
	InstanceID string
	OriginalID string
	Date       string
	EndDate    string
	Time       string
	EndTime    string
	Completed  bool
	Note       string
}

// Validate performs the single validation pass applied at the store boundary.
// Records that fail it are skipped by the sweep, not partially interpreted.
func (r *Reminder) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("reminder id cannot be empty")
	}

	if r.Date == "" {
		return fmt.Errorf("reminder date cannot be empty")
	}
	start, err := time.Parse(constants.DateFormat, r.Date)
	if err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}

	if r.EndDate != "" {
		end, err := time.Parse(constants.DateFormat, r.EndDate)
		if err != nil {
			return fmt.Errorf("invalid end date format (expected YYYY-MM-DD): %w", err)
		}
		if end.Before(start) {
			return fmt.Errorf("end date %s is before start date %s", r.EndDate, r.Date)
		}
	}

	if r.Time != "" {
		if _, err := time.Parse(constants.TimeFormat, r.Time); err != nil {
			return fmt.Errorf("invalid time format (expected HH:MM): %w", err)
		}
	}
	if r.EndTime != "" {
		if r.Time == "" {
			return fmt.Errorf("end time requires a start time")
		}
		if _, err := time.Parse(constants.TimeFormat, r.EndTime); err != nil {
			return fmt.Errorf("invalid end time format (expected HH:MM): %w", err)
		}
	}

	switch r.Priority {
	case "", constants.PriorityNone, constants.PriorityLow, constants.PriorityMedium, constants.PriorityHigh:
	default:
		return fmt.Errorf("invalid priority: %s", r.Priority)
	}

	return nil
}

// IsAllDay reports whether the reminder has no specific time of day.
func (r *Reminder) IsAllDay() bool {
	return r.Time == ""
}

// SpanDays returns the length of the reminder's date span in days beyond the
// first day (0 for single-day reminders).
func (r *Reminder) SpanDays() int {
	if r.EndDate == "" {
		return 0
	}
	start, err := time.Parse(constants.DateFormat, r.Date)
	if err != nil {
		return 0
	}
	end, err := time.Parse(constants.DateFormat, r.EndDate)
	if err != nil {
		return 0
	}
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Repeats reports whether the reminder carries a usable, enabled repeat rule.
func (r *Reminder) Repeats() bool {
	return r.Repeat != nil && r.Repeat.IsUsable()
}

// IsUsable reports whether the rule is enabled and well-formed enough to
// expand. Missing frequency or a non-positive interval disables the rule.
func (rr *RepeatRule) IsUsable() bool {
	if rr == nil || !rr.Enabled {
		return false
	}
	switch rr.Type {
	case constants.RepeatDaily, constants.RepeatWeekly, constants.RepeatMonthly, constants.RepeatYearly:
	default:
		return false
	}
	return rr.EffectiveInterval() >= 1
}

// EffectiveInterval returns the repeat step, defaulting to 1 when unset.
func (rr *RepeatRule) EffectiveInterval() int {
	if rr.Interval == 0 {
		return 1
	}
	return rr.Interval
}

// IsInstanceCompleted reports whether the occurrence on the given date has
// been completed at the instance level.
func (rr *RepeatRule) IsInstanceCompleted(date string) bool {
	if rr == nil {
		return false
	}
	for _, d := range rr.CompletedInstances {
		if d == date {
			return true
		}
	}
	return false
}

// InstanceNote returns the per-instance note override for the given date, or
// the provided fallback when no override exists.
func (rr *RepeatRule) InstanceNote(date, fallback string) string {
	if rr == nil {
		return fallback
	}
	if mod, ok := rr.InstanceModifications[date]; ok && mod.Note != "" {
		return mod.Note
	}
	return fallback
}
