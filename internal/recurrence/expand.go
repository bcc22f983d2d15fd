package recurrence

import (
	"fmt"
	"time"

	"github.com/julianstephens/remind/internal/constants"
	"github.com/julianstephens/remind/internal/models"
	"github.com/julianstephens/remind/internal/utils"
)

// Expand generates every occurrence of the reminder's repeat rule whose date
// falls in [rangeStart, rangeEnd], both bounds inclusive. The pattern is
// anchored at the reminder's own date; occurrences before the anchor are never
// generated. Multi-day reminders keep their span length on every occurrence.
//
// Expand is a pure function of its inputs: it never mutates the reminder, and
// calling it twice with the same arguments yields the same result. A disabled
// or malformed rule, an inverted range, or unparseable dates all produce an
// empty result rather than an error.
//
// The occurrence that lands on the anchor date itself is included here; use
// ExpandForNotification when the base reminder already represents that day.
func Expand(r models.Reminder, rangeStart, rangeEnd string) []models.Occurrence {
	if !r.Repeats() {
		return nil
	}

	anchor, err := utils.ParseDate(r.Date)
	if err != nil {
		return nil
	}
	start, err := utils.ParseDate(rangeStart)
	if err != nil {
		return nil
	}
	end, err := utils.ParseDate(rangeEnd)
	if err != nil {
		return nil
	}
	if end.Before(start) {
		return nil
	}
	if start.Before(anchor) {
		start = anchor
	}

	span := r.SpanDays()
	rule := r.Repeat

	// Walk the range day by day and keep pattern matches. Collisions on the
	// same (parent, date) key retain the earliest-dated version.
	seen := make(map[string]bool)
	var out []models.Occurrence
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !matches(rule, anchor, d) {
			continue
		}
		date := utils.FormatDate(d)
		if seen[date] {
			continue
		}
		seen[date] = true

		occ := models.Occurrence{
			InstanceID: InstanceID(r.ID, date),
			OriginalID: r.ID,
			Date:       date,
			Time:       r.Time,
			EndTime:    r.EndTime,
			Completed:  rule.IsInstanceCompleted(date),
			Note:       rule.InstanceNote(date, r.Note),
		}
		if span > 0 {
			occ.EndDate = utils.FormatDate(d.AddDate(0, 0, span))
		}
		out = append(out, occ)
	}

	return out
}

// ExpandForNotification behaves like Expand but drops the occurrence whose
// date equals the parent reminder's own date: for alerting, the base record
// already stands for that day.
func ExpandForNotification(r models.Reminder, rangeStart, rangeEnd string) []models.Occurrence {
	all := Expand(r, rangeStart, rangeEnd)
	out := all[:0:0]
	for _, occ := range all {
		if occ.Date == r.Date {
			continue
		}
		out = append(out, occ)
	}
	return out
}

// InstanceID derives the synthetic id of an occurrence from its parent id and
// resolved date.
func InstanceID(parentID, date string) string {
	return fmt.Sprintf("%s_%s", parentID, date)
}

// matches reports whether the rule's frequency pattern, anchored at anchor,
// selects the given date. The caller guarantees date >= anchor and a usable
// rule.
func matches(rule *models.RepeatRule, anchor, date time.Time) bool {
	interval := rule.EffectiveInterval()

	switch rule.Type {
	case constants.RepeatDaily:
		days := daysBetween(anchor, date)
		return days%interval == 0

	case constants.RepeatWeekly:
		if len(rule.WeekdayMask) > 0 {
			if !weekdayInMask(date.Weekday(), rule.WeekdayMask) {
				return false
			}
			return weeksBetween(anchor, date)%interval == 0
		}
		days := daysBetween(anchor, date)
		return days%7 == 0 && (days/7)%interval == 0

	case constants.RepeatMonthly:
		if monthsBetween(anchor, date)%interval != 0 {
			return false
		}
		if len(rule.MonthDays) > 0 {
			for _, md := range rule.MonthDays {
				if date.Day() == md {
					return true
				}
			}
			return false
		}
		// Months lacking the anchor's day (e.g. the 31st in February)
		// simply produce no occurrence.
		return date.Day() == anchor.Day()

	case constants.RepeatYearly:
		if (date.Year()-anchor.Year())%interval != 0 {
			return false
		}
		return date.Month() == anchor.Month() && date.Day() == anchor.Day()

	default:
		return false
	}
}

func weekdayInMask(wd time.Weekday, mask []time.Weekday) bool {
	for _, m := range mask {
		if m == wd {
			return true
		}
	}
	return false
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// weeksBetween counts calendar weeks (Sunday-aligned) between the anchor's
// week and the date's week, so a masked weekly rule fires on every selected
// weekday of an active week.
func weeksBetween(anchor, date time.Time) int {
	anchorWeek := anchor.AddDate(0, 0, -int(anchor.Weekday()))
	dateWeek := date.AddDate(0, 0, -int(date.Weekday()))
	return daysBetween(anchorWeek, dateWeek) / 7
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
