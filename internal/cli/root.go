package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/remind/internal/constants"
	"github.com/julianstephens/remind/internal/models"
	"github.com/julianstephens/remind/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// ParseWeekdays parses a comma-separated list of weekdays into a weekday mask.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		// Numeric form: 0=Sunday .. 6=Saturday
		num, err := strconv.Atoi(part)
		if err == nil && num >= 0 && num <= 6 {
			weekdays = append(weekdays, time.Weekday(num))
		} else {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
	}

	return weekdays, nil
}

// ParseMonthDays parses a comma-separated list of days of the month (1-31).
func ParseMonthDays(s string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		num, err := strconv.Atoi(part)
		if err != nil || num < 1 || num > 31 {
			return nil, fmt.Errorf("invalid day of month: %s", part)
		}
		days = append(days, num)
	}
	return days, nil
}

// FormatRepeat formats a repeat rule into a human-readable string.
func FormatRepeat(rule *models.RepeatRule) string {
	if rule == nil || !rule.Enabled {
		return "once"
	}

	interval := rule.EffectiveInterval()
	switch rule.Type {
	case constants.RepeatDaily:
		if interval == 1 {
			return "daily"
		}
		return fmt.Sprintf("every %d days", interval)
	case constants.RepeatWeekly:
		base := "weekly"
		if interval > 1 {
			base = fmt.Sprintf("every %d weeks", interval)
		}
		if len(rule.WeekdayMask) > 0 {
			var days []string
			for _, wd := range rule.WeekdayMask {
				days = append(days, wd.String()[:3])
			}
			return fmt.Sprintf("%s on %s", base, strings.Join(days, ","))
		}
		return base
	case constants.RepeatMonthly:
		base := "monthly"
		if interval > 1 {
			base = fmt.Sprintf("every %d months", interval)
		}
		if len(rule.MonthDays) > 0 {
			var days []string
			for _, d := range rule.MonthDays {
				days = append(days, strconv.Itoa(d))
			}
			return fmt.Sprintf("%s on day %s", base, strings.Join(days, ","))
		}
		return base
	case constants.RepeatYearly:
		if interval == 1 {
			return "yearly"
		}
		return fmt.Sprintf("every %d years", interval)
	default:
		return "unknown"
	}
}
