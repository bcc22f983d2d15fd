package classify

import (
	"sort"

	"github.com/julianstephens/remind/internal/constants"
	"github.com/julianstephens/remind/internal/models"
)

// Item is the unified presentation view of a plain reminder or a materialized
// occurrence, resolved against "today".
type Item struct {
	ID               string
	OriginalID       string
	Title            string
	Note             string
	Priority         constants.Priority
	CategoryID       string
	Date             string
	EndDate          string
	Time             string
	EndTime          string
	IsAllDay         bool
	IsOverdue        bool
	IsRepeatInstance bool
}

// Buckets holds the four mutually exclusive due groups, each already sorted.
// The bucket and sort order is a presentation contract: notification rendering
// walks Merged() verbatim.
type Buckets struct {
	Overdue      []Item
	TimedToday   []Item
	UntimedToday []Item
	AllDayToday  []Item
}

// FromReminder builds an Item from a stored reminder.
func FromReminder(r models.Reminder, today string) Item {
	return newItem(r.ID, r.ID, r.Title, r.Note, r.Priority, r.CategoryID,
		r.Date, r.EndDate, r.Time, r.EndTime, false, today)
}

// FromOccurrence builds an Item from a materialized occurrence, inheriting
// title, priority, and category from the parent reminder.
func FromOccurrence(occ models.Occurrence, parent models.Reminder, today string) Item {
	return newItem(occ.InstanceID, occ.OriginalID, parent.Title, occ.Note, parent.Priority,
		parent.CategoryID, occ.Date, occ.EndDate, occ.Time, occ.EndTime, true, today)
}

func newItem(id, originalID, title, note string, priority constants.Priority, categoryID,
	date, endDate, timeStr, endTime string, isInstance bool, today string) Item {
	overdue := false
	if endDate != "" {
		overdue = endDate < today
	} else {
		overdue = date < today
	}
	return Item{
		ID:               id,
		OriginalID:       originalID,
		Title:            title,
		Note:             note,
		Priority:         priority,
		CategoryID:       categoryID,
		Date:             date,
		EndDate:          endDate,
		Time:             timeStr,
		EndTime:          endTime,
		IsAllDay:         timeStr == "",
		IsOverdue:        overdue,
		IsRepeatInstance: isInstance,
	}
}

// IsDue reports whether the item's date has arrived or passed as of today.
// Span items are due while today lies inside [Date, EndDate] and stay due
// (overdue) once the span has fully elapsed.
func (it Item) IsDue(today string) bool {
	if it.EndDate != "" {
		inSpan := it.Date <= today && today <= it.EndDate
		return inSpan || it.EndDate < today
	}
	return it.Date == today || it.Date < today
}

// Classify partitions the due items into the four presentation buckets and
// sorts each one. Items are assumed to be pre-filtered for completion; every
// due item lands in exactly one bucket.
func Classify(items []Item, today string) Buckets {
	var b Buckets
	for _, it := range items {
		if !it.IsDue(today) {
			continue
		}
		switch {
		case it.IsOverdue:
			b.Overdue = append(b.Overdue, it)
		case !it.IsAllDay && it.Time != "":
			b.TimedToday = append(b.TimedToday, it)
		case !it.IsAllDay:
			b.UntimedToday = append(b.UntimedToday, it)
		default:
			b.AllDayToday = append(b.AllDayToday, it)
		}
	}

	// Overdue: oldest first, empty times before timed ones on the same day.
	sort.SliceStable(b.Overdue, func(i, j int) bool {
		if b.Overdue[i].Date != b.Overdue[j].Date {
			return b.Overdue[i].Date < b.Overdue[j].Date
		}
		return b.Overdue[i].Time < b.Overdue[j].Time
	})
	// Timed today: by time of day; lexical HH:MM order is numeric order.
	sort.SliceStable(b.TimedToday, func(i, j int) bool {
		return b.TimedToday[i].Time < b.TimedToday[j].Time
	})
	sort.SliceStable(b.UntimedToday, func(i, j int) bool {
		return b.UntimedToday[i].Title < b.UntimedToday[j].Title
	})
	sort.SliceStable(b.AllDayToday, func(i, j int) bool {
		return b.AllDayToday[i].Title < b.AllDayToday[j].Title
	})

	return b
}

// Merged returns the display order: overdue, then timed, then untimed, then
// all-day.
func (b Buckets) Merged() []Item {
	out := make([]Item, 0, b.Len())
	out = append(out, b.Overdue...)
	out = append(out, b.TimedToday...)
	out = append(out, b.UntimedToday...)
	out = append(out, b.AllDayToday...)
	return out
}

// Len returns the total number of due items across all buckets. This is the
// badge count consumed by status-bar integrations.
func (b Buckets) Len() int {
	return len(b.Overdue) + len(b.TimedToday) + len(b.UntimedToday) + len(b.AllDayToday)
}

// Digest returns the items covered by the once-per-day all-day digest: every
// due item that the per-occurrence timed check does not own. Overdue timed
// items are included because their moment has already passed.
func (b Buckets) Digest() []Item {
	out := make([]Item, 0, b.Len())
	out = append(out, b.Overdue...)
	out = append(out, b.UntimedToday...)
	out = append(out, b.AllDayToday...)
	return out
}
