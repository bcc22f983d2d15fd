package sweep

import (
	"fmt"
	"strings"

	"github.com/julianstephens/remind/internal/classify"
)

// timedAlertBody renders the body of a single timed alert.
func timedAlertBody(item classify.Item) string {
	var b strings.Builder
	b.WriteString("Due at ")
	b.WriteString(item.Time)
	if item.EndTime != "" {
		b.WriteString(" - ")
		b.WriteString(item.EndTime)
	}
	if item.Note != "" {
		b.WriteString("\n")
		b.WriteString(item.Note)
	}
	return b.String()
}

// FormatDigest renders the once-per-day all-day digest. Items arrive in
// presentation order and are rendered verbatim, one line each; overdue lines
// carry their original date so the reader can tell how stale they are.
func FormatDigest(items []classify.Item, categoryNames map[string]string) (title, body string) {
	if len(items) == 1 {
		title = "1 reminder due"
	} else {
		title = fmt.Sprintf("%d reminders due", len(items))
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		line := item.Title
		if name := categoryNames[item.CategoryID]; name != "" {
			line += " [" + name + "]"
		}
		if item.IsOverdue {
			line += " (since " + item.Date + ")"
		}
		lines = append(lines, line)
	}

	return title, strings.Join(lines, "\n")
}
