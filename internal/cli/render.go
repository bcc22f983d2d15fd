package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/remind/internal/classify"
	"github.com/julianstephens/remind/internal/constants"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)

	priorityStyles = map[constants.Priority]lipgloss.Style{
		constants.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		constants.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		constants.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

// RenderItem renders one classified item as a single display line.
func RenderItem(item classify.Item, categoryNames map[string]string) string {
	var b strings.Builder

	if item.IsOverdue {
		b.WriteString(overdueStyle.Render("!"))
		b.WriteString(" ")
	} else {
		b.WriteString("  ")
	}

	title := item.Title
	if style, ok := priorityStyles[item.Priority]; ok {
		title = style.Render(title)
	}
	b.WriteString(title)

	if item.Time != "" {
		clock := item.Time
		if item.EndTime != "" {
			clock += "-" + item.EndTime
		}
		b.WriteString(" ")
		b.WriteString(timeStyle.Render(clock))
	}

	if item.IsOverdue {
		b.WriteString(" ")
		b.WriteString(overdueStyle.Render("(" + item.Date + ")"))
	} else if item.EndDate != "" {
		b.WriteString(" ")
		b.WriteString(timeStyle.Render("through " + item.EndDate))
	}

	if name := categoryNames[item.CategoryID]; name != "" {
		b.WriteString(" ")
		b.WriteString(categoryStyle.Render("[" + name + "]"))
	}

	return b.String()
}

// RenderBuckets prints the four due buckets in their presentation order,
// omitting empty sections.
func RenderBuckets(buckets classify.Buckets, categoryNames map[string]string) string {
	var b strings.Builder

	sections := []struct {
		name  string
		items []classify.Item
	}{
		{"Overdue", buckets.Overdue},
		{"Today", buckets.TimedToday},
		{"Anytime today", buckets.UntimedToday},
		{"All day", buckets.AllDayToday},
	}

	for _, section := range sections {
		if len(section.items) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headerStyle.Render(section.name))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(RenderItem(item, categoryNames))
			b.WriteString("\n")
		}
	}

	if b.Len() == 0 {
		return "Nothing due right now"
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderDone renders a completed reminder line.
func RenderDone(title string) string {
	return fmt.Sprintf("  %s", doneStyle.Render(title))
}
