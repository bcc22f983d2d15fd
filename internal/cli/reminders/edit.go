package reminders

import (
	"fmt"

	"github.com/julianstephens/remind/internal/cli"
	"github.com/julianstephens/remind/internal/constants"
	"github.com/julianstephens/remind/internal/models"
	"github.com/julianstephens/remind/internal/utils"
)

type EditCmd struct {
	ID       string `arg:"" help:"Reminder ID."`
	Title    string `help:"New title."`
	Date     string `help:"New date (YYYY-MM-DD)."`
	EndDate  string `help:"New end date (YYYY-MM-DD). Pass 'none' to clear." name:"end-date"`
	Time     string `help:"New time (HH:MM). Pass 'none' to make all-day."`
	EndTime  string `help:"New end time (HH:MM). Pass 'none' to clear." name:"end-time"`
	Note     string `help:"New note. Pass 'none' to clear."`
	Instance string `help:"Attach the note to a single occurrence date (YYYY-MM-DD) instead of the whole series."`
	Priority string `help:"New priority (none|low|medium|high)."`
	Category string `help:"New category ID. Pass 'none' to clear."`
}

// clearable maps the sentinel "none" to an empty value so optional fields can
// be unset from the command line.
func clearable(v string) string {
	if v == "none" {
		return ""
	}
	return v
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	r, err := ctx.Store.GetReminder(c.ID)
	if err != nil {
		return err
	}

	if c.Instance != "" {
		return c.editInstanceNote(ctx, r)
	}

	if c.Title != "" {
		r.Title = c.Title
	}
	if c.Date != "" {
		r.Date = c.Date
	}
	if c.EndDate != "" {
		r.EndDate = clearable(c.EndDate)
	}
	if c.Time != "" {
		r.Time = clearable(c.Time)
	}
	if c.EndTime != "" {
		r.EndTime = clearable(c.EndTime)
	}
	if c.Note != "" {
		r.Note = clearable(c.Note)
	}
	if c.Priority != "" {
		r.Priority = constants.Priority(c.Priority)
	}
	if c.Category != "" {
		id := clearable(c.Category)
		if id != "" {
			if _, err := ctx.Store.GetCategory(id); err != nil {
				return fmt.Errorf("unknown category %s: %w", id, err)
			}
		}
		r.CategoryID = id
	}

	if err := r.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.UpdateReminder(r); err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	fmt.Printf("✓ Reminder %q updated\n", r.Title)
	return nil
}

func (c *EditCmd) editInstanceNote(ctx *cli.Context, r models.Reminder) error {
	if r.Repeat == nil {
		return fmt.Errorf("reminder %s does not repeat; --instance needs a recurring reminder", c.ID)
	}
	if c.Note == "" {
		return fmt.Errorf("--instance requires --note")
	}
	if !utils.ValidateDateFormat(c.Instance) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Instance)
	}

	if r.Repeat.InstanceModifications == nil {
		r.Repeat.InstanceModifications = make(map[string]models.InstanceModification)
	}
	note := clearable(c.Note)
	if note == "" {
		delete(r.Repeat.InstanceModifications, c.Instance)
	} else {
		r.Repeat.InstanceModifications[c.Instance] = models.InstanceModification{Note: note}
	}

	if err := ctx.Store.UpdateReminder(r); err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	fmt.Printf("✓ Note for occurrence %s of %q updated\n", c.Instance, r.Title)
	return nil
}
