package reminders

import (
	"fmt"

	"github.com/julianstephens/remind/internal/cli"
	"github.com/julianstephens/remind/internal/utils"
)

type CompleteCmd struct {
	ID       string `arg:"" help:"Reminder ID."`
	Instance string `help:"Complete only the occurrence on this date (YYYY-MM-DD, recurring reminders)."`
	Undo     bool   `help:"Mark as not completed instead."`
}

func (c *CompleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	r, err := ctx.Store.GetReminder(c.ID)
	if err != nil {
		return err
	}

	if c.Instance != "" {
		if !utils.ValidateDateFormat(c.Instance) {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Instance)
		}
		if r.Repeat == nil {
			return fmt.Errorf("reminder %s does not repeat; omit --instance", c.ID)
		}

		if c.Undo {
			kept := r.Repeat.CompletedInstances[:0]
			for _, d := range r.Repeat.CompletedInstances {
				if d != c.Instance {
					kept = append(kept, d)
				}
			}
			r.Repeat.CompletedInstances = kept
		} else if !r.Repeat.IsInstanceCompleted(c.Instance) {
			r.Repeat.CompletedInstances = append(r.Repeat.CompletedInstances, c.Instance)
		}
	} else {
		r.Completed = !c.Undo
	}

	if err := ctx.Store.UpdateReminder(r); err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	verb := "completed"
	if c.Undo {
		verb = "reopened"
	}
	if c.Instance != "" {
		fmt.Printf("✓ Occurrence %s of %q %s\n", c.Instance, r.Title, verb)
	} else {
		fmt.Printf("✓ Reminder %q %s\n", r.Title, verb)
	}

	return nil
}
