package reminders

import (
	"fmt"

	"github.com/julianstephens/remind/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Reminder ID."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	r, err := ctx.Store.GetReminder(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteReminder(c.ID); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	fmt.Printf("✓ Reminder %q deleted\n", r.Title)
	return nil
}
