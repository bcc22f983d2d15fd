package system

import (
	"fmt"

	"github.com/julianstephens/remind/internal/cli"
	"github.com/julianstephens/remind/internal/sweep"
)

// BadgeCmd prints the number of currently due reminders, for embedding in
// status bars and prompts.
type BadgeCmd struct{}

func (c *BadgeCmd) Run(ctx *cli.Context) error {
	coordinator := sweep.New(ctx.Store, noopNotifier{})
	count, err := coordinator.BadgeCount()
	if err != nil {
		return err
	}
	fmt.Println(count)
	return nil
}
