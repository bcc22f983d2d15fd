package system

import (
	"fmt"

	"github.com/julianstephens/remind/internal/cli"
	"github.com/julianstephens/remind/internal/notifier"
	"github.com/julianstephens/remind/internal/sweep"
)

type CheckCmd struct {
	DryRun bool `help:"Print what would be alerted without sending anything or recording notification state." name:"dry-run"`
}

// noopNotifier satisfies the sweep interface for read-only evaluation.
type noopNotifier struct{}

func (noopNotifier) Notify(title, body string) error { return nil }

func (c *CheckCmd) Run(ctx *cli.Context) error {
	if c.DryRun {
		coordinator := sweep.New(ctx.Store, noopNotifier{})
		buckets, err := coordinator.DueBuckets()
		if err != nil {
			return err
		}

		for _, item := range buckets.TimedToday {
			fmt.Printf("timed alert pending: %s at %s\n", item.Title, item.Time)
		}
		if digest := buckets.Digest(); len(digest) > 0 {
			title, body := sweep.FormatDigest(digest, nil)
			fmt.Printf("--- %s ---\n%s\n", title, body)
		}
		if buckets.Len() == 0 {
			fmt.Println("Nothing due")
		}
		return nil
	}

	coordinator := sweep.New(ctx.Store, notifier.New())
	coordinator.CheckReminders()
	fmt.Println("✓ Sweep complete")
	return nil
}
