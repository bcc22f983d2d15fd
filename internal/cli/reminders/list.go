package reminders

import (
	"fmt"
	"sort"

	"github.com/julianstephens/remind/internal/cli"
	"github.com/julianstephens/remind/internal/notifier"
	"github.com/julianstephens/remind/internal/sweep"
)

type ListCmd struct {
	All     bool `help:"Show every reminder (including future and completed) instead of the due view."`
	ShowIDs bool `help:"Show reminder IDs." name:"show-ids"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	categoryNames, err := categoryNameMap(ctx)
	if err != nil {
		return err
	}

	if !c.All {
		coordinator := sweep.New(ctx.Store, notifier.New())
		buckets, err := coordinator.DueBuckets()
		if err != nil {
			return fmt.Errorf("failed to classify reminders: %w", err)
		}
		fmt.Println(cli.RenderBuckets(buckets, categoryNames))
		return nil
	}

	reminders, err := ctx.Store.GetAllReminders()
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}
	if len(reminders) == 0 {
		fmt.Println("No reminders found")
		return nil
	}

	ids := make([]string, 0, len(reminders))
	for id := range reminders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := reminders[ids[i]], reminders[ids[j]]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Title < b.Title
	})

	for _, id := range ids {
		r := reminders[id]

		if r.Completed {
			fmt.Println(cli.RenderDone(r.Title))
		} else {
			line := fmt.Sprintf("  %s - %s", r.Date, r.Title)
			if r.Time != "" {
				line += " at " + r.Time
			}
			if r.Repeat != nil {
				line += " (" + cli.FormatRepeat(r.Repeat) + ")"
			}
			if name := categoryNames[r.CategoryID]; name != "" {
				line += " [" + name + "]"
			}
			fmt.Println(line)
		}

		if c.ShowIDs {
			fmt.Printf("      ID: %s\n", r.ID)
		}
	}

	return nil
}

func categoryNameMap(ctx *cli.Context) (map[string]string, error) {
	names := make(map[string]string)
	categories, err := ctx.Store.GetAllCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}
