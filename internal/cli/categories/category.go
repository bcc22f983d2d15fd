package categories

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/remind/internal/cli"
	"github.com/julianstephens/remind/internal/models"
)

type AddCmd struct {
	Name  string `arg:"" help:"Category name."`
	Color string `help:"Display color (hex or terminal color name)."`
	Icon  string `help:"Display icon."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	category := models.Category{
		ID:    uuid.New().String(),
		Name:  c.Name,
		Color: c.Color,
		Icon:  c.Icon,
	}
	if err := category.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddCategory(category); err != nil {
		return fmt.Errorf("failed to add category: %w", err)
	}

	fmt.Printf("✓ Category added: %s\n", category.Name)
	fmt.Printf("  ID: %s\n", category.ID)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	categories, err := ctx.Store.GetAllCategories()
	if err != nil {
		return fmt.Errorf("failed to get categories: %w", err)
	}
	if len(categories) == 0 {
		fmt.Println("No categories found")
		return nil
	}

	fmt.Println("Categories:")
	for _, category := range categories {
		line := "  " + category.Name
		if category.Icon != "" {
			line = "  " + category.Icon + " " + category.Name
		}
		fmt.Printf("%s (ID: %s)\n", line, category.ID)
	}
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"Category ID."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	category, err := ctx.Store.GetCategory(c.ID)
	if err != nil {
		return err
	}

	// Detach the category from any reminders still pointing at it.
	reminders, err := ctx.Store.GetAllReminders()
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}
	for _, r := range reminders {
		if r.CategoryID == c.ID {
			r.CategoryID = ""
			if err := ctx.Store.UpdateReminder(r); err != nil {
				return fmt.Errorf("failed to detach category from reminder %s: %w", r.ID, err)
			}
		}
	}

	if err := ctx.Store.DeleteCategory(c.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	fmt.Printf("✓ Category %q deleted\n", category.Name)
	return nil
}
