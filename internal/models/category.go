package models

import "fmt"

// Category is a user-defined grouping for reminders. Digest lines carry the
// category name so a notification reads "Standup [Work]".
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

func (c *Category) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("category id cannot be empty")
	}
	if c.Name == "" {
		return fmt.Errorf("category name cannot be empty")
	}
	return nil
}
