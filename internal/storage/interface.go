package storage

import "github.com/julianstephens/remind/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Reminders
	AddReminder(models.Reminder) error
	GetReminder(id string) (models.Reminder, error)
	GetAllReminders() (map[string]models.Reminder, error)
	UpdateReminder(models.Reminder) error
	DeleteReminder(id string) error

	// Categories
	AddCategory(models.Category) error
	GetCategory(id string) (models.Category, error)
	GetAllCategories() ([]models.Category, error)
	UpdateCategory(models.Category) error
	DeleteCategory(id string) error

	// Daily digest dedup. HasNotifiedToday reports whether the all-day digest
	// already went out on the given day (YYYY-MM-DD).
	HasNotifiedToday(day string) (bool, error)
	MarkNotifiedToday(day string) error

	// Reset replaces the store contents with an empty document carrying default
	// settings. Used to self-heal after ErrCorruptData.
	Reset() error

	// Utils
	GetConfigPath() string
}
