package system

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/remind/internal/cli"
	"github.com/julianstephens/remind/internal/utils"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	fmt.Println("Settings:")
	fmt.Printf("  notifications:           %t\n", settings.NotificationsEnabled)
	fmt.Printf("  quiet-hours-end:         %s\n", settings.QuietHoursEnd)
	fmt.Printf("  check-interval:          %ds\n", settings.CheckIntervalSec)
	fmt.Printf("  notify-anchor-instances: %t\n", settings.NotifyAnchorInstances)
	fmt.Printf("  timezone:                %s\n", settings.Timezone)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting name: notifications, quiet-hours-end, check-interval, notify-anchor-instances, timezone." enum:"notifications,quiet-hours-end,check-interval,notify-anchor-instances,timezone"`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	switch c.Key {
	case "notifications":
		enabled, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("notifications must be true or false, got %q", c.Value)
		}
		settings.NotificationsEnabled = enabled
	case "quiet-hours-end":
		if !utils.ValidateTimeFormat(c.Value) {
			return fmt.Errorf("quiet-hours-end must be HH:MM, got %q", c.Value)
		}
		settings.QuietHoursEnd = c.Value
	case "check-interval":
		secs, err := strconv.Atoi(c.Value)
		if err != nil || secs <= 0 {
			return fmt.Errorf("check-interval must be a positive number of seconds, got %q", c.Value)
		}
		settings.CheckIntervalSec = secs
	case "notify-anchor-instances":
		enabled, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("notify-anchor-instances must be true or false, got %q", c.Value)
		}
		settings.NotifyAnchorInstances = enabled
	case "timezone":
		if !utils.ValidateTimezone(c.Value) {
			return fmt.Errorf("unknown timezone %q", c.Value)
		}
		settings.Timezone = c.Value
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("✓ %s set to %s\n", c.Key, c.Value)
	return nil
}
