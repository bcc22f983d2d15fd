package reminders

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/remind/internal/cli"
	"github.com/julianstephens/remind/internal/constants"
	"github.com/julianstephens/remind/internal/models"
	"github.com/julianstephens/remind/internal/utils"
)

type AddCmd struct {
	Title     string `arg:"" help:"Reminder title."`
	Date      string `help:"Date (YYYY-MM-DD). Defaults to today."`
	EndDate   string `help:"End date for a multi-day span (YYYY-MM-DD)." name:"end-date"`
	Time      string `help:"Time of day (HH:MM). Omit for an all-day reminder."`
	EndTime   string `help:"End time (HH:MM)." name:"end-time"`
	Note      string `help:"Free-form note."`
	Priority  string `help:"Priority (none|low|medium|high)." default:"none"`
	Category  string `help:"Category ID."`
	Repeat    string `help:"Repeat frequency (daily|weekly|monthly|yearly)."`
	Every     int    `help:"Repeat every N days/weeks/months/years." default:"1"`
	Weekdays  string `help:"Comma-separated weekdays for weekly repeats (e.g. mon,wed,fri)."`
	MonthDays string `help:"Comma-separated days of month for monthly repeats (e.g. 1,15)." name:"month-days"`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		date, err = utils.GetTodayFromSettings(settings)
		if err != nil {
			return err
		}
	}

	r := models.Reminder{
		ID:         uuid.New().String(),
		Title:      c.Title,
		Note:       c.Note,
		Date:       date,
		EndDate:    c.EndDate,
		Time:       c.Time,
		EndTime:    c.EndTime,
		Priority:   constants.Priority(c.Priority),
		CategoryID: c.Category,
		CreatedAt:  time.Now(),
	}

	if c.Repeat != "" {
		rule := &models.RepeatRule{
			Enabled:  true,
			Type:     constants.RepeatType(c.Repeat),
			Interval: c.Every,
		}
		if !rule.IsUsable() {
			return fmt.Errorf("invalid repeat rule: %s every %d", c.Repeat, c.Every)
		}
		if c.Weekdays != "" {
			if rule.Type != constants.RepeatWeekly {
				return fmt.Errorf("--weekdays only applies to weekly repeats")
			}
			weekdays, err := cli.ParseWeekdays(c.Weekdays)
			if err != nil {
				return err
			}
			rule.WeekdayMask = weekdays
		}
		if c.MonthDays != "" {
			if rule.Type != constants.RepeatMonthly {
				return fmt.Errorf("--month-days only applies to monthly repeats")
			}
			days, err := cli.ParseMonthDays(c.MonthDays)
			if err != nil {
				return err
			}
			rule.MonthDays = days
		}
		r.Repeat = rule
	}

	if err := r.Validate(); err != nil {
		return err
	}

	if c.Category != "" {
		if _, err := ctx.Store.GetCategory(c.Category); err != nil {
			return fmt.Errorf("unknown category %s: %w", c.Category, err)
		}
	}

	if err := ctx.Store.AddReminder(r); err != nil {
		return fmt.Errorf("failed to add reminder: %w", err)
	}

	fmt.Printf("✓ Reminder added: %s on %s", r.Title, r.Date)
	if r.Time != "" {
		fmt.Printf(" at %s", r.Time)
	}
	if r.Repeat != nil {
		fmt.Printf(" (%s)", cli.FormatRepeat(r.Repeat))
	}
	fmt.Println()
	fmt.Printf("  ID: %s\n", r.ID)

	return nil
}
