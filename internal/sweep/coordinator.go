package sweep

import (
	"context"
	"errors"
	"time"

	"github.com/julianstephens/remind/internal/classify"
	"github.com/julianstephens/remind/internal/constants"
	"github.com/julianstephens/remind/internal/logger"
	"github.com/julianstephens/remind/internal/models"
	"github.com/julianstephens/remind/internal/notify"
	"github.com/julianstephens/remind/internal/recurrence"
	"github.com/julianstephens/remind/internal/storage"
	"github.com/julianstephens/remind/internal/utils"
)

// State names one phase of a sweep cycle. A cycle always ends back at Idle,
// whether it completed or bailed out.
type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateExpanding  State = "expanding"
	StateNotifying  State = "notifying"
	StatePersisting State = "persisting"
)

// Clock supplies the current wall-clock time. Injected so tests can simulate
// ticks without real timers.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Notifier delivers a single desktop alert.
type Notifier interface {
	Notify(title, body string) error
}

// Coordinator drives the periodic notification sweep. All sweep failures are
// logged and swallowed so one bad record or flaky store can never kill the
// timer loop.
type Coordinator struct {
	store    storage.Provider
	notifier Notifier
	clock    Clock
	state    State
}

type Option func(*Coordinator)

// WithClock replaces the wall clock, for tests.
func WithClock(c Clock) Option {
	return func(co *Coordinator) {
		co.clock = c
	}
}

func New(store storage.Provider, notifier Notifier, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:    store,
		notifier: notifier,
		clock:    systemClock{},
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the coordinator's current phase.
func (c *Coordinator) State() State {
	return c.state
}

// Run executes the sweep loop: one sweep shortly after start, then one per
// interval until the context is canceled. An interval of zero falls back to
// the default.
func (c *Coordinator) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = constants.DefaultCheckInterval
	}

	select {
	case <-time.After(constants.SweepStartupDelay):
		c.CheckReminders()
	case <-ctx.Done():
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.CheckReminders()
		case <-ctx.Done():
			return
		}
	}
}

// CheckReminders runs one full sweep cycle. It never returns an error:
// anything that goes wrong is logged and the coordinator settles back to Idle.
func (c *Coordinator) CheckReminders() {
	defer func() { c.state = StateIdle }()

	c.state = StateLoading

	if err := c.store.Load(); err != nil {
		if errors.Is(err, storage.ErrCorruptData) {
			// Self-heal: replace the broken document and skip this cycle.
			logger.Warn("Reminder store is corrupt, resetting", "error", err)
			if resetErr := c.store.Reset(); resetErr != nil {
				logger.Error("Failed to reset corrupt store", "error", resetErr)
			}
			return
		}
		logger.Error("Failed to load reminder store", "error", err)
		return
	}

	settings, err := c.store.GetSettings()
	if err != nil {
		logger.Warn("Failed to read settings, using defaults", "error", err)
		settings = storage.DefaultSettings()
	}
	if !settings.NotificationsEnabled {
		return
	}

	now, err := c.localNow(settings)
	if err != nil {
		logger.Error("Failed to resolve local time", "error", err)
		return
	}
	today := now.Format(constants.DateFormat)
	currentTime := now.Format(constants.TimeFormat)

	// Quiet hours: no alerts before the configured morning threshold.
	if inQuietHours(currentTime, settings.QuietHoursEnd) {
		return
	}

	reminders, err := c.store.GetAllReminders()
	if err != nil {
		if errors.Is(err, storage.ErrCorruptData) {
			logger.Warn("Reminder store is corrupt, resetting", "error", err)
			if resetErr := c.store.Reset(); resetErr != nil {
				logger.Error("Failed to reset corrupt store", "error", resetErr)
			}
		} else {
			logger.Error("Failed to read reminders", "error", err)
		}
		return
	}

	c.state = StateExpanding
	items, byParent := c.expand(reminders, today, settings)
	buckets := classify.Classify(items, today)

	c.state = StateNotifying
	changed := c.notifyTimed(buckets, byParent, today, currentTime)
	c.notifyDigest(buckets, today)

	c.state = StatePersisting
	for id := range changed {
		if err := c.store.UpdateReminder(*byParent[id]); err != nil {
			// Non-fatal: at worst the item re-notifies once next cycle.
			logger.Error("Failed to persist notification state", "id", id, "error", err)
		}
	}
}

func (c *Coordinator) localNow(settings models.Settings) (time.Time, error) {
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return time.Time{}, err
	}
	return c.clock.Now().In(loc), nil
}

func inQuietHours(currentTime, quietEnd string) bool {
	if quietEnd == "" {
		return false
	}
	nowMin, err := utils.ParseTimeToMinutes(currentTime)
	if err != nil {
		return false
	}
	endMin, err := utils.ParseTimeToMinutes(quietEnd)
	if err != nil {
		return false
	}
	return nowMin < endMin
}

// expand builds the unified item set for one sweep: every valid non-completed
// reminder plus today's materialized occurrences of its repeat rule. byParent
// maps reminder IDs to the mutable copies whose notification state the
// notify phase updates.
func (c *Coordinator) expand(reminders map[string]models.Reminder, today string, settings models.Settings) ([]classify.Item, map[string]*models.Reminder) {
	var items []classify.Item
	byParent := make(map[string]*models.Reminder, len(reminders))

	for id, reminder := range reminders {
		r := reminder
		if err := r.Validate(); err != nil {
			logger.Warn("Skipping invalid reminder", "id", id, "error", err)
			continue
		}
		if r.Completed {
			continue
		}
		byParent[r.ID] = &r

		if !r.Repeats() {
			items = append(items, classify.FromReminder(r, today))
			continue
		}

		// The anchor-day record of a recurring reminder is completed through
		// CompletedInstances, not the parent flag.
		if !r.Repeat.IsInstanceCompleted(r.Date) {
			items = append(items, classify.FromReminder(r, today))
		}
		var occs []models.Occurrence
		if settings.NotifyAnchorInstances {
			occs = recurrence.Expand(r, today, today)
		} else {
			occs = recurrence.ExpandForNotification(r, today, today)
		}
		for _, occ := range occs {
			if occ.Completed {
				continue
			}
			items = append(items, classify.FromOccurrence(occ, r, today))
		}
	}

	return items, byParent
}

// notifyTimed fires the per-occurrence timed alerts and returns the set of
// reminder IDs whose notification state changed. The dedup flag is only set
// after a successful delivery so a failed alert retries next tick.
func (c *Coordinator) notifyTimed(buckets classify.Buckets, byParent map[string]*models.Reminder, today, currentTime string) map[string]bool {
	changed := make(map[string]bool)

	for _, item := range buckets.TimedToday {
		parent := byParent[item.OriginalID]
		if parent == nil {
			continue
		}

		var alreadyNotified bool
		key := notify.InstanceKey{Date: item.Date, Time: item.Time}
		if item.IsRepeatInstance {
			alreadyNotified = notify.HasNotified(parent.Repeat, key)
		} else {
			alreadyNotified = parent.Notified
		}

		if !notify.ShouldNotifyNow(item.Date, item.Time, alreadyNotified, today, currentTime) {
			continue
		}

		if err := c.notifier.Notify(item.Title, timedAlertBody(item)); err != nil {
			logger.Error("Failed to deliver notification", "id", item.ID, "error", err)
			continue
		}

		if item.IsRepeatInstance {
			if notify.MarkNotified(parent.Repeat, key) {
				changed[parent.ID] = true
			}
		} else {
			if notify.MarkReminderNotified(parent) {
				changed[parent.ID] = true
			}
		}
	}

	return changed
}

// notifyDigest fires the once-per-day digest for the remaining due items. The
// day is marked only after a successful delivery.
func (c *Coordinator) notifyDigest(buckets classify.Buckets, today string) {
	items := buckets.Digest()
	if len(items) == 0 {
		return
	}

	alreadySent, err := c.store.HasNotifiedToday(today)
	if err != nil {
		logger.Error("Failed to check digest state", "error", err)
		return
	}
	if alreadySent {
		return
	}

	categories := c.categoryNames()
	title, body := FormatDigest(items, categories)
	if err := c.notifier.Notify(title, body); err != nil {
		logger.Error("Failed to deliver digest", "error", err)
		return
	}

	if err := c.store.MarkNotifiedToday(today); err != nil {
		// Non-fatal: worst case the digest repeats once next cycle.
		logger.Error("Failed to mark digest sent", "error", err)
	}
}

func (c *Coordinator) categoryNames() map[string]string {
	names := make(map[string]string)
	categories, err := c.store.GetAllCategories()
	if err != nil {
		logger.Warn("Failed to load categories for digest", "error", err)
		return names
	}
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}
	return names
}

// DueBuckets loads the store and classifies everything due right now, in the
// exact presentation order. Used by the list and badge commands.
func (c *Coordinator) DueBuckets() (classify.Buckets, error) {
	if err := c.store.Load(); err != nil {
		return classify.Buckets{}, err
	}

	settings, err := c.store.GetSettings()
	if err != nil {
		settings = storage.DefaultSettings()
	}

	now, err := c.localNow(settings)
	if err != nil {
		return classify.Buckets{}, err
	}
	today := now.Format(constants.DateFormat)

	reminders, err := c.store.GetAllReminders()
	if err != nil {
		return classify.Buckets{}, err
	}

	items, _ := c.expand(reminders, today, settings)
	return classify.Classify(items, today), nil
}

// BadgeCount returns the number of due, non-completed items across all
// buckets.
func (c *Coordinator) BadgeCount() (int, error) {
	buckets, err := c.DueBuckets()
	if err != nil {
		return 0, err
	}
	return buckets.Len(), nil
}
