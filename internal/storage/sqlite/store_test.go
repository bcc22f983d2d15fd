package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/remind/internal/models"
	"github.com/julianstephens/remind/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "reminders.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_InitSeedsDefaults(t *testing.T) {
	s := newTestStore(t)

	settings, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if !settings.NotificationsEnabled || settings.QuietHoursEnd != "06:00" {
		t.Errorf("default settings = %+v", settings)
	}
}

func TestStore_LoadUninitialized(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "reminders.db"))
	if err := s.Load(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
}

func TestStore_ReminderCRUD(t *testing.T) {
	s := newTestStore(t)

	r := models.Reminder{
		ID:    "rem-1",
		Title: "Water plants",
		Date:  "2024-05-05",
		Time:  "09:00",
		Repeat: &models.RepeatRule{
			Enabled:  true,
			Type:     "weekly",
			Interval: 1,
		},
	}
	if err := s.AddReminder(r); err != nil {
		t.Fatalf("AddReminder() failed: %v", err)
	}

	got, err := s.GetReminder("rem-1")
	if err != nil {
		t.Fatalf("GetReminder() failed: %v", err)
	}
	if got.Title != "Water plants" || got.Repeat == nil || got.Repeat.Type != "weekly" {
		t.Errorf("roundtripped reminder = %+v", got)
	}

	r.Repeat.NotifiedInstances = append(r.Repeat.NotifiedInstances, "2024-05-05_09:00")
	if err := s.UpdateReminder(r); err != nil {
		t.Fatalf("UpdateReminder() failed: %v", err)
	}
	got, _ = s.GetReminder("rem-1")
	if len(got.Repeat.NotifiedInstances) != 1 {
		t.Errorf("notified instances not persisted: %+v", got.Repeat)
	}

	all, err := s.GetAllReminders()
	if err != nil {
		t.Fatalf("GetAllReminders() failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("GetAllReminders() returned %d records, want 1", len(all))
	}

	if err := s.DeleteReminder("rem-1"); err != nil {
		t.Fatalf("DeleteReminder() failed: %v", err)
	}
	if _, err := s.GetReminder("rem-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetReminder(deleted) error = %v, want ErrNotFound", err)
	}
	if err := s.DeleteReminder("rem-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("DeleteReminder(missing) error = %v, want ErrNotFound", err)
	}
}

func TestStore_NotifyLog(t *testing.T) {
	s := newTestStore(t)

	notified, err := s.HasNotifiedToday("2024-05-05")
	if err != nil {
		t.Fatalf("HasNotifiedToday() failed: %v", err)
	}
	if notified {
		t.Errorf("fresh store reports notified day")
	}

	if err := s.MarkNotifiedToday("2024-05-05"); err != nil {
		t.Fatalf("MarkNotifiedToday() failed: %v", err)
	}
	// Marking twice is a no-op, not an error.
	if err := s.MarkNotifiedToday("2024-05-05"); err != nil {
		t.Fatalf("second MarkNotifiedToday() failed: %v", err)
	}

	notified, _ = s.HasNotifiedToday("2024-05-05")
	if !notified {
		t.Errorf("HasNotifiedToday() = false after marking")
	}
	if notified, _ := s.HasNotifiedToday("2024-05-06"); notified {
		t.Errorf("unmarked day reports notified")
	}
}

func TestStore_Reset(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddReminder(models.Reminder{ID: "rem-1", Date: "2024-05-05"}); err != nil {
		t.Fatalf("AddReminder() failed: %v", err)
	}
	if err := s.MarkNotifiedToday("2024-05-05"); err != nil {
		t.Fatalf("MarkNotifiedToday() failed: %v", err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	all, err := s.GetAllReminders()
	if err != nil {
		t.Fatalf("GetAllReminders() failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("reset store has %d reminders, want 0", len(all))
	}
	if notified, _ := s.HasNotifiedToday("2024-05-05"); notified {
		t.Errorf("notify log survived reset")
	}
	settings, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() after reset failed: %v", err)
	}
	if settings.QuietHoursEnd != "06:00" {
		t.Errorf("reset settings = %+v, want defaults", settings)
	}
}

func TestStore_SkipsMalformedRecords(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddReminder(models.Reminder{ID: "good", Date: "2024-05-05"}); err != nil {
		t.Fatalf("AddReminder() failed: %v", err)
	}
	if _, err := s.db.Exec("INSERT INTO reminders (id, payload) VALUES ('bad', 'not json')"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	all, err := s.GetAllReminders()
	if err != nil {
		t.Fatalf("GetAllReminders() failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("loaded %d reminders, want 1 (malformed record skipped)", len(all))
	}
	if _, ok := all["good"]; !ok {
		t.Errorf("well-formed record was not kept")
	}
}
