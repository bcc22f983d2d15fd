package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/remind/internal/models"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reminders.json")
	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return s
}

func TestJSONStore_InitAndDefaults(t *testing.T) {
	s := newTestStore(t)

	settings, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if !settings.NotificationsEnabled {
		t.Errorf("default NotificationsEnabled = false, want true")
	}
	if settings.QuietHoursEnd != "06:00" {
		t.Errorf("default QuietHoursEnd = %q, want 06:00", settings.QuietHoursEnd)
	}

	if err := s.Init(); err == nil {
		t.Errorf("second Init() succeeded, want already-initialized error")
	}
}

func TestJSONStore_LoadUninitialized(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "reminders.json"))
	if err := s.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
}

func TestJSONStore_ReminderRoundtrip(t *testing.T) {
	s := newTestStore(t)

	r := models.Reminder{
		ID:    "rem-1",
		Title: "Water plants",
		Date:  "2024-05-05",
		Time:  "09:00",
		Repeat: &models.RepeatRule{
			Enabled:           true,
			Type:              "weekly",
			NotifiedInstances: []string{"2024-05-05_09:00"},
		},
	}
	if err := s.AddReminder(r); err != nil {
		t.Fatalf("AddReminder() failed: %v", err)
	}
	if err := s.AddCategory(models.Category{ID: "cat-1", Name: "Garden"}); err != nil {
		t.Fatalf("AddCategory() failed: %v", err)
	}
	if err := s.MarkNotifiedToday("2024-05-05"); err != nil {
		t.Fatalf("MarkNotifiedToday() failed: %v", err)
	}

	// A fresh store over the same file sees everything.
	reloaded := NewJSONStore(s.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	got, err := reloaded.GetReminder("rem-1")
	if err != nil {
		t.Fatalf("GetReminder() failed: %v", err)
	}
	if got.Title != "Water plants" || got.Time != "09:00" {
		t.Errorf("reloaded reminder = %+v", got)
	}
	if got.Repeat == nil || len(got.Repeat.NotifiedInstances) != 1 {
		t.Errorf("notified instances did not survive reload: %+v", got.Repeat)
	}

	if _, err := reloaded.GetCategory("cat-1"); err != nil {
		t.Errorf("GetCategory() failed after reload: %v", err)
	}

	notified, err := reloaded.HasNotifiedToday("2024-05-05")
	if err != nil {
		t.Fatalf("HasNotifiedToday() failed: %v", err)
	}
	if !notified {
		t.Errorf("digest marker did not survive reload")
	}
	if notified, _ := reloaded.HasNotifiedToday("2024-05-06"); notified {
		t.Errorf("HasNotifiedToday() true for unmarked day")
	}
}

func TestJSONStore_UpdateAndDelete(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpdateReminder(models.Reminder{ID: "missing", Date: "2024-05-05"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateReminder(missing) error = %v, want ErrNotFound", err)
	}

	r := models.Reminder{ID: "rem-1", Title: "old", Date: "2024-05-05"}
	if err := s.AddReminder(r); err != nil {
		t.Fatalf("AddReminder() failed: %v", err)
	}

	r.Title = "new"
	if err := s.UpdateReminder(r); err != nil {
		t.Fatalf("UpdateReminder() failed: %v", err)
	}
	got, _ := s.GetReminder("rem-1")
	if got.Title != "new" {
		t.Errorf("updated title = %q, want new", got.Title)
	}

	if err := s.DeleteReminder("rem-1"); err != nil {
		t.Fatalf("DeleteReminder() failed: %v", err)
	}
	if _, err := s.GetReminder("rem-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetReminder(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestJSONStore_CorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not json",
			content: "{{{ definitely not json",
		},
		{
			name:    "error payload instead of document",
			content: `{"code": -1, "msg": "notebook not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "reminders.json")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}

			s := NewJSONStore(path)
			if err := s.Load(); !errors.Is(err, ErrCorruptData) {
				t.Fatalf("Load() error = %v, want ErrCorruptData", err)
			}

			// Reset heals the store.
			if err := s.Reset(); err != nil {
				t.Fatalf("Reset() failed: %v", err)
			}
			if err := s.Load(); err != nil {
				t.Fatalf("Load() after Reset() failed: %v", err)
			}
			all, err := s.GetAllReminders()
			if err != nil {
				t.Fatalf("GetAllReminders() failed: %v", err)
			}
			if len(all) != 0 {
				t.Errorf("reset store has %d reminders, want 0", len(all))
			}
		})
	}
}

func TestJSONStore_SkipsMalformedRecords(t *testing.T) {
	content := `{
		"version": 1,
		"reminders": {
			"good": {"id": "good", "title": "ok", "date": "2024-05-05"},
			"bad": ["this", "is", "not", "a", "reminder"]
		}
	}`
	path := filepath.Join(t.TempDir(), "reminders.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	s := NewJSONStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
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
