package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/remind/internal/constants"
	"github.com/julianstephens/remind/internal/logger"
	"github.com/julianstephens/remind/internal/models"
)

// Document is the on-disk shape of the JSON store: a single record-of-records
// file holding every reminder, category, and the daily notification log.
type Document struct {
	Version    int                        `json:"version"`
	Settings   models.Settings            `json:"settings"`
	Reminders  map[string]models.Reminder `json:"reminders"`
	Categories map[string]models.Category `json:"categories"`
	NotifyLog  map[string]bool            `json:"notify_log"` // day -> digest already sent
}

// rawDocument mirrors Document with per-record raw payloads so a single
// malformed record can be skipped without discarding the rest of the file. The
// code/msg fields detect an API-error payload written where the document
// should be, which reads as valid JSON but carries no data.
type rawDocument struct {
	Version    int                        `json:"version"`
	Settings   models.Settings            `json:"settings"`
	Reminders  map[string]json.RawMessage `json:"reminders"`
	Categories map[string]json.RawMessage `json:"categories"`
	NotifyLog  map[string]bool            `json:"notify_log"`

	Code *int   `json:"code,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

type JSONStore struct {
	path string
	doc  *Document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

// DefaultSettings returns the settings written into a freshly initialized or
// reset store.
func DefaultSettings() models.Settings {
	return models.Settings{
		NotificationsEnabled:  constants.DefaultNotificationsEnabled,
		QuietHoursEnd:         constants.DefaultQuietHoursEnd,
		CheckIntervalSec:      constants.DefaultCheckIntervalSec,
		NotifyAnchorInstances: constants.DefaultNotifyAnchorInstances,
		Timezone:              constants.DefaultTimezone,
	}
}

func emptyDocument() *Document {
	return &Document{
		Version:    1,
		Settings:   DefaultSettings(),
		Reminders:  make(map[string]models.Reminder),
		Categories: make(map[string]models.Category),
		NotifyLog:  make(map[string]bool),
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = emptyDocument()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	// A persisted error payload ({"code":...,"msg":...}) parses fine but is
	// not a document.
	if raw.Code != nil && raw.Reminders == nil {
		return fmt.Errorf("%w: error payload in place of document (code=%d msg=%q)", ErrCorruptData, *raw.Code, raw.Msg)
	}

	doc := emptyDocument()
	doc.Version = raw.Version
	if raw.Settings != (models.Settings{}) {
		doc.Settings = raw.Settings
	}
	if raw.NotifyLog != nil {
		doc.NotifyLog = raw.NotifyLog
	}

	// Decode records one by one; a malformed record is skipped with a log line
	// instead of poisoning the whole store.
	for id, payload := range raw.Reminders {
		var r models.Reminder
		if err := json.Unmarshal(payload, &r); err != nil {
			logger.Warn("Skipping malformed reminder record", "id", id, "error", err)
			continue
		}
		if r.ID == "" {
			r.ID = id
		}
		doc.Reminders[id] = r
	}
	for id, payload := range raw.Categories {
		var c models.Category
		if err := json.Unmarshal(payload, &c); err != nil {
			logger.Warn("Skipping malformed category record", "id", id, "error", err)
			continue
		}
		if c.ID == "" {
			c.ID = id
		}
		doc.Categories[id] = c
	}

	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// Reset replaces the store with an empty document. Called after Load reports
// ErrCorruptData so a broken file heals instead of wedging every sweep.
func (s *JSONStore) Reset() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	s.doc = emptyDocument()
	return s.save()
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.doc == nil {
		return models.Settings{}, ErrNotInitialized
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.doc == nil {
		return ErrNotInitialized
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) AddReminder(r models.Reminder) error {
	if s.doc == nil {
		return ErrNotInitialized
	}

	s.doc.Reminders[r.ID] = r
	return s.save()
}

func (s *JSONStore) GetReminder(id string) (models.Reminder, error) {
	if s.doc == nil {
		return models.Reminder{}, ErrNotInitialized
	}

	r, ok := s.doc.Reminders[id]
	if !ok {
		return models.Reminder{}, fmt.Errorf("%w: reminder %s", ErrNotFound, id)
	}

	return r, nil
}

func (s *JSONStore) GetAllReminders() (map[string]models.Reminder, error) {
	if s.doc == nil {
		return nil, ErrNotInitialized
	}

	out := make(map[string]models.Reminder, len(s.doc.Reminders))
	for id, r := range s.doc.Reminders {
		out[id] = r
	}

	return out, nil
}

func (s *JSONStore) UpdateReminder(r models.Reminder) error {
	if s.doc == nil {
		return ErrNotInitialized
	}

	if _, ok := s.doc.Reminders[r.ID]; !ok {
		return fmt.Errorf("%w: reminder %s", ErrNotFound, r.ID)
	}

	s.doc.Reminders[r.ID] = r
	return s.save()
}

func (s *JSONStore) DeleteReminder(id string) error {
	if s.doc == nil {
		return ErrNotInitialized
	}

	if _, ok := s.doc.Reminders[id]; !ok {
		return fmt.Errorf("%w: reminder %s", ErrNotFound, id)
	}

	delete(s.doc.Reminders, id)
	return s.save()
}

func (s *JSONStore) AddCategory(c models.Category) error {
	if s.doc == nil {
		return ErrNotInitialized
	}

	s.doc.Categories[c.ID] = c
	return s.save()
}

func (s *JSONStore) GetCategory(id string) (models.Category, error) {
	if s.doc == nil {
		return models.Category{}, ErrNotInitialized
	}

	c, ok := s.doc.Categories[id]
	if !ok {
		return models.Category{}, fmt.Errorf("%w: category %s", ErrNotFound, id)
	}

	return c, nil
}

func (s *JSONStore) GetAllCategories() ([]models.Category, error) {
	if s.doc == nil {
		return nil, ErrNotInitialized
	}

	categories := make([]models.Category, 0, len(s.doc.Categories))
	for _, c := range s.doc.Categories {
		categories = append(categories, c)
	}

	return categories, nil
}

func (s *JSONStore) UpdateCategory(c models.Category) error {
	if s.doc == nil {
		return ErrNotInitialized
	}

	if _, ok := s.doc.Categories[c.ID]; !ok {
		return fmt.Errorf("%w: category %s", ErrNotFound, c.ID)
	}

	s.doc.Categories[c.ID] = c
	return s.save()
}

func (s *JSONStore) DeleteCategory(id string) error {
	if s.doc == nil {
		return ErrNotInitialized
	}

	if _, ok := s.doc.Categories[id]; !ok {
		return fmt.Errorf("%w: category %s", ErrNotFound, id)
	}

	delete(s.doc.Categories, id)
	return s.save()
}

func (s *JSONStore) HasNotifiedToday(day string) (bool, error) {
	if s.doc == nil {
		return false, ErrNotInitialized
	}
	return s.doc.NotifyLog[day], nil
}

func (s *JSONStore) MarkNotifiedToday(day string) error {
	if s.doc == nil {
		return ErrNotInitialized
	}
	if s.doc.NotifyLog[day] {
		return nil
	}
	s.doc.NotifyLog[day] = true
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
