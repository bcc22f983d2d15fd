package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/remind/internal/logger"
	"github.com/julianstephens/remind/internal/models"
	"github.com/julianstephens/remind/internal/storage"
)

func (s *Store) AddReminder(r models.Reminder) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to serialize reminder: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO reminders (id, payload) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET payload = excluded.payload",
		r.ID, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to add reminder: %w", err)
	}
	return nil
}

func (s *Store) GetReminder(id string) (models.Reminder, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM reminders WHERE id = ?", id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reminder{}, fmt.Errorf("%w: reminder %s", storage.ErrNotFound, id)
		}
		return models.Reminder{}, fmt.Errorf("failed to get reminder: %w", err)
	}

	var r models.Reminder
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return models.Reminder{}, fmt.Errorf("%w: reminder %s: %v", storage.ErrCorruptData, id, err)
	}
	return r, nil
}

func (s *Store) GetAllReminders() (map[string]models.Reminder, error) {
	rows, err := s.db.Query("SELECT id, payload FROM reminders")
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	out := make(map[string]models.Reminder)
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan reminder row: %w", err)
		}
		var r models.Reminder
		if err := json.Unmarshal([]byte(payload), &r); err != nil {
			logger.Warn("Skipping malformed reminder record", "id", id, "error", err)
			continue
		}
		out[id] = r
	}
	return out, rows.Err()
}

func (s *Store) UpdateReminder(r models.Reminder) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to serialize reminder: %w", err)
	}

	res, err := s.db.Exec("UPDATE reminders SET payload = ? WHERE id = ?", string(payload), r.ID)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: reminder %s", storage.ErrNotFound, r.ID)
	}
	return nil
}

func (s *Store) DeleteReminder(id string) error {
	res, err := s.db.Exec("DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: reminder %s", storage.ErrNotFound, id)
	}
	return nil
}
