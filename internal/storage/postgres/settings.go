package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/remind/internal/models"
)

const settingsKey = "settings"

func (s *Store) GetSettings() (models.Settings, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = $1", settingsKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Settings{}, fmt.Errorf("settings not found")
		}
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	var settings models.Settings
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		return models.Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO settings (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		settingsKey, string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (s *Store) HasNotifiedToday(day string) (bool, error) {
	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM notify_log WHERE day = $1", day).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check notify log: %w", err)
	}
	return count > 0, nil
}

func (s *Store) MarkNotifiedToday(day string) error {
	_, err := s.db.Exec("INSERT INTO notify_log (day) VALUES ($1) ON CONFLICT (day) DO NOTHING", day)
	if err != nil {
		return fmt.Errorf("failed to mark notify log: %w", err)
	}
	return nil
}
