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

func (s *Store) AddCategory(c models.Category) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize category: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO categories (id, payload) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET payload = excluded.payload",
		c.ID, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to add category: %w", err)
	}
	return nil
}

func (s *Store) GetCategory(id string) (models.Category, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM categories WHERE id = ?", id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, fmt.Errorf("%w: category %s", storage.ErrNotFound, id)
		}
		return models.Category{}, fmt.Errorf("failed to get category: %w", err)
	}

	var c models.Category
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return models.Category{}, fmt.Errorf("%w: category %s: %v", storage.ErrCorruptData, id, err)
	}
	return c, nil
}

func (s *Store) GetAllCategories() ([]models.Category, error) {
	rows, err := s.db.Query("SELECT id, payload FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		var c models.Category
		if err := json.Unmarshal([]byte(payload), &c); err != nil {
			logger.Warn("Skipping malformed category record", "id", id, "error", err)
			continue
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) UpdateCategory(c models.Category) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize category: %w", err)
	}

	res, err := s.db.Exec("UPDATE categories SET payload = ? WHERE id = ?", string(payload), c.ID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: category %s", storage.ErrNotFound, c.ID)
	}
	return nil
}

func (s *Store) DeleteCategory(id string) error {
	res, err := s.db.Exec("DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: category %s", storage.ErrNotFound, id)
	}
	return nil
}
