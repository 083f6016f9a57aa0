package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindCategory returns the category id of the most specific rule whose
// pattern appears in the item name, or empty when nothing matches.
func (s *Store) FindCategory(ctx context.Context, itemName string) (string, error) {
	query := `
		SELECT category_id
		FROM category_rules
		WHERE $1 ILIKE '%' || pattern || '%'
		ORDER BY LENGTH(pattern) DESC, created_at DESC
		LIMIT 1
	`

	var categoryID string

	err := s.db.QueryRowContext(ctx, query, itemName).Scan(&categoryID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("finding category rule: %w", err)
	}

	return categoryID, nil
}

func (s *Store) CreateRule(ctx context.Context, pattern, categoryID string) error {
	query := `
		INSERT INTO category_rules (pattern, category_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (pattern) DO UPDATE SET category_id = EXCLUDED.category_id
	`

	_, err := s.db.ExecContext(ctx, query, pattern, categoryID)
	if err != nil {
		return fmt.Errorf("creating category rule: %w", err)
	}

	return nil
}
