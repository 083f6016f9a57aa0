// Package suggest learns which category a line item belongs to from the
// names the user has categorized before.
package suggest

import (
	"context"
)

type Repository interface {
	FindCategory(ctx context.Context, itemName string) (string, error)
	CreateRule(ctx context.Context, pattern, categoryID string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Categorize tries to find a category id for the given item name.
// Returns empty string if no rule matches.
func (s *Service) Categorize(ctx context.Context, itemName string) (string, error) {
	return s.repo.FindCategory(ctx, itemName)
}

// Learn remembers a new rule mapping an item-name pattern to a category.
func (s *Service) Learn(ctx context.Context, pattern, categoryID string) error {
	return s.repo.CreateRule(ctx, pattern, categoryID)
}
