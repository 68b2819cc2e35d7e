// Package category manages transaction categories: the predefined set
// shared by everyone plus each user's own custom ones.
package category

import (
	"context"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/repository"
)

// Service manages categories.
type Service struct {
	store repository.Store
}

// NewService builds the category service.
func NewService(store repository.Store) *Service {
	return &Service{store: store}
}

// Visible returns the categories a user can pick from: all predefined
// ones plus their own custom ones.
func (s *Service) Visible(ctx context.Context, userID uint) ([]*domain.Category, error) {
	return s.store.Categories().VisibleForUser(ctx, userID)
}

// Create stores a category. A category bound to a user is always
// custom; custom categories never enter the expense chart.
func (s *Service) Create(ctx context.Context, c *domain.Category) error {
	if c.UserID != nil {
		c.IsCustom = true
	}
	return s.store.Categories().Create(ctx, c)
}

// Get returns one category.
func (s *Service) Get(ctx context.Context, id uint) (*domain.Category, error) {
	return s.store.Categories().Get(ctx, id)
}

// Update replaces a category's fields.
func (s *Service) Update(ctx context.Context, id uint, in *domain.Category) (*domain.Category, error) {
	c, err := s.store.Categories().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Icon = in.Icon
	c.Color = in.Color
	if err := s.store.Categories().Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a category.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.store.Categories().Delete(ctx, id)
}
