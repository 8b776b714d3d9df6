// Package catalog provides read-only use cases over the topic category and
// delivery channel catalogs. Catalog rows are seeded by migration; there is
// no write surface.
package catalog

import (
	"context"
	"fmt"

	"notify-hub/internal/domain/entity"
	"notify-hub/internal/repository"
)

// Service provides catalog lookup use cases.
type Service struct {
	Repo repository.CatalogRepository
}

// ListCategories retrieves all topic categories.
func (s *Service) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListChannels retrieves all delivery channels.
func (s *Service) ListChannels(ctx context.Context) ([]*entity.NotificationChannel, error) {
	channels, err := s.Repo.ListChannels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	return channels, nil
}
