package repository

import (
	"context"

	"notify-hub/internal/domain/entity"
)

// CatalogRepository provides read access to the category and channel catalogs.
// Both catalogs are seeded by migrations and never mutated during dispatch.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	// GetCategoryByName returns the active category with the given name.
	// Returns (nil, nil) if no active category matches.
	GetCategoryByName(ctx context.Context, name string) (*entity.Category, error)
	ListChannels(ctx context.Context) ([]*entity.NotificationChannel, error)
	GetChannelByName(ctx context.Context, name string) (*entity.NotificationChannel, error)
}
