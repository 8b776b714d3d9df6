package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"notify-hub/internal/domain/entity"
	"notify-hub/internal/repository"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) repository.CatalogRepository {
	return &CatalogRepo{db: db}
}

func (repo *CatalogRepo) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	const query = `
SELECT id, name, active
FROM categories
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*entity.Category, 0, 8)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Active); err != nil {
			return nil, fmt.Errorf("ListCategories: Scan: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (repo *CatalogRepo) GetCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	const query = `
SELECT id, name, active
FROM categories
WHERE name = $1 AND active = TRUE
LIMIT 1`
	var c entity.Category
	err := repo.db.QueryRowContext(ctx, query, name).Scan(&c.ID, &c.Name, &c.Active)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetCategoryByName: %w", err)
	}
	return &c, nil
}

func (repo *CatalogRepo) ListChannels(ctx context.Context) ([]*entity.NotificationChannel, error) {
	const query = `
SELECT id, name, active
FROM notification_channels
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListChannels: %w", err)
	}
	defer func() { _ = rows.Close() }()

	channels := make([]*entity.NotificationChannel, 0, 4)
	for rows.Next() {
		var ch entity.NotificationChannel
		if err := rows.Scan(&ch.ID, &ch.Name, &ch.Active); err != nil {
			return nil, fmt.Errorf("ListChannels: Scan: %w", err)
		}
		channels = append(channels, &ch)
	}
	return channels, rows.Err()
}

func (repo *CatalogRepo) GetChannelByName(ctx context.Context, name string) (*entity.NotificationChannel, error) {
	const query = `
SELECT id, name, active
FROM notification_channels
WHERE name = $1 AND active = TRUE
LIMIT 1`
	var ch entity.NotificationChannel
	err := repo.db.QueryRowContext(ctx, query, name).Scan(&ch.ID, &ch.Name, &ch.Active)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetChannelByName: %w", err)
	}
	return &ch, nil
}
