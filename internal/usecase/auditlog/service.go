// Package auditlog provides the reporting use cases over the delivery audit log.
// Entries are written by the dispatch orchestrator and read here; no code path
// mutates an entry after creation.
package auditlog

import (
	"context"
	"fmt"

	"notify-hub/internal/common/pagination"
	"notify-hub/internal/domain/entity"
	"notify-hub/internal/repository"
)

// QueryFilters mirrors the reporting surface's optional filters.
type QueryFilters struct {
	UserID   *int64
	Category *string
	Status   *string
}

// Service provides delivery log query use cases.
type Service struct {
	Repo repository.DeliveryLogRepository
}

// PaginatedResult represents the result of a paginated log query.
type PaginatedResult struct {
	Data       []repository.DeliveryLogWithUser
	Pagination pagination.Metadata
}

// List retrieves all delivery log entries, newest first.
func (s *Service) List(ctx context.Context) ([]repository.DeliveryLogWithUser, error) {
	entries, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list delivery logs: %w", err)
	}
	return entries, nil
}

// ListPaginated retrieves delivery log entries with filters and pagination.
// Returns ErrInvalidStatus if the status filter is not a known status.
func (s *Service) ListPaginated(ctx context.Context, filters QueryFilters, params pagination.Params) (*PaginatedResult, error) {
	repoFilters, err := toRepoFilters(filters)
	if err != nil {
		return nil, err
	}

	total, err := s.Repo.Count(ctx, repoFilters)
	if err != nil {
		return nil, fmt.Errorf("count delivery logs: %w", err)
	}

	entries, err := s.Repo.ListPaginated(ctx, repoFilters, params.Offset(), params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list delivery logs paginated: %w", err)
	}

	return &PaginatedResult{
		Data:       entries,
		Pagination: pagination.NewMetadata(params, total),
	}, nil
}

// ListByUser retrieves all entries for one recipient, newest first.
// Returns ErrInvalidUserID if the id is not positive.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]repository.DeliveryLogWithUser, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	entries, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list delivery logs by user: %w", err)
	}
	return entries, nil
}

// ListByCategory retrieves all entries for one category, newest first.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]repository.DeliveryLogWithUser, error) {
	if category == "" {
		return nil, &entity.ValidationError{Field: "category", Message: "is required"}
	}
	entries, err := s.Repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list delivery logs by category: %w", err)
	}
	return entries, nil
}

// ListByStatus retrieves all entries with one delivery status, newest first.
func (s *Service) ListByStatus(ctx context.Context, status string) ([]repository.DeliveryLogWithUser, error) {
	st := entity.DeliveryStatus(status)
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}
	entries, err := s.Repo.ListByStatus(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("list delivery logs by status: %w", err)
	}
	return entries, nil
}

// Statistics computes aggregate delivery counts.
func (s *Service) Statistics(ctx context.Context) (*entity.DeliveryStats, error) {
	stats, err := s.Repo.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("delivery log statistics: %w", err)
	}
	return stats, nil
}

func toRepoFilters(filters QueryFilters) (repository.DeliveryLogFilters, error) {
	out := repository.DeliveryLogFilters{
		UserID:   filters.UserID,
		Category: filters.Category,
	}
	if filters.UserID != nil && *filters.UserID <= 0 {
		return out, ErrInvalidUserID
	}
	if filters.Status != nil {
		st := entity.DeliveryStatus(*filters.Status)
		if !st.Valid() {
			return out, ErrInvalidStatus
		}
		out.Status = &st
	}
	return out, nil
}
