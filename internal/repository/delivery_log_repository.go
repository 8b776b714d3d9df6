package repository

import (
	"context"

	"notify-hub/internal/domain/entity"
)

// DeliveryLogWithUser represents a delivery log entry along with the
// recipient's display name, joined from the users table.
type DeliveryLogWithUser struct {
	Log      *entity.DeliveryLog
	UserName string
}

// DeliveryLogFilters contains optional filters for delivery log queries.
// Nil fields are not applied.
type DeliveryLogFilters struct {
	UserID   *int64
	Category *string
	Status   *entity.DeliveryStatus
}

type DeliveryLogRepository interface {
	// Save persists one delivery attempt as a single atomic insert.
	// Entries are immutable once written; Save fills entry.ID on success.
	Save(ctx context.Context, entry *entity.DeliveryLog) error
	// List retrieves all entries ordered by created_at descending.
	List(ctx context.Context) ([]DeliveryLogWithUser, error)
	// ListPaginated retrieves entries ordered by created_at descending,
	// applying the given filters and LIMIT/OFFSET window.
	ListPaginated(ctx context.Context, filters DeliveryLogFilters, offset, limit int) ([]DeliveryLogWithUser, error)
	ListByUser(ctx context.Context, userID int64) ([]DeliveryLogWithUser, error)
	ListByCategory(ctx context.Context, category string) ([]DeliveryLogWithUser, error)
	ListByStatus(ctx context.Context, status entity.DeliveryStatus) ([]DeliveryLogWithUser, error)
	// Count returns the number of entries matching the filters.
	Count(ctx context.Context, filters DeliveryLogFilters) (int64, error)
	// Statistics computes aggregate delivery counts across all entries.
	Statistics(ctx context.Context) (*entity.DeliveryStats, error)
}
