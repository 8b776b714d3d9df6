package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"notify-hub/internal/domain/entity"
	"notify-hub/internal/repository"
)

// Querier is the subset of database operations the delivery log repo needs.
// Both *sql.DB and the circuit breaker wrapper satisfy it, so callers choose
// whether audit writes go through breaker protection.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type DeliveryLogRepo struct {
	db           Querier
	queryBuilder *DeliveryLogQueryBuilder
}

func NewDeliveryLogRepo(db Querier) repository.DeliveryLogRepository {
	return &DeliveryLogRepo{
		db:           db,
		queryBuilder: NewDeliveryLogQueryBuilder(),
	}
}

// logColumns is the canonical select list for delivery log queries.
// Joined queries alias table-qualified names back to plain column names so
// row scanning never depends on the join shape. The original system leaked
// prefixed keys from joined rows into the API; normalization here is the fix.
const logColumns = `
n.id, n.user_id, n.category, n.channel, n.status, n.content, n.metadata,
n.error_message, n.created_at, n.sent_at, n.delivered_at, n.read_at,
u.name AS user_name`

// deliveryLogRow holds raw scanned columns before normalization.
// Nullable columns are scanned into sql.Null* and mapped explicitly.
type deliveryLogRow struct {
	log          entity.DeliveryLog
	status       string
	metadata     []byte
	errorMessage sql.NullString
	sentAt       sql.NullTime
	deliveredAt  sql.NullTime
	readAt       sql.NullTime
	userName     string
}

func (r *deliveryLogRow) scan(rows *sql.Rows) error {
	return rows.Scan(&r.log.ID, &r.log.UserID, &r.log.Category, &r.log.Channel,
		&r.status, &r.log.Content, &r.metadata, &r.errorMessage,
		&r.log.CreatedAt, &r.sentAt, &r.deliveredAt, &r.readAt, &r.userName)
}

// toEntity normalizes the raw row into the DeliveryLog view type.
func (r *deliveryLogRow) toEntity() repository.DeliveryLogWithUser {
	log := r.log
	log.Status = entity.DeliveryStatus(r.status)
	log.Metadata = DecodeMetadata(r.metadata)
	if r.errorMessage.Valid {
		log.ErrorMessage = r.errorMessage.String
	}
	if r.sentAt.Valid {
		t := r.sentAt.Time
		log.SentAt = &t
	}
	if r.deliveredAt.Valid {
		t := r.deliveredAt.Time
		log.DeliveredAt = &t
	}
	if r.readAt.Valid {
		t := r.readAt.Time
		log.ReadAt = &t
	}
	return repository.DeliveryLogWithUser{Log: &log, UserName: r.userName}
}

// DecodeMetadata decodes a stored JSONB metadata blob into a key/value map.
// Malformed or NULL stored metadata degrades to an empty map rather than
// failing the read; audit rows must stay listable even if a writer produced
// garbage metadata.
func DecodeMetadata(raw []byte) map[string]string {
	if len(raw) == 0 {
		return map[string]string{}
	}
	var meta map[string]string
	if err := json.Unmarshal(raw, &meta); err != nil || meta == nil {
		return map[string]string{}
	}
	return meta
}

func (repo *DeliveryLogRepo) Save(ctx context.Context, entry *entity.DeliveryLog) error {
	var metadata []byte
	if len(entry.Metadata) > 0 {
		encoded, err := json.Marshal(entry.Metadata)
		if err != nil {
			return fmt.Errorf("Save: marshal metadata: %w", err)
		}
		metadata = encoded
	}

	const query = `
INSERT INTO notifications
       (user_id, category, channel, status, content, metadata, error_message, created_at, sent_at)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		entry.UserID, entry.Category, entry.Channel, string(entry.Status),
		entry.Content, metadata, entry.ErrorMessage, entry.CreatedAt, entry.SentAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

func (repo *DeliveryLogRepo) List(ctx context.Context) ([]repository.DeliveryLogWithUser, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM notifications n
INNER JOIN users u ON n.user_id = u.id
ORDER BY n.created_at DESC`, logColumns)
	return repo.queryLogs(ctx, "List", query)
}

func (repo *DeliveryLogRepo) ListPaginated(ctx context.Context, filters repository.DeliveryLogFilters, offset, limit int) ([]repository.DeliveryLogWithUser, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "n")
	paramIndex := len(args) + 1
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
SELECT %s
FROM notifications n
INNER JOIN users u ON n.user_id = u.id
%s
ORDER BY n.created_at DESC
LIMIT $%d OFFSET $%d`, logColumns, whereClause, paramIndex, paramIndex+1)
	return repo.queryLogs(ctx, "ListPaginated", query, args...)
}

func (repo *DeliveryLogRepo) ListByUser(ctx context.Context, userID int64) ([]repository.DeliveryLogWithUser, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM notifications n
INNER JOIN users u ON n.user_id = u.id
WHERE n.user_id = $1
ORDER BY n.created_at DESC`, logColumns)
	return repo.queryLogs(ctx, "ListByUser", query, userID)
}

func (repo *DeliveryLogRepo) ListByCategory(ctx context.Context, category string) ([]repository.DeliveryLogWithUser, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM notifications n
INNER JOIN users u ON n.user_id = u.id
WHERE n.category = $1
ORDER BY n.created_at DESC`, logColumns)
	return repo.queryLogs(ctx, "ListByCategory", query, category)
}

func (repo *DeliveryLogRepo) ListByStatus(ctx context.Context, status entity.DeliveryStatus) ([]repository.DeliveryLogWithUser, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM notifications n
INNER JOIN users u ON n.user_id = u.id
WHERE n.status = $1
ORDER BY n.created_at DESC`, logColumns)
	return repo.queryLogs(ctx, "ListByStatus", query, string(status))
}

func (repo *DeliveryLogRepo) queryLogs(ctx context.Context, op, query string, args ...interface{}) ([]repository.DeliveryLogWithUser, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.DeliveryLogWithUser, 0, 100)
	for rows.Next() {
		var row deliveryLogRow
		if err := row.scan(rows); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		result = append(result, row.toEntity())
	}
	return result, rows.Err()
}

func (repo *DeliveryLogRepo) Count(ctx context.Context, filters repository.DeliveryLogFilters) (int64, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "")
	query := "SELECT COUNT(*) FROM notifications " + whereClause

	var count int64
	err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *DeliveryLogRepo) Statistics(ctx context.Context) (*entity.DeliveryStats, error) {
	const totalsQuery = `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE status IN ('sent', 'delivered')),
       COUNT(*) FILTER (WHERE status = 'failed'),
       COUNT(*) FILTER (WHERE status = 'pending')
FROM notifications`

	stats := &entity.DeliveryStats{
		ByChannel:  make(map[string]int64),
		ByCategory: make(map[string]int64),
	}
	err := repo.db.QueryRowContext(ctx, totalsQuery).
		Scan(&stats.Total, &stats.Successful, &stats.Failed, &stats.Pending)
	if err != nil {
		return nil, fmt.Errorf("Statistics: totals: %w", err)
	}

	if err := repo.countGrouped(ctx, "channel", stats.ByChannel); err != nil {
		return nil, err
	}
	if err := repo.countGrouped(ctx, "category", stats.ByCategory); err != nil {
		return nil, err
	}
	return stats, nil
}

// countGrouped fills dest with per-value counts for the given column.
// column is restricted to known identifiers; never caller-supplied input.
func (repo *DeliveryLogRepo) countGrouped(ctx context.Context, column string, dest map[string]int64) error {
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM notifications GROUP BY %s`, column, column)
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("Statistics: by %s: %w", column, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("Statistics: by %s: Scan: %w", column, err)
		}
		dest[key] = count
	}
	return rows.Err()
}
