package postgres

import (
	"fmt"
	"strings"

	"notify-hub/internal/repository"
)

// DeliveryLogQueryBuilder builds WHERE clauses for delivery log queries.
// It centralizes filter construction so list and count queries stay consistent.
type DeliveryLogQueryBuilder struct{}

func NewDeliveryLogQueryBuilder() *DeliveryLogQueryBuilder {
	return &DeliveryLogQueryBuilder{}
}

// BuildWhereClause constructs a WHERE clause and positional args from filters.
// tableAlias prefixes column names when the query joins other tables
// (e.g. "n" produces "n.status"). Returns an empty clause when no filter is set.
func (qb *DeliveryLogQueryBuilder) BuildWhereClause(filters repository.DeliveryLogFilters, tableAlias string) (string, []interface{}) {
	prefix := ""
	if tableAlias != "" {
		prefix = tableAlias + "."
	}

	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if filters.UserID != nil {
		args = append(args, *filters.UserID)
		conditions = append(conditions, fmt.Sprintf("%suser_id = $%d", prefix, len(args)))
	}
	if filters.Category != nil {
		args = append(args, *filters.Category)
		conditions = append(conditions, fmt.Sprintf("%scategory = $%d", prefix, len(args)))
	}
	if filters.Status != nil {
		args = append(args, string(*filters.Status))
		conditions = append(conditions, fmt.Sprintf("%sstatus = $%d", prefix, len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
