package auditlog

import "errors"

// Sentinel errors for audit log query operations.
var (
	// ErrInvalidUserID indicates a non-positive user id filter.
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidStatus indicates a status filter outside
	// pending|sent|delivered|failed.
	ErrInvalidStatus = errors.New("invalid delivery status")
)
