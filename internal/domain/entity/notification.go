package entity

import "time"

// DeliveryStatus enumerates the lifecycle states of a delivery log entry.
type DeliveryStatus string

const (
	StatusPending   DeliveryStatus = "pending"
	StatusSent      DeliveryStatus = "sent"
	StatusDelivered DeliveryStatus = "delivered"
	StatusFailed    DeliveryStatus = "failed"
)

// Valid reports whether s is one of the known delivery statuses.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSent, StatusDelivered, StatusFailed:
		return true
	}
	return false
}

// DeliveryLog is the immutable audit record of a single delivery attempt.
// Exactly one entry is written per attempt, success or failure.
//
// The schema carries delivered_at and read_at columns for status transitions,
// but no code path transitions an entry after creation. This is intentional;
// the columns exist for a future read-receipt feature.
type DeliveryLog struct {
	ID           int64
	UserID       int64
	Category     string
	Channel      string
	Status       DeliveryStatus
	Content      string
	Metadata     map[string]string
	ErrorMessage string
	CreatedAt    time.Time
	SentAt       *time.Time
	DeliveredAt  *time.Time
	ReadAt       *time.Time
}

// DeliveryStats aggregates delivery log counts for the reporting surface.
type DeliveryStats struct {
	Total      int64
	Successful int64
	Failed     int64
	Pending    int64
	ByChannel  map[string]int64
	ByCategory map[string]int64
}
