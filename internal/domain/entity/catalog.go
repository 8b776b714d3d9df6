package entity

// Category represents a named topic users can subscribe to.
// Categories are seeded at startup and referenced, never mutated, during dispatch.
type Category struct {
	ID     int64
	Name   string
	Active bool
}

// NotificationChannel represents a delivery transport in the channel catalog.
// The deployment ships a fixed set (SMS, Email, Push); adding a channel
// requires both a catalog row and a strategy implementation.
type NotificationChannel struct {
	ID     int64
	Name   string
	Active bool
}
