// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as User, Category, NotificationChannel
// and DeliveryLog, along with their validation rules and domain-specific errors.
package entity

import "time"

// User represents a notification recipient in the system.
// A user owns zero or more category subscriptions and zero or more
// channel preferences; Phone is optional and may be empty.
type User struct {
	ID        int64
	PublicID  string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// HasPhone reports whether the user has a phone number on record.
func (u *User) HasPhone() bool {
	return u.Phone != ""
}

// HasEmail reports whether the user has an email address on record.
func (u *User) HasEmail() bool {
	return u.Email != ""
}
