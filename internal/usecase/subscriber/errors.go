package subscriber

import "errors"

// Sentinel errors for recipient management operations.
var (
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already exists")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrChannelNotFound   = errors.New("channel not found")
	ErrAlreadySubscribed = errors.New("subscription already exists")
)
