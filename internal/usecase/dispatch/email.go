package dispatch

import (
	"time"

	"notify-hub/internal/domain/entity"
)

// EmailChannel delivers notifications via the simulated email transport.
// Eligibility requires an email address on the recipient's record.
type EmailChannel struct {
	now func() time.Time
}

func NewEmailChannel() *EmailChannel {
	return &EmailChannel{now: time.Now}
}

func (c *EmailChannel) Name() string { return "Email" }

func (c *EmailChannel) Validate(user *entity.User) error {
	if !user.HasEmail() {
		return &entity.ValidationError{
			Field:   "email",
			Message: "user has no email address registered",
		}
	}
	return nil
}

func (c *EmailChannel) Deliver(user *entity.User, msg Message) Outcome {
	return deliver(c, c.now, user, msg)
}
