package dispatch

import (
	"time"

	"notify-hub/internal/domain/entity"
)

// SMSChannel delivers notifications via the simulated SMS transport.
// Eligibility requires a phone number on the recipient's record.
type SMSChannel struct {
	now func() time.Time
}

func NewSMSChannel() *SMSChannel {
	return &SMSChannel{now: time.Now}
}

func (c *SMSChannel) Name() string { return "SMS" }

func (c *SMSChannel) Validate(user *entity.User) error {
	if !user.HasPhone() {
		return &entity.ValidationError{
			Field:   "phone",
			Message: "user has no phone number registered",
		}
	}
	return nil
}

func (c *SMSChannel) Deliver(user *entity.User, msg Message) Outcome {
	return deliver(c, c.now, user, msg)
}
