package dispatch

import (
	"time"

	"notify-hub/internal/domain/entity"
)

// PushChannel delivers notifications via the simulated push transport.
// Device registration is assumed, so every user is eligible.
type PushChannel struct {
	now func() time.Time
}

func NewPushChannel() *PushChannel {
	return &PushChannel{now: time.Now}
}

func (c *PushChannel) Name() string { return "Push" }

func (c *PushChannel) Validate(_ *entity.User) error { return nil }

func (c *PushChannel) Deliver(user *entity.User, msg Message) Outcome {
	return deliver(c, c.now, user, msg)
}
