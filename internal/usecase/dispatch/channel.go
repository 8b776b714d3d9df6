// Package dispatch provides use cases for dispatching notifications across
// delivery channels. It implements the channel strategies (SMS, Email, Push),
// recipient resolution per channel, and the orchestration loop that records
// every delivery attempt in the audit log.
package dispatch

import (
	"time"

	"notify-hub/internal/domain/entity"
)

// Message is the transient dispatch input. It is never persisted itself;
// only the delivery attempts derived from it are.
type Message struct {
	Category string
	Content  string
}

// Outcome records the result of a single delivery attempt as data.
// Failed attempts carry a non-empty Error; successful ones do not.
type Outcome struct {
	UserID    int64                 `json:"user_id"`
	Channel   string                `json:"channel"`
	Category  string                `json:"category"`
	Status    entity.DeliveryStatus `json:"status"`
	Error     string                `json:"error,omitempty"`
	Timestamp time.Time             `json:"timestamp"`
}

// Channel represents a notification delivery channel (SMS, Email, Push).
// The set of implementations is closed: adding a channel means adding a
// strategy type here plus a catalog row, never runtime type inspection.
//
// Error Contract:
//   - Validate returns an error when the user is ineligible for the channel
//     (e.g. SMS without a phone number).
//   - Deliver NEVER returns an error. Every failure, including ineligibility
//     and malformed messages, is captured in the returned Outcome with
//     status failed. Only truly exceptional conditions (storage down) are
//     errors, and those belong to the orchestrator, not the strategy.
//
// Thread Safety:
//   - Implementations hold no mutable state and are safe for concurrent use.
type Channel interface {
	// Name returns the catalog name of the channel ("SMS", "Email", "Push").
	Name() string

	// Validate reports whether the user is eligible to receive messages
	// on this channel. A nil error means eligible.
	Validate(user *entity.User) error

	// Deliver attempts a simulated delivery of msg to user and returns the
	// outcome. The strategy is pure given its clock: it performs no I/O and
	// persists nothing; recording the outcome is the orchestrator's job.
	Deliver(user *entity.User, msg Message) Outcome
}

// deliver implements the shared delivery envelope for all strategies:
// message validation first, then channel eligibility, then simulated send.
func deliver(ch Channel, now func() time.Time, user *entity.User, msg Message) Outcome {
	out := Outcome{
		UserID:    user.ID,
		Channel:   ch.Name(),
		Category:  msg.Category,
		Timestamp: now(),
	}

	if msg.Category == "" {
		out.Status = entity.StatusFailed
		out.Error = "message category is required"
		return out
	}
	if err := entity.ValidateContent(msg.Content); err != nil {
		out.Status = entity.StatusFailed
		out.Error = err.Error()
		return out
	}
	if err := ch.Validate(user); err != nil {
		out.Status = entity.StatusFailed
		out.Error = err.Error()
		return out
	}

	out.Status = entity.StatusSent
	return out
}
