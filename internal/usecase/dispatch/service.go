package dispatch

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"notify-hub/internal/domain/entity"
	"notify-hub/internal/repository"
)

// Result status discriminators returned to the boundary.
const (
	ResultCompleted = "completed"
	ResultError     = "error"

	// TypeValidation marks error results caused by bad caller input.
	TypeValidation = "validation_error"
)

// Summary aggregates the per-attempt outcomes of one dispatch batch.
type Summary struct {
	TotalAttempts int `json:"total_attempts"`
	Successful    int `json:"successful"`
	Failed        int `json:"failed"`
}

// Result is the structured return value of Dispatch. Every failure path
// produces a Result with a status discriminator and human-readable message;
// nothing propagates to the boundary as an unstructured crash.
type Result struct {
	Status    string    `json:"status"`
	Type      string    `json:"type,omitempty"`
	Message   string    `json:"message,omitempty"`
	Outcomes  []Outcome `json:"results"`
	Summary   Summary   `json:"summary"`
	Timestamp time.Time `json:"timestamp"`
}

// Service orchestrates notification dispatch: it validates the message,
// resolves recipients per channel, invokes the channel strategies, and
// persists one audit log entry per delivery attempt.
//
// Processing is sequential and deterministic within one call. Concurrent
// Dispatch calls are safe: strategies are stateless and each audit entry is
// an independent insert, so no application-level locking is needed.
type Service struct {
	users     repository.UserRepository
	logs      repository.DeliveryLogRepository
	validator *Validator
	channels  []Channel
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(
	users repository.UserRepository,
	catalog repository.CatalogRepository,
	logs repository.DeliveryLogRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:     users,
		logs:      logs,
		validator: &Validator{Catalog: catalog},
		channels:  AllChannels(),
		logger:    logger,
		now:       time.Now,
	}
}

// Dispatch validates the message, then walks the channel catalog in fixed
// order, delivering to every resolved recipient and recording each attempt.
//
// Failure policy:
//   - Validation failure short-circuits before any side effect.
//   - A per-user delivery failure is data: it is recorded and never affects
//     other users or channels.
//   - A failed audit write is logged and counted but does not stop the
//     batch; prior entries are not rolled back.
//   - Anything unexpected (recipient resolution down, panic) surfaces as a
//     Result with status "error".
func (s *Service) Dispatch(ctx context.Context, category, content string) (result *Result) {
	start := s.now()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic during dispatch",
				slog.String("category", category),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
			result = s.errorResult("internal dispatch failure")
			RecordDispatch(ResultError, s.now().Sub(start))
		}
	}()

	if err := s.validator.ValidateContent(content); err != nil {
		RecordDispatch(TypeValidation, s.now().Sub(start))
		return s.validationResult(err)
	}
	if err := s.validator.ValidateCategory(ctx, category); err != nil {
		if entity.IsValidation(err) {
			RecordDispatch(TypeValidation, s.now().Sub(start))
			return s.validationResult(err)
		}
		s.logger.Error("category lookup failed",
			slog.String("category", category),
			slog.Any("error", err))
		RecordDispatch(ResultError, s.now().Sub(start))
		return s.errorResult("category catalog unavailable")
	}

	msg := Message{Category: category, Content: content}
	outcomes := make([]Outcome, 0, 16)

	for _, ch := range s.channels {
		recipients, err := s.users.ResolveRecipients(ctx, category, ch.Name())
		if err != nil {
			s.logger.Error("recipient resolution failed",
				slog.String("category", category),
				slog.String("channel", ch.Name()),
				slog.Any("error", err))
			RecordDispatch(ResultError, s.now().Sub(start))
			return s.errorResult("recipient resolution unavailable")
		}
		if len(recipients) == 0 {
			// No matching subscribers for this channel; skip silently.
			continue
		}

		for _, user := range recipients {
			outcome := ch.Deliver(user, msg)
			RecordAttempt(outcome.Channel, string(outcome.Status))

			entry := s.buildLogEntry(outcome, content)
			if err := s.logs.Save(ctx, entry); err != nil {
				// Isolation: one failed write never blocks other deliveries.
				RecordSaveFailure()
				s.logger.Error("failed to persist delivery log entry",
					slog.Int64("user_id", user.ID),
					slog.String("channel", outcome.Channel),
					slog.Any("error", err))
			}

			outcomes = append(outcomes, outcome)
		}
	}

	summary := summarize(outcomes)
	s.logger.Info("dispatch completed",
		slog.String("category", category),
		slog.Int("total_attempts", summary.TotalAttempts),
		slog.Int("successful", summary.Successful),
		slog.Int("failed", summary.Failed))
	RecordDispatch(ResultCompleted, s.now().Sub(start))

	return &Result{
		Status:    ResultCompleted,
		Outcomes:  outcomes,
		Summary:   summary,
		Timestamp: s.now(),
	}
}

// buildLogEntry converts a delivery outcome into its audit record.
func (s *Service) buildLogEntry(outcome Outcome, content string) *entity.DeliveryLog {
	entry := &entity.DeliveryLog{
		UserID:    outcome.UserID,
		Category:  outcome.Category,
		Channel:   outcome.Channel,
		Status:    outcome.Status,
		Content:   content,
		CreatedAt: outcome.Timestamp,
	}
	if outcome.Status == entity.StatusSent {
		sentAt := outcome.Timestamp
		entry.SentAt = &sentAt
		entry.Metadata = map[string]string{"delivery_method": outcome.Channel}
	} else {
		entry.ErrorMessage = outcome.Error
	}
	return entry
}

func (s *Service) validationResult(err error) *Result {
	return &Result{
		Status:    ResultError,
		Type:      TypeValidation,
		Message:   err.Error(),
		Outcomes:  []Outcome{},
		Timestamp: s.now(),
	}
}

func (s *Service) errorResult(message string) *Result {
	return &Result{
		Status:    ResultError,
		Message:   message,
		Outcomes:  []Outcome{},
		Timestamp: s.now(),
	}
}

func summarize(outcomes []Outcome) Summary {
	summary := Summary{TotalAttempts: len(outcomes)}
	for _, out := range outcomes {
		if out.Status == entity.StatusSent {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}
	return summary
}
