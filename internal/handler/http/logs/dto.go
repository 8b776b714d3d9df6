package logs

import (
	"time"

	"notify-hub/internal/repository"
)

// DTO represents one delivery log entry in API responses.
type DTO struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"user_id"`
	UserName     string            `json:"user_name"`
	Category     string            `json:"category"`
	Channel      string            `json:"channel"`
	Status       string            `json:"status"`
	Content      string            `json:"content"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	SentAt       *time.Time        `json:"sent_at,omitempty"`
	DeliveredAt  *time.Time        `json:"delivered_at,omitempty"`
	ReadAt       *time.Time        `json:"read_at,omitempty"`
}

func toDTO(entry repository.DeliveryLogWithUser) DTO {
	log := entry.Log
	return DTO{
		ID:           log.ID,
		UserID:       log.UserID,
		UserName:     entry.UserName,
		Category:     log.Category,
		Channel:      log.Channel,
		Status:       string(log.Status),
		Content:      log.Content,
		Metadata:     log.Metadata,
		ErrorMessage: log.ErrorMessage,
		CreatedAt:    log.CreatedAt,
		SentAt:       log.SentAt,
		DeliveredAt:  log.DeliveredAt,
		ReadAt:       log.ReadAt,
	}
}

func toDTOs(entries []repository.DeliveryLogWithUser) []DTO {
	out := make([]DTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out
}

// StatsDTO represents aggregate delivery statistics in API responses.
type StatsDTO struct {
	Total      int64            `json:"total"`
	Successful int64            `json:"successful"`
	Failed     int64            `json:"failed"`
	Pending    int64            `json:"pending"`
	ByChannel  map[string]int64 `json:"by_channel"`
	ByCategory map[string]int64 `json:"by_category"`
}
