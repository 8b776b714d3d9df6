package subscriber

import (
	"time"

	"notify-hub/internal/domain/entity"
)

// DTO represents a registered user in API responses.
type DTO struct {
	ID        int64     `json:"id"`
	PublicID  string    `json:"public_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(u *entity.User) DTO {
	return DTO{
		ID:        u.ID,
		PublicID:  u.PublicID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
