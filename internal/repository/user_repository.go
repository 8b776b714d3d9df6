package repository

import (
	"context"

	"notify-hub/internal/domain/entity"
)

type UserRepository interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ResolveRecipients returns users holding an active subscription to the
	// named category AND an enabled preference for the named channel.
	// The result is distinct by user id and ordered by id for deterministic
	// iteration; an empty result is valid and not an error.
	ResolveRecipients(ctx context.Context, category, channel string) ([]*entity.User, error)
	// Subscribe links a user to a category. Duplicate pairs return
	// entity.ErrAlreadyExists.
	Subscribe(ctx context.Context, userID, categoryID int64) error
	// SetChannelPreference upserts the enabled flag for a (user, channel) pair.
	// A disabled preference is equivalent to no preference for targeting.
	SetChannelPreference(ctx context.Context, userID, channelID int64, enabled bool) error
}
