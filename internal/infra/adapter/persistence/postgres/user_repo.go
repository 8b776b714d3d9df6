package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"notify-hub/internal/domain/entity"
	"notify-hub/internal/repository"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

// userRow holds raw scanned columns before normalization to the entity.
// phone is nullable in the schema and degrades to an empty string.
type userRow struct {
	user  entity.User
	phone sql.NullString
}

func (r *userRow) toEntity() *entity.User {
	u := r.user
	if r.phone.Valid {
		u.Phone = r.phone.String
	}
	return &u
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT id, public_id, name, email, phone, created_at
FROM users
WHERE id = $1
LIMIT 1`
	var row userRow
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&row.user.ID, &row.user.PublicID, &row.user.Name,
			&row.user.Email, &row.phone, &row.user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return row.toEntity(), nil
}

func (repo *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	const query = `
SELECT id, public_id, name, email, phone, created_at
FROM users
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*entity.User, 0, 50)
	for rows.Next() {
		var row userRow
		if err := rows.Scan(&row.user.ID, &row.user.PublicID, &row.user.Name,
			&row.user.Email, &row.phone, &row.user.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		users = append(users, row.toEntity())
	}
	return users, rows.Err()
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users
       (public_id, name, email, phone, created_at)
VALUES ($1, $2, $3, NULLIF($4, ''), $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		user.PublicID, user.Name, user.Email, user.Phone, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	var existsFlag bool
	err := repo.db.QueryRowContext(ctx, query, email).Scan(&existsFlag)
	if err != nil {
		return false, fmt.Errorf("ExistsByEmail: %w", err)
	}
	return existsFlag, nil
}

// ResolveRecipients returns the distinct set of users subscribed to the
// category with an enabled preference for the channel. Ordered by user id
// so dispatch iteration is deterministic.
func (repo *UserRepo) ResolveRecipients(ctx context.Context, category, channel string) ([]*entity.User, error) {
	const query = `
SELECT DISTINCT u.id, u.public_id, u.name, u.email, u.phone, u.created_at
FROM users u
INNER JOIN user_category_subscriptions ucs ON ucs.user_id = u.id
INNER JOIN categories c                    ON c.id = ucs.category_id
INNER JOIN user_channel_preferences ucp    ON ucp.user_id = u.id
INNER JOIN notification_channels nc        ON nc.id = ucp.channel_id
WHERE c.name = $1
  AND c.active = TRUE
  AND nc.name = $2
  AND nc.active = TRUE
  AND ucp.enabled = TRUE
ORDER BY u.id`
	rows, err := repo.db.QueryContext(ctx, query, category, channel)
	if err != nil {
		return nil, fmt.Errorf("ResolveRecipients: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*entity.User, 0, 50)
	for rows.Next() {
		var row userRow
		if err := rows.Scan(&row.user.ID, &row.user.PublicID, &row.user.Name,
			&row.user.Email, &row.phone, &row.user.CreatedAt); err != nil {
			return nil, fmt.Errorf("ResolveRecipients: Scan: %w", err)
		}
		users = append(users, row.toEntity())
	}
	return users, rows.Err()
}

func (repo *UserRepo) Subscribe(ctx context.Context, userID, categoryID int64) error {
	const query = `
INSERT INTO user_category_subscriptions (user_id, category_id)
VALUES ($1, $2)
ON CONFLICT (user_id, category_id) DO NOTHING`
	res, err := repo.db.ExecContext(ctx, query, userID, categoryID)
	if err != nil {
		return fmt.Errorf("Subscribe: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrAlreadyExists
	}
	return nil
}

func (repo *UserRepo) SetChannelPreference(ctx context.Context, userID, channelID int64, enabled bool) error {
	const query = `
INSERT INTO user_channel_preferences (user_id, channel_id, enabled)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, channel_id) DO UPDATE SET enabled = EXCLUDED.enabled`
	_, err := repo.db.ExecContext(ctx, query, userID, channelID, enabled)
	if err != nil {
		return fmt.Errorf("SetChannelPreference: %w", err)
	}
	return nil
}
