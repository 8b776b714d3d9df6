package subscriber_test

import (
	"context"
	"time"

	"notify-hub/internal/domain/entity"
	subUC "notify-hub/internal/usecase/subscriber"
)

/* ───────── モック実装 ───────── */

type stubUsers struct {
	users       map[int64]*entity.User
	emails      map[string]bool
	created     []*entity.User
	subscribed  [][2]int64 // (userID, categoryID)
	preferences []prefCall
	subscribeErr error
}

type prefCall struct {
	userID    int64
	channelID int64
	enabled   bool
}

func (s *stubUsers) Get(_ context.Context, id int64) (*entity.User, error) {
	return s.users[id], nil
}

func (s *stubUsers) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUsers) Create(_ context.Context, user *entity.User) error {
	user.ID = int64(len(s.created) + 1)
	s.created = append(s.created, user)
	return nil
}

func (s *stubUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return s.emails[email], nil
}

func (s *stubUsers) ResolveRecipients(_ context.Context, _, _ string) ([]*entity.User, error) {
	return nil, nil
}

func (s *stubUsers) Subscribe(_ context.Context, userID, categoryID int64) error {
	if s.subscribeErr != nil {
		return s.subscribeErr
	}
	s.subscribed = append(s.subscribed, [2]int64{userID, categoryID})
	return nil
}

func (s *stubUsers) SetChannelPreference(_ context.Context, userID, channelID int64, enabled bool) error {
	s.preferences = append(s.preferences, prefCall{userID, channelID, enabled})
	return nil
}

type stubCatalog struct {
	categories map[string]*entity.Category
	channels   map[string]*entity.NotificationChannel
}

func (s *stubCatalog) GetCategoryByName(_ context.Context, name string) (*entity.Category, error) {
	return s.categories[name], nil
}

func (s *stubCatalog) GetChannelByName(_ context.Context, name string) (*entity.NotificationChannel, error) {
	return s.channels[name], nil
}

func (s *stubCatalog) ListCategories(_ context.Context) ([]*entity.Category, error) {
	return nil, nil
}

func (s *stubCatalog) ListChannels(_ context.Context) ([]*entity.NotificationChannel, error) {
	return nil, nil
}

/* ───────── テストヘルパー ───────── */

func alice() *entity.User {
	return &entity.User{
		ID:        1,
		PublicID:  "b7f4c9e2-1a3d-4f5b-8c6e-9d0a1b2c3d4e",
		Name:      "Alice",
		Email:     "alice@example.com",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newService(users *stubUsers, catalog *stubCatalog) *subUC.Service {
	if catalog == nil {
		catalog = &stubCatalog{}
	}
	return &subUC.Service{Users: users, Catalog: catalog}
}
