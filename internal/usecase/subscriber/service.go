// Package subscriber provides use cases for managing notification recipients:
// user registration, category subscriptions, and channel preferences.
package subscriber

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"notify-hub/internal/domain/entity"
	"notify-hub/internal/repository"
)

// CreateInput represents the input parameters for registering a new user.
type CreateInput struct {
	Name  string
	Email string
	Phone string
}

// Service provides recipient management use cases.
type Service struct {
	Users   repository.UserRepository
	Catalog repository.CatalogRepository
}

// List retrieves all registered users.
func (s *Service) List(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get retrieves a single user by id.
// Returns ErrUserNotFound if the user does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	user, err := s.Users.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create registers a new user. Phone is optional; email must be unique.
// Returns a ValidationError for bad input and ErrEmailTaken for duplicates.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.User, error) {
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if err := entity.ValidateEmail(in.Email); err != nil {
		return nil, err
	}

	taken, err := s.Users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	user := &entity.User{
		PublicID:  uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Subscribe links a user to a topic category by name.
// Subscribing twice to the same category is a no-op reported as ErrAlreadySubscribed.
func (s *Service) Subscribe(ctx context.Context, userID int64, categoryName string) error {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}

	category, err := s.Catalog.GetCategoryByName(ctx, categoryName)
	if err != nil {
		return fmt.Errorf("lookup category: %w", err)
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	if err := s.Users.Subscribe(ctx, user.ID, category.ID); err != nil {
		if errors.Is(err, entity.ErrAlreadyExists) {
			return ErrAlreadySubscribed
		}
		return fmt.Errorf("subscribe: %w", err)
	}
	return nil
}

// SetChannelPreference enables or disables a delivery channel for a user.
// A disabled preference removes the user from that channel's targeting.
func (s *Service) SetChannelPreference(ctx context.Context, userID int64, channelName string, enabled bool) error {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}

	channel, err := s.Catalog.GetChannelByName(ctx, channelName)
	if err != nil {
		return fmt.Errorf("lookup channel: %w", err)
	}
	if channel == nil {
		return ErrChannelNotFound
	}

	if err := s.Users.SetChannelPreference(ctx, user.ID, channel.ID, enabled); err != nil {
		return fmt.Errorf("set channel preference: %w", err)
	}
	return nil
}
