package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vlkr/booking_api/internal/model"
	"github.com/vlkr/booking_api/internal/notification"
	"github.com/vlkr/booking_api/internal/repository/base"
)

// UserService registers users. Credentials and sessions live with the auth
// collaborator; this side only keeps the identity the ledger references.
type UserService struct {
	userRepo UserStore
	notifier Publisher
	logger   *zap.Logger
}

func NewUserService(userRepo UserStore, notifier Publisher, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// Register creates a new user with a unique email.
func (s *UserService) Register(ctx context.Context, email, name string) (*model.User, error) {
	if email == "" || name == "" {
		return nil, ErrMissingField
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Email: email,
		Name:  name,
	}

	err = s.userRepo.Create(ctx, user)
	if err != nil {
		if base.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email),
	)

	s.notifier.Publish(notification.Event{
		Type:      notification.EventUserRegistered,
		UserEmail: user.Email,
	})

	return user, nil
}

// GetByID returns a user or ErrUserNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
