package services

import (
	"context"
	"fmt"

	"santabox/domain/entities"
	"santabox/domain/events"
	"santabox/domain/interfaces"
)

// userService implements business logic for user registration
type userService struct {
	userRepo       interfaces.UserRepository
	eventPublisher interfaces.EventPublisher
}

// NewUserService creates a new user service
func NewUserService(userRepo interfaces.UserRepository, eventPublisher interfaces.EventPublisher) interfaces.UserService {
	return &userService{
		userRepo:       userRepo,
		eventPublisher: eventPublisher,
	}
}

// GetOrCreateUser registers the user on first contact. Subsequent calls
// refresh the stored username and are otherwise no-ops.
func (s *userService) GetOrCreateUser(ctx context.Context, userID int64, username string) (*entities.User, error) {
	existing, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	user, err := s.userRepo.Upsert(ctx, userID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %d: %w", userID, err)
	}

	if existing == nil {
		if err := s.eventPublisher.Publish(events.UserCreatedEvent{
			UserID:   userID,
			Username: username,
		}); err != nil {
			return nil, fmt.Errorf("failed to publish user created event: %w", err)
		}
	}

	return user, nil
}

// GetUsers batch-resolves known users keyed by ID
func (s *userService) GetUsers(ctx context.Context, userIDs []int64) (map[int64]*entities.User, error) {
	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}
