package services

import (
	"context"
	"testing"
	"time"

	"santabox/domain/entities"
	"santabox/domain/events"
	"santabox/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetOrCreateUser(t *testing.T) {
	t.Parallel()

	user := &entities.User{ID: 100, Username: "alice", ConnectionDate: time.Now()}

	t.Run("first contact publishes user created", func(t *testing.T) {
		t.Parallel()

		userRepo := new(testhelpers.MockUserRepository)
		publisher := new(testhelpers.MockEventPublisher)
		service := NewUserService(userRepo, publisher)

		userRepo.On("GetByID", mock.Anything, int64(100)).Return(nil, nil)
		userRepo.On("Upsert", mock.Anything, int64(100), "alice").Return(user, nil)
		publisher.On("Publish", events.UserCreatedEvent{UserID: 100, Username: "alice"}).Return(nil)

		got, err := service.GetOrCreateUser(context.Background(), 100, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(100), got.ID)
		publisher.AssertExpectations(t)
	})

	t.Run("known user refreshes username without event", func(t *testing.T) {
		t.Parallel()

		userRepo := new(testhelpers.MockUserRepository)
		publisher := new(testhelpers.MockEventPublisher)
		service := NewUserService(userRepo, publisher)

		userRepo.On("GetByID", mock.Anything, int64(100)).Return(user, nil)
		renamed := &entities.User{ID: 100, Username: "alice2", ConnectionDate: user.ConnectionDate}
		userRepo.On("Upsert", mock.Anything, int64(100), "alice2").Return(renamed, nil)

		got, err := service.GetOrCreateUser(context.Background(), 100, "alice2")
		require.NoError(t, err)
		assert.Equal(t, "alice2", got.Username)
		publisher.AssertNotCalled(t, "Publish", mock.Anything)
	})
}

func TestUserService_GetUsers(t *testing.T) {
	t.Parallel()

	userRepo := new(testhelpers.MockUserRepository)
	publisher := new(testhelpers.MockEventPublisher)
	service := NewUserService(userRepo, publisher)

	known := map[int64]*entities.User{
		100: {ID: 100, Username: "alice"},
		200: {ID: 200, Username: "bob"},
	}
	userRepo.On("GetByIDs", mock.Anything, []int64{100, 200, 300}).Return(known, nil)

	users, err := service.GetUsers(context.Background(), []int64{100, 200, 300})
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "alice", users[100].Username)
	assert.NotContains(t, users, int64(300))
}
