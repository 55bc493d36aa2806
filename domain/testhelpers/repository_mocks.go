package testhelpers

import (
	"context"

	"santabox/domain/entities"
	"santabox/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID int64) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, userID int64, username string) (*entities.User, error) {
	args := m.Called(ctx, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, userIDs []int64) (map[int64]*entities.User, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*entities.User), args.Error(1)
}

// MockBoxRepository is a mock implementation of BoxRepository
type MockBoxRepository struct {
	mock.Mock
}

func (m *MockBoxRepository) Create(ctx context.Context, ownerID int64, name string, photoRef *string, description string) (*entities.Box, error) {
	args := m.Called(ctx, ownerID, name, photoRef, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Box), args.Error(1)
}

func (m *MockBoxRepository) GetByID(ctx context.Context, boxID int64) (*entities.Box, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Box), args.Error(1)
}

func (m *MockBoxRepository) Delete(ctx context.Context, boxID int64) error {
	args := m.Called(ctx, boxID)
	return args.Error(0)
}

func (m *MockBoxRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Box, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Box), args.Error(1)
}

// MockParticipantRepository is a mock implementation of ParticipantRepository
type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) Create(ctx context.Context, p *entities.Participant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParticipantRepository) Get(ctx context.Context, userID, boxID int64) (*entities.Participant, error) {
	args := m.Called(ctx, userID, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Participant), args.Error(1)
}

func (m *MockParticipantRepository) Exists(ctx context.Context, userID, boxID int64) (bool, error) {
	args := m.Called(ctx, userID, boxID)
	return args.Bool(0), args.Error(1)
}

func (m *MockParticipantRepository) Delete(ctx context.Context, userID, boxID int64) error {
	args := m.Called(ctx, userID, boxID)
	return args.Error(0)
}

func (m *MockParticipantRepository) DeleteByBox(ctx context.Context, boxID int64) error {
	args := m.Called(ctx, boxID)
	return args.Error(0)
}

func (m *MockParticipantRepository) UpdateField(ctx context.Context, userID, boxID int64, field entities.ParticipantField, value string) (int64, error) {
	args := m.Called(ctx, userID, boxID, field, value)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParticipantRepository) ListByBox(ctx context.Context, boxID int64) ([]*entities.Participant, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Participant), args.Error(1)
}

func (m *MockParticipantRepository) ListBoxesByUser(ctx context.Context, userID int64) ([]*entities.Box, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Box), args.Error(1)
}

// MockAssignmentRepository is a mock implementation of AssignmentRepository
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) ReplaceForBox(ctx context.Context, boxID int64, assignments []*entities.Assignment) error {
	args := m.Called(ctx, boxID, assignments)
	return args.Error(0)
}

func (m *MockAssignmentRepository) ListByBox(ctx context.Context, boxID int64) ([]*entities.Assignment, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) DeleteByBox(ctx context.Context, boxID int64) error {
	args := m.Called(ctx, boxID)
	return args.Error(0)
}

func (m *MockAssignmentRepository) DeleteForUser(ctx context.Context, userID, boxID int64) error {
	args := m.Called(ctx, userID, boxID)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher that records
// published events for assertions.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

// NoopEventPublisher accepts every event and discards it. Useful where a
// test does not care about events.
type NoopEventPublisher struct{}

func (NoopEventPublisher) Publish(event events.Event) error {
	return nil
}
