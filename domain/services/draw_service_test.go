package services

import (
	"context"
	"math/rand/v2"
	"testing"

	"santabox/domain/entities"
	"santabox/domain/events"
	"santabox/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seededShuffle(seed uint64) shuffleFunc {
	rng := rand.New(rand.NewPCG(seed, seed))
	return func(ids []int64) {
		rng.Shuffle(len(ids), func(i, j int) {
			ids[i], ids[j] = ids[j], ids[i]
		})
	}
}

// identityShuffle never permutes, so every attempt keeps all fixed points
// and the retry budget must run out.
func identityShuffle(ids []int64) {}

func drawParticipants(boxID int64, userIDs ...int64) []*entities.Participant {
	participants := make([]*entities.Participant, len(userIDs))
	for i, id := range userIDs {
		participants[i] = &entities.Participant{
			ID:     int64(i + 1),
			BoxID:  boxID,
			UserID: id,
			Name:   "participant",
		}
	}
	return participants
}

func TestDrawService_Draw_ProducesDerangement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		userIDs []int64
		seed    uint64
	}{
		{name: "two participants", userIDs: []int64{100, 200}, seed: 1},
		{name: "three participants", userIDs: []int64{100, 200, 300}, seed: 7},
		{name: "five participants", userIDs: []int64{1, 2, 3, 4, 5}, seed: 42},
		{name: "ten participants", userIDs: []int64{10, 20, 30, 40, 50, 60, 70, 80, 90, 95}, seed: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			boxRepo := new(testhelpers.MockBoxRepository)
			participantRepo := new(testhelpers.MockParticipantRepository)
			assignmentRepo := new(testhelpers.MockAssignmentRepository)
			publisher := new(testhelpers.MockEventPublisher)

			box := &entities.Box{ID: 1, OwnerID: 99, Name: "Office 2026"}
			boxRepo.On("GetByID", mock.Anything, int64(1)).Return(box, nil)
			participantRepo.On("ListByBox", mock.Anything, int64(1)).
				Return(drawParticipants(1, tt.userIDs...), nil)
			assignmentRepo.On("ReplaceForBox", mock.Anything, int64(1), mock.Anything).Return(nil)
			publisher.On("Publish", mock.Anything).Return(nil)

			service := newDrawService(boxRepo, participantRepo, assignmentRepo, publisher, seededShuffle(tt.seed), maxDrawAttempts)

			assignments, err := service.Draw(context.Background(), 1)
			require.NoError(t, err)

			assert.NoError(t, entities.ValidateAssignments(assignments, tt.userIDs))
			assignmentRepo.AssertExpectations(t)
		})
	}
}

func TestDrawService_Draw_NotEnoughParticipants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		userIDs []int64
	}{
		{name: "empty box", userIDs: nil},
		{name: "single participant", userIDs: []int64{100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			boxRepo := new(testhelpers.MockBoxRepository)
			participantRepo := new(testhelpers.MockParticipantRepository)
			assignmentRepo := new(testhelpers.MockAssignmentRepository)
			publisher := new(testhelpers.MockEventPublisher)

			box := &entities.Box{ID: 1, OwnerID: 99, Name: "Office 2026"}
			boxRepo.On("GetByID", mock.Anything, int64(1)).Return(box, nil)
			participantRepo.On("ListByBox", mock.Anything, int64(1)).
				Return(drawParticipants(1, tt.userIDs...), nil)

			service := newDrawService(boxRepo, participantRepo, assignmentRepo, publisher, seededShuffle(1), maxDrawAttempts)

			assignments, err := service.Draw(context.Background(), 1)
			assert.ErrorIs(t, err, ErrNotEnoughParticipants)
			assert.Nil(t, assignments)

			// Failed draws must leave any prior assignment set untouched
			assignmentRepo.AssertNotCalled(t, "ReplaceForBox", mock.Anything, mock.Anything, mock.Anything)
			publisher.AssertNotCalled(t, "Publish", mock.Anything)
		})
	}
}

func TestDrawService_Draw_BoxNotFound(t *testing.T) {
	t.Parallel()

	boxRepo := new(testhelpers.MockBoxRepository)
	participantRepo := new(testhelpers.MockParticipantRepository)
	assignmentRepo := new(testhelpers.MockAssignmentRepository)
	publisher := new(testhelpers.MockEventPublisher)

	boxRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, nil)

	service := newDrawService(boxRepo, participantRepo, assignmentRepo, publisher, seededShuffle(1), maxDrawAttempts)

	assignments, err := service.Draw(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBoxNotFound)
	assert.Nil(t, assignments)
}

func TestDrawService_Draw_RetryBudgetExhausted(t *testing.T) {
	t.Parallel()

	boxRepo := new(testhelpers.MockBoxRepository)
	participantRepo := new(testhelpers.MockParticipantRepository)
	assignmentRepo := new(testhelpers.MockAssignmentRepository)
	publisher := new(testhelpers.MockEventPublisher)

	box := &entities.Box{ID: 1, OwnerID: 99, Name: "Office 2026"}
	boxRepo.On("GetByID", mock.Anything, int64(1)).Return(box, nil)
	participantRepo.On("ListByBox", mock.Anything, int64(1)).
		Return(drawParticipants(1, 100, 200, 300), nil)

	service := newDrawService(boxRepo, participantRepo, assignmentRepo, publisher, identityShuffle, 25)

	assignments, err := service.Draw(context.Background(), 1)
	assert.ErrorIs(t, err, ErrDrawFailed)
	assert.NotErrorIs(t, err, ErrNotEnoughParticipants)
	assert.Nil(t, assignments)

	assignmentRepo.AssertNotCalled(t, "ReplaceForBox", mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestDrawService_Draw_PublishesPairsWithReceiverNames(t *testing.T) {
	t.Parallel()

	boxRepo := new(testhelpers.MockBoxRepository)
	participantRepo := new(testhelpers.MockParticipantRepository)
	assignmentRepo := new(testhelpers.MockAssignmentRepository)
	publisher := new(testhelpers.MockEventPublisher)

	box := &entities.Box{ID: 1, OwnerID: 99, Name: "Office 2026"}
	participants := []*entities.Participant{
		{ID: 1, BoxID: 1, UserID: 100, Name: "Alice"},
		{ID: 2, BoxID: 1, UserID: 200, Name: "Bob"},
	}
	boxRepo.On("GetByID", mock.Anything, int64(1)).Return(box, nil)
	participantRepo.On("ListByBox", mock.Anything, int64(1)).Return(participants, nil)
	assignmentRepo.On("ReplaceForBox", mock.Anything, int64(1), mock.Anything).Return(nil)

	var published events.Event
	publisher.On("Publish", mock.Anything).Run(func(args mock.Arguments) {
		published = args.Get(0).(events.Event)
	}).Return(nil)

	service := newDrawService(boxRepo, participantRepo, assignmentRepo, publisher, seededShuffle(3), maxDrawAttempts)

	_, err := service.Draw(context.Background(), 1)
	require.NoError(t, err)

	event, ok := published.(events.DrawCompletedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(1), event.BoxID)
	assert.Equal(t, "Office 2026", event.BoxName)
	require.Len(t, event.Pairs, 2)

	// Two participants have exactly one derangement: they swap
	nameByID := map[int64]string{100: "Alice", 200: "Bob"}
	for _, pair := range event.Pairs {
		assert.NotEqual(t, pair.GiverID, pair.ReceiverID)
		assert.Equal(t, nameByID[pair.ReceiverID], pair.ReceiverName)
	}
}

func TestDrawService_Draw_RedrawReplacesAssignments(t *testing.T) {
	t.Parallel()

	boxRepo := new(testhelpers.MockBoxRepository)
	participantRepo := new(testhelpers.MockParticipantRepository)
	assignmentRepo := new(testhelpers.MockAssignmentRepository)
	publisher := new(testhelpers.MockEventPublisher)

	box := &entities.Box{ID: 1, OwnerID: 99, Name: "Office 2026"}
	boxRepo.On("GetByID", mock.Anything, int64(1)).Return(box, nil)
	participantRepo.On("ListByBox", mock.Anything, int64(1)).
		Return(drawParticipants(1, 100, 200, 300), nil)
	assignmentRepo.On("ReplaceForBox", mock.Anything, int64(1), mock.Anything).Return(nil).Twice()
	publisher.On("Publish", mock.Anything).Return(nil)

	service := newDrawService(boxRepo, participantRepo, assignmentRepo, publisher, seededShuffle(5), maxDrawAttempts)

	first, err := service.Draw(context.Background(), 1)
	require.NoError(t, err)
	second, err := service.Draw(context.Background(), 1)
	require.NoError(t, err)

	// Each draw hands the full new set to ReplaceForBox, never a delta
	assert.Len(t, first, 3)
	assert.Len(t, second, 3)
	assignmentRepo.AssertNumberOfCalls(t, "ReplaceForBox", 2)
}

func TestDefaultShuffle_Permutes(t *testing.T) {
	t.Parallel()

	ids := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	shuffled := make([]int64, len(ids))
	copy(shuffled, ids)
	defaultShuffle(shuffled)

	assert.ElementsMatch(t, ids, shuffled)
}
