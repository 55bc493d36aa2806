package services

import (
	"context"
	"fmt"

	"santabox/domain/entities"
	"santabox/domain/events"
	"santabox/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// participantService implements business logic for box enrollments
type participantService struct {
	boxRepo         interfaces.BoxRepository
	participantRepo interfaces.ParticipantRepository
	assignmentRepo  interfaces.AssignmentRepository
	eventPublisher  interfaces.EventPublisher
}

// NewParticipantService creates a new participant service
func NewParticipantService(
	boxRepo interfaces.BoxRepository,
	participantRepo interfaces.ParticipantRepository,
	assignmentRepo interfaces.AssignmentRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.ParticipantService {
	return &participantService{
		boxRepo:         boxRepo,
		participantRepo: participantRepo,
		assignmentRepo:  assignmentRepo,
		eventPublisher:  eventPublisher,
	}
}

// JoinBox enrolls a user in a box with the identity they entered in the
// joining flow. A user may join a given box at most once.
func (s *participantService) JoinBox(ctx context.Context, userID, boxID int64, name, address, wish string) (*entities.Participant, error) {
	box, err := s.boxRepo.GetByID(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to get box %d: %w", boxID, err)
	}
	if box == nil {
		return nil, ErrBoxNotFound
	}

	exists, err := s.participantRepo.Exists(ctx, userID, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to check participation: %w", err)
	}
	if exists {
		return nil, ErrAlreadyParticipant
	}

	participant := &entities.Participant{
		BoxID:   boxID,
		UserID:  userID,
		Name:    name,
		Address: address,
		Wish:    wish,
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	if err := s.eventPublisher.Publish(events.ParticipantJoinedEvent{
		BoxID:   boxID,
		BoxName: box.Name,
		OwnerID: box.OwnerID,
		UserID:  userID,
		Name:    name,
	}); err != nil {
		return nil, fmt.Errorf("failed to publish participant joined event: %w", err)
	}

	return participant, nil
}

// LeaveBox removes the enrollment together with any assignments that name
// the user as giver or receiver. Idempotent.
func (s *participantService) LeaveBox(ctx context.Context, userID, boxID int64) error {
	if err := s.assignmentRepo.DeleteForUser(ctx, userID, boxID); err != nil {
		return fmt.Errorf("failed to delete assignments for user %d in box %d: %w", userID, boxID, err)
	}
	if err := s.participantRepo.Delete(ctx, userID, boxID); err != nil {
		return fmt.Errorf("failed to delete participant %d in box %d: %w", userID, boxID, err)
	}

	if err := s.eventPublisher.Publish(events.ParticipantLeftEvent{
		BoxID:  boxID,
		UserID: userID,
	}); err != nil {
		return fmt.Errorf("failed to publish participant left event: %w", err)
	}

	return nil
}

// UpdateField updates one editable field in its own atomic operation. When
// the participant does not exist nothing happens; callers that care should
// check existence first.
func (s *participantService) UpdateField(ctx context.Context, userID, boxID int64, field entities.ParticipantField, value string) error {
	if err := entities.ValidateParticipantField(field, value); err != nil {
		return err
	}

	updated, err := s.participantRepo.UpdateField(ctx, userID, boxID, field, value)
	if err != nil {
		return fmt.Errorf("failed to update %s for user %d in box %d: %w", field, userID, boxID, err)
	}
	if updated == 0 {
		log.WithFields(log.Fields{
			"userID": userID,
			"boxID":  boxID,
			"field":  field,
		}).Debug("Field update targeted a missing participant")
	}
	return nil
}

// GetParticipant returns the enrollment or ErrParticipantNotFound
func (s *participantService) GetParticipant(ctx context.Context, userID, boxID int64) (*entities.Participant, error) {
	participant, err := s.participantRepo.Get(ctx, userID, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participant %d in box %d: %w", userID, boxID, err)
	}
	if participant == nil {
		return nil, ErrParticipantNotFound
	}
	return participant, nil
}

// ListParticipants returns all enrollments of a box
func (s *participantService) ListParticipants(ctx context.Context, boxID int64) ([]*entities.Participant, error) {
	participants, err := s.participantRepo.ListByBox(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants of box %d: %w", boxID, err)
	}
	return participants, nil
}

// ListJoinedBoxes returns the boxes a user participates in
func (s *participantService) ListJoinedBoxes(ctx context.Context, userID int64) ([]*entities.Box, error) {
	boxes, err := s.participantRepo.ListBoxesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boxes joined by %d: %w", userID, err)
	}
	return boxes, nil
}

// IsParticipant reports whether the user is enrolled in the box
func (s *participantService) IsParticipant(ctx context.Context, userID, boxID int64) (bool, error) {
	exists, err := s.participantRepo.Exists(ctx, userID, boxID)
	if err != nil {
		return false, fmt.Errorf("failed to check participation: %w", err)
	}
	return exists, nil
}
