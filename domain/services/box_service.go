package services

import (
	"context"
	"fmt"

	"santabox/domain/entities"
	"santabox/domain/events"
	"santabox/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// boxService implements business logic for exchange boxes
type boxService struct {
	boxRepo         interfaces.BoxRepository
	participantRepo interfaces.ParticipantRepository
	assignmentRepo  interfaces.AssignmentRepository
	eventPublisher  interfaces.EventPublisher
}

// NewBoxService creates a new box service
func NewBoxService(
	boxRepo interfaces.BoxRepository,
	participantRepo interfaces.ParticipantRepository,
	assignmentRepo interfaces.AssignmentRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.BoxService {
	return &boxService{
		boxRepo:         boxRepo,
		participantRepo: participantRepo,
		assignmentRepo:  assignmentRepo,
		eventPublisher:  eventPublisher,
	}
}

// CreateBox validates and creates a new box. Over-length fields are rejected,
// never truncated; the flow boundary validates first, this is the backstop.
func (s *boxService) CreateBox(ctx context.Context, ownerID int64, name string, photoRef *string, description string) (*entities.Box, error) {
	if err := entities.ValidateBoxName(name); err != nil {
		return nil, err
	}
	if err := entities.ValidateBoxDescription(description); err != nil {
		return nil, err
	}

	box, err := s.boxRepo.Create(ctx, ownerID, name, photoRef, description)
	if err != nil {
		return nil, fmt.Errorf("failed to create box: %w", err)
	}

	if err := s.eventPublisher.Publish(events.BoxCreatedEvent{
		BoxID:   box.ID,
		OwnerID: ownerID,
		BoxName: box.Name,
	}); err != nil {
		return nil, fmt.Errorf("failed to publish box created event: %w", err)
	}

	return box, nil
}

// GetBox returns the box or ErrBoxNotFound
func (s *boxService) GetBox(ctx context.Context, boxID int64) (*entities.Box, error) {
	box, err := s.boxRepo.GetByID(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to get box %d: %w", boxID, err)
	}
	if box == nil {
		return nil, ErrBoxNotFound
	}
	return box, nil
}

// DeleteBox removes the box and cascades to its participants and
// assignments. All cascade steps run in the caller's transaction, so either
// everything is removed or nothing is. Deleting a missing box is a no-op.
func (s *boxService) DeleteBox(ctx context.Context, boxID int64) error {
	box, err := s.boxRepo.GetByID(ctx, boxID)
	if err != nil {
		return fmt.Errorf("failed to get box %d: %w", boxID, err)
	}
	if box == nil {
		log.WithField("boxID", boxID).Debug("Delete of missing box ignored")
		return nil
	}

	if err := s.assignmentRepo.DeleteByBox(ctx, boxID); err != nil {
		return fmt.Errorf("failed to delete assignments of box %d: %w", boxID, err)
	}
	if err := s.participantRepo.DeleteByBox(ctx, boxID); err != nil {
		return fmt.Errorf("failed to delete participants of box %d: %w", boxID, err)
	}
	if err := s.boxRepo.Delete(ctx, boxID); err != nil {
		return fmt.Errorf("failed to delete box %d: %w", boxID, err)
	}

	if err := s.eventPublisher.Publish(events.BoxDeletedEvent{
		BoxID:    boxID,
		OwnerID:  box.OwnerID,
		PhotoRef: box.PhotoRef,
	}); err != nil {
		return fmt.Errorf("failed to publish box deleted event: %w", err)
	}

	return nil
}

// ListOwnedBoxes returns the boxes created by a user
func (s *boxService) ListOwnedBoxes(ctx context.Context, ownerID int64) ([]*entities.Box, error) {
	boxes, err := s.boxRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boxes owned by %d: %w", ownerID, err)
	}
	return boxes, nil
}

// Authorize is the single ownership check gating every owner-only action.
func (s *boxService) Authorize(ctx context.Context, userID, boxID int64, action interfaces.OwnerAction) error {
	box, err := s.boxRepo.GetByID(ctx, boxID)
	if err != nil {
		return fmt.Errorf("failed to get box %d: %w", boxID, err)
	}
	if box == nil {
		return ErrBoxNotFound
	}
	if !box.IsOwnedBy(userID) {
		log.WithFields(log.Fields{
			"userID": userID,
			"boxID":  boxID,
			"action": action,
		}).Warn("Rejected owner-only action by non-owner")
		return ErrNotBoxOwner
	}
	return nil
}
