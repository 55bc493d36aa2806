package services

import (
	"context"
	"fmt"
	"math/rand/v2"

	"santabox/domain/entities"
	"santabox/domain/events"
	"santabox/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// maxDrawAttempts caps the rejection-sampling loop. The expected number of
// attempts converges to e as the participant count grows (the fraction of
// permutations that are derangements tends to 1/e), so hitting this bound
// means the random source is defective, not that we were unlucky.
const maxDrawAttempts = 10000

// shuffleFunc permutes a slice of participant IDs in place
type shuffleFunc func(ids []int64)

// drawService implements the assignment engine
type drawService struct {
	boxRepo         interfaces.BoxRepository
	participantRepo interfaces.ParticipantRepository
	assignmentRepo  interfaces.AssignmentRepository
	eventPublisher  interfaces.EventPublisher
	shuffle         shuffleFunc
	maxAttempts     int
}

// NewDrawService creates a new draw service backed by math/rand
func NewDrawService(
	boxRepo interfaces.BoxRepository,
	participantRepo interfaces.ParticipantRepository,
	assignmentRepo interfaces.AssignmentRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.DrawService {
	return newDrawService(boxRepo, participantRepo, assignmentRepo, eventPublisher, defaultShuffle, maxDrawAttempts)
}

// newDrawService wires an explicit shuffle and retry budget. Tests use this
// with a seeded or rigged shuffle for deterministic permutations.
func newDrawService(
	boxRepo interfaces.BoxRepository,
	participantRepo interfaces.ParticipantRepository,
	assignmentRepo interfaces.AssignmentRepository,
	eventPublisher interfaces.EventPublisher,
	shuffle shuffleFunc,
	maxAttempts int,
) *drawService {
	return &drawService{
		boxRepo:         boxRepo,
		participantRepo: participantRepo,
		assignmentRepo:  assignmentRepo,
		eventPublisher:  eventPublisher,
		shuffle:         shuffle,
		maxAttempts:     maxAttempts,
	}
}

func defaultShuffle(ids []int64) {
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}

// Draw computes a fresh derangement over the box's participants and replaces
// any prior assignment set in one transaction.
//
// Rejection sampling over uniform permutations yields a uniform distribution
// over all derangements, unlike constructive schemes that bias toward
// particular cycle structures.
func (s *drawService) Draw(ctx context.Context, boxID int64) ([]*entities.Assignment, error) {
	box, err := s.boxRepo.GetByID(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to get box %d: %w", boxID, err)
	}
	if box == nil {
		return nil, ErrBoxNotFound
	}

	participants, err := s.participantRepo.ListByBox(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants of box %d: %w", boxID, err)
	}
	if len(participants) < 2 {
		return nil, ErrNotEnoughParticipants
	}

	givers := make([]int64, len(participants))
	for i, p := range participants {
		givers[i] = p.UserID
	}

	receivers, attempts, err := s.sampleDerangement(givers)
	if err != nil {
		return nil, err
	}

	assignments := make([]*entities.Assignment, len(givers))
	for i := range givers {
		assignments[i] = &entities.Assignment{
			BoxID:      boxID,
			GiverID:    givers[i],
			ReceiverID: receivers[i],
		}
	}

	if err := s.assignmentRepo.ReplaceForBox(ctx, boxID, assignments); err != nil {
		return nil, fmt.Errorf("failed to replace assignments of box %d: %w", boxID, err)
	}

	nameByID := make(map[int64]string, len(participants))
	for _, p := range participants {
		nameByID[p.UserID] = p.Name
	}
	pairs := make([]events.AssignmentPair, len(assignments))
	for i, a := range assignments {
		pairs[i] = events.AssignmentPair{
			GiverID:      a.GiverID,
			ReceiverID:   a.ReceiverID,
			ReceiverName: nameByID[a.ReceiverID],
		}
	}
	if err := s.eventPublisher.Publish(events.DrawCompletedEvent{
		BoxID:   boxID,
		BoxName: box.Name,
		Pairs:   pairs,
	}); err != nil {
		return nil, fmt.Errorf("failed to publish draw completed event: %w", err)
	}

	log.WithFields(log.Fields{
		"boxID":        boxID,
		"participants": len(participants),
		"attempts":     attempts,
	}).Info("Draw completed")

	return assignments, nil
}

// sampleDerangement draws uniform permutations of the giver list until one
// has no fixed point. Returns the receiver ordering aligned with givers.
func (s *drawService) sampleDerangement(givers []int64) ([]int64, int, error) {
	receivers := make([]int64, len(givers))
	copy(receivers, givers)

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		s.shuffle(receivers)
		if !hasFixedPoint(givers, receivers) {
			return receivers, attempt, nil
		}
	}

	return nil, s.maxAttempts, ErrDrawFailed
}

func hasFixedPoint(givers, receivers []int64) bool {
	for i := range givers {
		if givers[i] == receivers[i] {
			return true
		}
	}
	return false
}
