package interfaces

import (
	"context"

	"santabox/domain/entities"
	"santabox/domain/events"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// GetByID retrieves a user by their Discord ID
	GetByID(ctx context.Context, userID int64) (*entities.User, error)

	// Upsert inserts the user on first contact or refreshes their username
	Upsert(ctx context.Context, userID int64, username string) (*entities.User, error)

	// GetByIDs retrieves multiple users keyed by Discord ID
	GetByIDs(ctx context.Context, userIDs []int64) (map[int64]*entities.User, error)
}

// BoxRepository defines the interface for exchange box data access
type BoxRepository interface {
	// Create inserts a new box and returns it with its generated ID
	Create(ctx context.Context, ownerID int64, name string, photoRef *string, description string) (*entities.Box, error)

	// GetByID retrieves a box by ID, or nil if it does not exist
	GetByID(ctx context.Context, boxID int64) (*entities.Box, error)

	// Delete removes the box row. Deleting a missing box is a no-op.
	Delete(ctx context.Context, boxID int64) error

	// ListByOwner returns the boxes created by a user, newest first
	ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Box, error)
}

// ParticipantRepository defines the interface for enrollment data access
type ParticipantRepository interface {
	// Create inserts a new enrollment row
	Create(ctx context.Context, p *entities.Participant) error

	// Get retrieves a user's enrollment in a box, or nil if absent
	Get(ctx context.Context, userID, boxID int64) (*entities.Participant, error)

	// Exists reports whether the user is enrolled in the box
	Exists(ctx context.Context, userID, boxID int64) (bool, error)

	// Delete removes a user's enrollment. Idempotent.
	Delete(ctx context.Context, userID, boxID int64) error

	// DeleteByBox removes all enrollments of a box
	DeleteByBox(ctx context.Context, boxID int64) error

	// UpdateField updates a single editable field of an enrollment.
	// Returns the number of rows updated (0 when the participant is missing).
	UpdateField(ctx context.Context, userID, boxID int64, field entities.ParticipantField, value string) (int64, error)

	// ListByBox returns all enrollments of a box in join order
	ListByBox(ctx context.Context, boxID int64) ([]*entities.Participant, error)

	// ListBoxesByUser returns the boxes a user participates in
	ListBoxesByUser(ctx context.Context, userID int64) ([]*entities.Box, error)
}

// AssignmentRepository defines the interface for draw result data access
type AssignmentRepository interface {
	// ReplaceForBox atomically swaps the box's assignment set for the given
	// pairs. A redraw fully replaces, never merges.
	ReplaceForBox(ctx context.Context, boxID int64, assignments []*entities.Assignment) error

	// ListByBox returns the current assignment set of a box
	ListByBox(ctx context.Context, boxID int64) ([]*entities.Assignment, error)

	// DeleteByBox removes all assignments of a box
	DeleteByBox(ctx context.Context, boxID int64) error

	// DeleteForUser removes assignments where the user is giver or receiver
	DeleteForUser(ctx context.Context, userID, boxID int64) error
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(event events.Event) error
}
