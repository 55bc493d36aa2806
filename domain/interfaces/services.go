package interfaces

import (
	"context"

	"santabox/domain/entities"
)

// OwnerAction identifies an owner-only operation for authorization checks.
type OwnerAction string

const (
	ActionViewParticipants   OwnerAction = "view_participants"
	ActionExportParticipants OwnerAction = "export_participants"
	ActionRunDraw            OwnerAction = "run_draw"
	ActionNotifyParticipants OwnerAction = "notify_participants"
	ActionDeleteBox          OwnerAction = "delete_box"
)

// UserService manages user records
type UserService interface {
	// GetOrCreateUser registers the user on first contact and refreshes
	// their username afterwards
	GetOrCreateUser(ctx context.Context, userID int64, username string) (*entities.User, error)

	// GetUsers batch-resolves known users keyed by ID. IDs without a user
	// record are absent from the result.
	GetUsers(ctx context.Context, userIDs []int64) (map[int64]*entities.User, error)
}

// BoxService manages exchange boxes and ownership checks
type BoxService interface {
	// CreateBox validates and creates a new box owned by ownerID
	CreateBox(ctx context.Context, ownerID int64, name string, photoRef *string, description string) (*entities.Box, error)

	// GetBox returns the box or ErrBoxNotFound
	GetBox(ctx context.Context, boxID int64) (*entities.Box, error)

	// DeleteBox removes the box together with its participants and
	// assignments. Deleting a missing box is a no-op.
	DeleteBox(ctx context.Context, boxID int64) error

	// ListOwnedBoxes returns the boxes created by a user
	ListOwnedBoxes(ctx context.Context, ownerID int64) ([]*entities.Box, error)

	// Authorize checks that userID owns boxID before an owner-only action.
	// Returns ErrBoxNotFound or ErrNotBoxOwner on failure.
	Authorize(ctx context.Context, userID, boxID int64, action OwnerAction) error
}

// ParticipantService manages box enrollments
type ParticipantService interface {
	// JoinBox enrolls a user in a box. Fails with ErrBoxNotFound or
	// ErrAlreadyParticipant.
	JoinBox(ctx context.Context, userID, boxID int64, name, address, wish string) (*entities.Participant, error)

	// LeaveBox removes the enrollment and any assignments involving the
	// user in that box. Idempotent.
	LeaveBox(ctx context.Context, userID, boxID int64) error

	// UpdateField updates one editable field. No-op when the participant
	// does not exist; callers should check existence first.
	UpdateField(ctx context.Context, userID, boxID int64, field entities.ParticipantField, value string) error

	// GetParticipant returns the enrollment or ErrParticipantNotFound
	GetParticipant(ctx context.Context, userID, boxID int64) (*entities.Participant, error)

	// ListParticipants returns all enrollments of a box
	ListParticipants(ctx context.Context, boxID int64) ([]*entities.Participant, error)

	// ListJoinedBoxes returns the boxes a user participates in
	ListJoinedBoxes(ctx context.Context, userID int64) ([]*entities.Box, error)

	// IsParticipant reports whether the user is enrolled in the box
	IsParticipant(ctx context.Context, userID, boxID int64) (bool, error)
}

// DrawService produces giver/receiver assignments for a box
type DrawService interface {
	// Draw computes a fresh derangement over the box's participants and
	// replaces any prior assignment set. Fails with
	// ErrNotEnoughParticipants (fewer than two participants, nothing
	// written) or ErrDrawFailed (retry budget exhausted).
	//
	// Authorization is not enforced here; callers must verify ownership
	// through BoxService.Authorize first.
	Draw(ctx context.Context, boxID int64) ([]*entities.Assignment, error)
}
