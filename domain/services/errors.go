package services

import "errors"

// Domain error taxonomy. All of these are recoverable at the flow/action
// boundary; none should terminate the process.
var (
	// ErrBoxNotFound indicates the referenced box does not exist
	ErrBoxNotFound = errors.New("box not found")

	// ErrParticipantNotFound indicates the user is not enrolled in the box
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrAlreadyParticipant indicates the user is already enrolled in the box
	ErrAlreadyParticipant = errors.New("user is already a participant of this box")

	// ErrNotBoxOwner indicates an owner-only action attempted by a non-owner
	ErrNotBoxOwner = errors.New("user is not the owner of this box")

	// ErrNotEnoughParticipants indicates a draw over fewer than two
	// participants. This is an expected outcome, not a failure.
	ErrNotEnoughParticipants = errors.New("not enough participants for a draw")

	// ErrDrawFailed indicates the draw exhausted its retry budget without
	// finding a fixed-point-free permutation. With a sane random source
	// this is effectively unreachable.
	ErrDrawFailed = errors.New("draw failed to produce a valid pairing")
)
