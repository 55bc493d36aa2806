package interfaces

import "context"

// UnitOfWork provides transactional access to repositories. All repositories
// returned by a unit of work share one database transaction, and events
// published through EventBus are held back until the transaction commits.
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and flushes pending events
	Commit() error

	// Rollback rolls back the transaction and discards pending events.
	// Safe to defer; a rollback after commit is a no-op.
	Rollback() error

	// UserRepository returns the user repository bound to this transaction
	UserRepository() UserRepository

	// BoxRepository returns the box repository bound to this transaction
	BoxRepository() BoxRepository

	// ParticipantRepository returns the participant repository bound to this transaction
	ParticipantRepository() ParticipantRepository

	// AssignmentRepository returns the assignment repository bound to this transaction
	AssignmentRepository() AssignmentRepository

	// EventBus returns the transactional event publisher
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
