package repository

import (
	"santabox/database"
	"santabox/domain/events"
	"santabox/domain/interfaces"
)

// NewTestUnitOfWorkFactory creates a unit of work factory for tests
func NewTestUnitOfWorkFactory(db *database.DB) interfaces.UnitOfWorkFactory {
	return NewUnitOfWorkFactory(db, events.NewBus())
}
