package common

import (
	"santabox/domain/interfaces"
	"santabox/domain/services"
)

// Services bundles the domain services bound to one unit of work. Build a
// fresh bundle per interaction so every handler runs in its own transaction.
type Services struct {
	Users        interfaces.UserService
	Boxes        interfaces.BoxService
	Participants interfaces.ParticipantService
	Draw         interfaces.DrawService
}

// BuildServices constructs domain services over the unit of work's
// repositories and transactional event bus
func BuildServices(uow interfaces.UnitOfWork) Services {
	return Services{
		Users: services.NewUserService(uow.UserRepository(), uow.EventBus()),
		Boxes: services.NewBoxService(
			uow.BoxRepository(), uow.ParticipantRepository(), uow.AssignmentRepository(), uow.EventBus()),
		Participants: services.NewParticipantService(
			uow.BoxRepository(), uow.ParticipantRepository(), uow.AssignmentRepository(), uow.EventBus()),
		Draw: services.NewDrawService(
			uow.BoxRepository(), uow.ParticipantRepository(), uow.AssignmentRepository(), uow.EventBus()),
	}
}
