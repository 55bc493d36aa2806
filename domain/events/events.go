package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeUserCreated       EventType = "user_created"
	EventTypeBoxCreated        EventType = "box_created"
	EventTypeBoxDeleted        EventType = "box_deleted"
	EventTypeParticipantJoined EventType = "participant_joined"
	EventTypeParticipantLeft   EventType = "participant_left"
	EventTypeDrawCompleted     EventType = "draw_completed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// UserCreatedEvent represents a user interacting with the bot for the first time
type UserCreatedEvent struct {
	UserID   int64
	Username string
}

func (e UserCreatedEvent) Type() EventType {
	return EventTypeUserCreated
}

// BoxCreatedEvent represents a newly created exchange box
type BoxCreatedEvent struct {
	BoxID   int64
	OwnerID int64
	BoxName string
}

func (e BoxCreatedEvent) Type() EventType {
	return EventTypeBoxCreated
}

// BoxDeletedEvent represents a box deleted by its owner. PhotoRef carries
// the stored photo reference, if any, so consumers can release the file.
type BoxDeletedEvent struct {
	BoxID    int64
	OwnerID  int64
	PhotoRef *string
}

func (e BoxDeletedEvent) Type() EventType {
	return EventTypeBoxDeleted
}

// ParticipantJoinedEvent represents a user joining a box
type ParticipantJoinedEvent struct {
	BoxID   int64
	BoxName string
	OwnerID int64
	UserID  int64
	Name    string // display name entered at join time
}

func (e ParticipantJoinedEvent) Type() EventType {
	return EventTypeParticipantJoined
}

// ParticipantLeftEvent represents a user cancelling their participation
type ParticipantLeftEvent struct {
	BoxID  int64
	UserID int64
}

func (e ParticipantLeftEvent) Type() EventType {
	return EventTypeParticipantLeft
}

// AssignmentPair names the receiver a giver drew. ReceiverName is the
// display name the receiver entered when joining the box.
type AssignmentPair struct {
	GiverID      int64
	ReceiverID   int64
	ReceiverName string
}

// DrawCompletedEvent represents a finished draw for a box. Pairs carry
// everything the notifier needs to tell each giver who they drew.
type DrawCompletedEvent struct {
	BoxID   int64
	BoxName string
	Pairs   []AssignmentPair
}

func (e DrawCompletedEvent) Type() EventType {
	return EventTypeDrawCompleted
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	// Call handlers asynchronously to avoid blocking the emitter
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// TransactionalBus stashes events published during a unit of work and only
// forwards them to the real bus after the transaction commits.
type TransactionalBus struct {
	real    *Bus
	pending []Event
}

// NewTransactionalBus creates a transactional bus over the given bus
func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

// Publish queues an event until Flush or Discard
func (b *TransactionalBus) Publish(e Event) error {
	b.pending = append(b.pending, e)
	return nil
}

// Flush emits all pending events. Called after a successful commit.
func (b *TransactionalBus) Flush(ctx context.Context) {
	// Events outlive the transaction; emit with a background context so a
	// cancelled request context does not swallow notifications.
	eventCtx := context.Background()
	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
}

// Discard drops all pending events. Called after rollback.
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
