package flow

import (
	"sync"
	"time"
)

// Step identifies where a user is inside a multi-message flow
type Step string

const (
	// Box creation flow
	StepCreateName        Step = "create_name"
	StepCreatePhoto       Step = "create_photo"
	StepCreateDescription Step = "create_description"

	// Joining flow
	StepJoinBoxID   Step = "join_box_id"
	StepJoinName    Step = "join_name"
	StepJoinAddress Step = "join_address"
	StepJoinWish    Step = "join_wish"

	// Participant edit flows
	StepEditName    Step = "edit_name"
	StepEditAddress Step = "edit_address"
	StepEditWish    Step = "edit_wish"

	// Owner notify flow
	StepNotifyText Step = "notify_text"
)

// State holds the staged answers of one user's active flow. Nothing is
// persisted until the final step completes; abandoning a flow loses the
// staged values and nothing else.
type State struct {
	UserID int64
	Step   Step

	// Staged creation answers
	BoxName  string
	PhotoRef string

	// Box the flow operates on (joining, edits, notify)
	BoxID int64

	// Staged joining answers
	Name    string
	Address string

	UpdatedAt time.Time
}

// Store tracks at most one active flow per user
type Store struct {
	mu     sync.RWMutex
	states map[int64]*State
}

// NewStore creates an empty flow store
func NewStore() *Store {
	return &Store{
		states: make(map[int64]*State),
	}
}

// Begin starts a flow for the user at the given step. Any previous flow of
// that user is replaced; starting a new flow abandons the old one.
func (s *Store) Begin(userID int64, step Step) *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := &State{
		UserID:    userID,
		Step:      step,
		UpdatedAt: time.Now(),
	}
	s.states[userID] = state
	return state
}

// Get retrieves the user's active flow state, or nil if none
func (s *Store) Get(userID int64) *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[userID]
}

// Advance updates the state's step and refreshes its timestamp. The caller
// mutates staged fields on the state it got from Get before advancing.
func (s *Store) Advance(state *State, step Step) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state.Step = step
	state.UpdatedAt = time.Now()
	s.states[state.UserID] = state
}

// Clear ends the user's flow. Clearing a user without a flow is a no-op.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}

// CleanupStale removes flows idle for longer than maxAge and returns how
// many were removed
func (s *Store) CleanupStale(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for userID, state := range s.states {
		if now.Sub(state.UpdatedAt) > maxAge {
			delete(s.states, userID)
			removed++
		}
	}
	return removed
}
