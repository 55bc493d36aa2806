package entities

import "fmt"

// Assignment pairs a giver with the receiver they drew for a box. The full
// assignment set of a box is replaced atomically on every draw; no history of
// prior draws is kept.
type Assignment struct {
	ID         int64 `db:"id"`
	BoxID      int64 `db:"id_box"`
	GiverID    int64 `db:"santa_id"`
	ReceiverID int64 `db:"recipient_id"`
}

// ValidateAssignments checks that the assignment set forms a derangement of
// the participant set: every participant gives exactly once, receives exactly
// once, and nobody draws themself.
func ValidateAssignments(assignments []*Assignment, participantIDs []int64) error {
	if len(assignments) != len(participantIDs) {
		return fmt.Errorf("assignment count %d does not match participant count %d",
			len(assignments), len(participantIDs))
	}

	participants := make(map[int64]bool, len(participantIDs))
	for _, id := range participantIDs {
		participants[id] = true
	}

	givers := make(map[int64]bool, len(assignments))
	receivers := make(map[int64]bool, len(assignments))
	for _, a := range assignments {
		if a.GiverID == a.ReceiverID {
			return fmt.Errorf("participant %d is assigned to themself", a.GiverID)
		}
		if !participants[a.GiverID] {
			return fmt.Errorf("giver %d is not a participant", a.GiverID)
		}
		if !participants[a.ReceiverID] {
			return fmt.Errorf("receiver %d is not a participant", a.ReceiverID)
		}
		if givers[a.GiverID] {
			return fmt.Errorf("participant %d gives more than once", a.GiverID)
		}
		if receivers[a.ReceiverID] {
			return fmt.Errorf("participant %d receives more than once", a.ReceiverID)
		}
		givers[a.GiverID] = true
		receivers[a.ReceiverID] = true
	}

	return nil
}
