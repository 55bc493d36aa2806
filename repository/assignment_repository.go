package repository

import (
	"context"
	"fmt"

	"santabox/database"
	"santabox/domain/entities"
)

// AssignmentRepository implements the AssignmentRepository interface
type AssignmentRepository struct {
	q queryable
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *database.DB) *AssignmentRepository {
	return &AssignmentRepository{q: db.Pool}
}

// newAssignmentRepositoryWithTx creates a new assignment repository with a transaction
func newAssignmentRepositoryWithTx(tx queryable) *AssignmentRepository {
	return &AssignmentRepository{q: tx}
}

// ReplaceForBox atomically swaps the box's assignment set for the given
// pairs. A redraw fully replaces, never merges. Callers run this inside a
// unit of work so the delete and inserts commit together.
func (r *AssignmentRepository) ReplaceForBox(ctx context.Context, boxID int64, assignments []*entities.Assignment) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM santa_recipient WHERE id_box = $1`, boxID); err != nil {
		return fmt.Errorf("failed to clear assignments of box %d: %w", boxID, err)
	}

	query := `
		INSERT INTO santa_recipient (santa_id, recipient_id, id_box)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	for _, a := range assignments {
		if err := r.q.QueryRow(ctx, query, a.GiverID, a.ReceiverID, boxID).Scan(&a.ID); err != nil {
			return fmt.Errorf("failed to insert assignment %d -> %d in box %d: %w",
				a.GiverID, a.ReceiverID, boxID, err)
		}
	}

	return nil
}

// ListByBox returns the current assignment set of a box
func (r *AssignmentRepository) ListByBox(ctx context.Context, boxID int64) ([]*entities.Assignment, error) {
	query := `
		SELECT id, id_box, santa_id, recipient_id
		FROM santa_recipient
		WHERE id_box = $1
		ORDER BY id
	`

	rows, err := r.q.Query(ctx, query, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments of box %d: %w", boxID, err)
	}
	defer rows.Close()

	var assignments []*entities.Assignment
	for rows.Next() {
		var a entities.Assignment
		err := rows.Scan(
			&a.ID,
			&a.BoxID,
			&a.GiverID,
			&a.ReceiverID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignments: %w", err)
	}

	return assignments, nil
}

// DeleteByBox removes all assignments of a box
func (r *AssignmentRepository) DeleteByBox(ctx context.Context, boxID int64) error {
	query := `DELETE FROM santa_recipient WHERE id_box = $1`

	if _, err := r.q.Exec(ctx, query, boxID); err != nil {
		return fmt.Errorf("failed to delete assignments of box %d: %w", boxID, err)
	}

	return nil
}

// DeleteForUser removes assignments where the user is giver or receiver
func (r *AssignmentRepository) DeleteForUser(ctx context.Context, userID, boxID int64) error {
	query := `
		DELETE FROM santa_recipient
		WHERE id_box = $1 AND (santa_id = $2 OR recipient_id = $2)
	`

	if _, err := r.q.Exec(ctx, query, boxID, userID); err != nil {
		return fmt.Errorf("failed to delete assignments of user %d in box %d: %w", userID, boxID, err)
	}

	return nil
}
