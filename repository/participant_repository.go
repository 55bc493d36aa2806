package repository

import (
	"context"
	"fmt"

	"santabox/database"
	"santabox/domain/entities"

	"github.com/jackc/pgx/v5"
)

// participantColumns maps editable fields to their columns. Field values from
// user input never reach the SQL text; unknown fields are rejected here.
var participantColumns = map[entities.ParticipantField]string{
	entities.ParticipantFieldName:    "user_name",
	entities.ParticipantFieldAddress: "user_adds",
	entities.ParticipantFieldWish:    "user_wish",
}

// ParticipantRepository implements the ParticipantRepository interface
type ParticipantRepository struct {
	q queryable
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *database.DB) *ParticipantRepository {
	return &ParticipantRepository{q: db.Pool}
}

// newParticipantRepositoryWithTx creates a new participant repository with a transaction
func newParticipantRepositoryWithTx(tx queryable) *ParticipantRepository {
	return &ParticipantRepository{q: tx}
}

// Create inserts a new enrollment row and fills in its generated ID
func (r *ParticipantRepository) Create(ctx context.Context, p *entities.Participant) error {
	query := `
		INSERT INTO user_wish (user_id, user_name, user_adds, user_wish, id_box)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.q.QueryRow(ctx, query, p.UserID, p.Name, p.Address, p.Wish, p.BoxID).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create participant %d in box %d: %w", p.UserID, p.BoxID, err)
	}

	return nil
}

// Get retrieves a user's enrollment in a box, or nil if absent
func (r *ParticipantRepository) Get(ctx context.Context, userID, boxID int64) (*entities.Participant, error) {
	query := `
		SELECT id, id_box, user_id, user_name, user_adds, user_wish
		FROM user_wish
		WHERE user_id = $1 AND id_box = $2
	`

	var p entities.Participant
	err := r.q.QueryRow(ctx, query, userID, boxID).Scan(
		&p.ID,
		&p.BoxID,
		&p.UserID,
		&p.Name,
		&p.Address,
		&p.Wish,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant %d in box %d: %w", userID, boxID, err)
	}

	return &p, nil
}

// Exists reports whether the user is enrolled in the box
func (r *ParticipantRepository) Exists(ctx context.Context, userID, boxID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_wish WHERE user_id = $1 AND id_box = $2)`

	var exists bool
	if err := r.q.QueryRow(ctx, query, userID, boxID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check participation of %d in box %d: %w", userID, boxID, err)
	}

	return exists, nil
}

// Delete removes a user's enrollment. Idempotent.
func (r *ParticipantRepository) Delete(ctx context.Context, userID, boxID int64) error {
	query := `DELETE FROM user_wish WHERE user_id = $1 AND id_box = $2`

	if _, err := r.q.Exec(ctx, query, userID, boxID); err != nil {
		return fmt.Errorf("failed to delete participant %d in box %d: %w", userID, boxID, err)
	}

	return nil
}

// DeleteByBox removes all enrollments of a box
func (r *ParticipantRepository) DeleteByBox(ctx context.Context, boxID int64) error {
	query := `DELETE FROM user_wish WHERE id_box = $1`

	if _, err := r.q.Exec(ctx, query, boxID); err != nil {
		return fmt.Errorf("failed to delete participants of box %d: %w", boxID, err)
	}

	return nil
}

// UpdateField updates a single editable field of an enrollment. Returns the
// number of rows updated (0 when the participant is missing).
func (r *ParticipantRepository) UpdateField(ctx context.Context, userID, boxID int64, field entities.ParticipantField, value string) (int64, error) {
	column, ok := participantColumns[field]
	if !ok {
		return 0, fmt.Errorf("unknown participant field %q", field)
	}

	query := fmt.Sprintf(`UPDATE user_wish SET %s = $1 WHERE user_id = $2 AND id_box = $3`, column)

	result, err := r.q.Exec(ctx, query, value, userID, boxID)
	if err != nil {
		return 0, fmt.Errorf("failed to update %s for participant %d in box %d: %w", field, userID, boxID, err)
	}

	return result.RowsAffected(), nil
}

// ListByBox returns all enrollments of a box in join order
func (r *ParticipantRepository) ListByBox(ctx context.Context, boxID int64) ([]*entities.Participant, error) {
	query := `
		SELECT id, id_box, user_id, user_name, user_adds, user_wish
		FROM user_wish
		WHERE id_box = $1
		ORDER BY id
	`

	rows, err := r.q.Query(ctx, query, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants of box %d: %w", boxID, err)
	}
	defer rows.Close()

	var participants []*entities.Participant
	for rows.Next() {
		var p entities.Participant
		err := rows.Scan(
			&p.ID,
			&p.BoxID,
			&p.UserID,
			&p.Name,
			&p.Address,
			&p.Wish,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

// ListBoxesByUser returns the boxes a user participates in
func (r *ParticipantRepository) ListBoxesByUser(ctx context.Context, userID int64) ([]*entities.Box, error) {
	query := `
		SELECT b.id_box, b.user_id, b.box_name, b.box_photo, b.box_desc
		FROM santa_box b
		JOIN user_wish w ON w.id_box = b.id_box
		WHERE w.user_id = $1
		ORDER BY b.id_box DESC
	`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boxes joined by %d: %w", userID, err)
	}
	defer rows.Close()

	var boxes []*entities.Box
	for rows.Next() {
		var box entities.Box
		err := rows.Scan(
			&box.ID,
			&box.OwnerID,
			&box.Name,
			&box.PhotoRef,
			&box.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan box: %w", err)
		}
		boxes = append(boxes, &box)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate boxes: %w", err)
	}

	return boxes, nil
}
