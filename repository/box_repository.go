package repository

import (
	"context"
	"fmt"

	"santabox/database"
	"santabox/domain/entities"

	"github.com/jackc/pgx/v5"
)

// BoxRepository implements the BoxRepository interface
type BoxRepository struct {
	q queryable
}

// NewBoxRepository creates a new box repository
func NewBoxRepository(db *database.DB) *BoxRepository {
	return &BoxRepository{q: db.Pool}
}

// newBoxRepositoryWithTx creates a new box repository with a transaction
func newBoxRepositoryWithTx(tx queryable) *BoxRepository {
	return &BoxRepository{q: tx}
}

// Create inserts a new box and returns it with its generated ID
func (r *BoxRepository) Create(ctx context.Context, ownerID int64, name string, photoRef *string, description string) (*entities.Box, error) {
	query := `
		INSERT INTO santa_box (user_id, box_name, box_photo, box_desc)
		VALUES ($1, $2, $3, $4)
		RETURNING id_box, user_id, box_name, box_photo, box_desc
	`

	var box entities.Box
	err := r.q.QueryRow(ctx, query, ownerID, name, photoRef, description).Scan(
		&box.ID,
		&box.OwnerID,
		&box.Name,
		&box.PhotoRef,
		&box.Description,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create box for user %d: %w", ownerID, err)
	}

	return &box, nil
}

// GetByID retrieves a box by ID, or nil if it does not exist
func (r *BoxRepository) GetByID(ctx context.Context, boxID int64) (*entities.Box, error) {
	query := `
		SELECT id_box, user_id, box_name, box_photo, box_desc
		FROM santa_box
		WHERE id_box = $1
	`

	var box entities.Box
	err := r.q.QueryRow(ctx, query, boxID).Scan(
		&box.ID,
		&box.OwnerID,
		&box.Name,
		&box.PhotoRef,
		&box.Description,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get box %d: %w", boxID, err)
	}

	return &box, nil
}

// Delete removes the box row. Deleting a missing box is a no-op.
func (r *BoxRepository) Delete(ctx context.Context, boxID int64) error {
	query := `DELETE FROM santa_box WHERE id_box = $1`

	if _, err := r.q.Exec(ctx, query, boxID); err != nil {
		return fmt.Errorf("failed to delete box %d: %w", boxID, err)
	}

	return nil
}

// ListByOwner returns the boxes created by a user, newest first
func (r *BoxRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Box, error) {
	query := `
		SELECT id_box, user_id, box_name, box_photo, box_desc
		FROM santa_box
		WHERE user_id = $1
		ORDER BY id_box DESC
	`

	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boxes owned by %d: %w", ownerID, err)
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
