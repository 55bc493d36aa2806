package repository

import (
	"context"
	"fmt"

	"santabox/database"
	"santabox/domain/entities"

	"github.com/jackc/pgx/v5"
)

// UserRepository implements the UserRepository interface
type UserRepository struct {
	q queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// newUserRepositoryWithTx creates a new user repository with a transaction
func newUserRepositoryWithTx(tx queryable) *UserRepository {
	return &UserRepository{q: tx}
}

// GetByID retrieves a user by their Discord ID
func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*entities.User, error) {
	query := `
		SELECT user_id, username, connection_date
		FROM users
		WHERE user_id = $1
	`

	var user entities.User
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&user.ConnectionDate,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	return &user, nil
}

// Upsert inserts the user on first contact or refreshes their username.
// The connection date is kept from the first insert.
func (r *UserRepository) Upsert(ctx context.Context, userID int64, username string) (*entities.User, error) {
	query := `
		INSERT INTO users (user_id, username, connection_date)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET username = EXCLUDED.username
		RETURNING user_id, username, connection_date
	`

	var user entities.User
	err := r.q.QueryRow(ctx, query, userID, username).Scan(
		&user.ID,
		&user.Username,
		&user.ConnectionDate,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %d: %w", userID, err)
	}

	return &user, nil
}

// GetByIDs retrieves multiple users keyed by Discord ID. Missing IDs are
// simply absent from the result.
func (r *UserRepository) GetByIDs(ctx context.Context, userIDs []int64) (map[int64]*entities.User, error) {
	if len(userIDs) == 0 {
		return map[int64]*entities.User{}, nil
	}

	query := `
		SELECT user_id, username, connection_date
		FROM users
		WHERE user_id = ANY($1)
	`

	rows, err := r.q.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	users := make(map[int64]*entities.User, len(userIDs))
	for rows.Next() {
		var user entities.User
		if err := rows.Scan(&user.ID, &user.Username, &user.ConnectionDate); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users[user.ID] = &user
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
