package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/millennial404/mesto-project-plus/internal/shared"
)

// Repository defines data access methods for user profiles.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id, name, about string) (*User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (*User, error)
}

const userColumns = "id, email, name, about, avatar, created_at, updated_at"

// PGRepository provides PostgreSQL backed persistence.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.About, &u.Avatar, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.NotFound("user not found")
		}
		return nil, err
	}
	return &u, nil
}

// List returns all user profiles.
func (r *PGRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("users: list: %w", err)
	}
	defer rows.Close()

	var result []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.About, &u.Avatar, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("users: scan: %w", err)
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

// Get returns one profile by id.
func (r *PGRepository) Get(ctx context.Context, id string) (*User, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

// UpdateProfile sets name and about, returning the updated profile.
func (r *PGRepository) UpdateProfile(ctx context.Context, id, name, about string) (*User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET name = $2, about = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, name, about)
	return scanUser(row)
}

// UpdateAvatar sets the avatar URL, returning the updated profile.
func (r *PGRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET avatar = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, avatar)
	return scanUser(row)
}

var _ Repository = (*PGRepository)(nil)
