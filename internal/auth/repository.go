package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/millennial404/mesto-project-plus/internal/shared"
)

// Repository defines persistence operations for the auth module.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user User) (*User, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// FindByEmail fetches a user record including the credential hash.
func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	const query = `
		SELECT id, email, password_hash, name, about, avatar, created_at, updated_at
		FROM users
		WHERE email = $1`

	var user User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash,
		&user.Name, &user.About, &user.Avatar,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.NotFound("user not found")
		}
		return nil, fmt.Errorf("auth: find by email: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new account. A duplicate email surfaces as a
// Conflict through the unique constraint rather than a racy pre-check.
func (r *PGRepository) CreateUser(ctx context.Context, user User) (*User, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, name, about, avatar)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, password_hash, name, about, avatar, created_at, updated_at`

	var created User
	err := r.pool.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.About, user.Avatar,
	).Scan(
		&created.ID, &created.Email, &created.PasswordHash,
		&created.Name, &created.About, &created.Avatar,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, shared.Conflict("email already exists")
		}
		return nil, fmt.Errorf("auth: create user: %w", err)
	}
	return &created, nil
}

var _ Repository = (*PGRepository)(nil)
