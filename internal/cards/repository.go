package cards

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/millennial404/mesto-project-plus/internal/shared"
)

// Repository defines data access methods for cards.
type Repository interface {
	List(ctx context.Context) ([]Card, error)
	Get(ctx context.Context, id string) (*Card, error)
	Create(ctx context.Context, card Card) (*Card, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, cardID, userID string) (*Card, error)
	RemoveLike(ctx context.Context, cardID, userID string) (*Card, error)
}

const cardColumns = "id, name, link, owner_id, likes, created_at"

// PGRepository provides PostgreSQL backed persistence.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

func scanCard(row pgx.Row) (*Card, error) {
	var c Card
	err := row.Scan(&c.ID, &c.Name, &c.Link, &c.OwnerID, &c.Likes, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.NotFound("card not found")
		}
		return nil, err
	}
	if c.Likes == nil {
		c.Likes = []string{}
	}
	return &c, nil
}

// List returns all cards, newest first.
func (r *PGRepository) List(ctx context.Context) ([]Card, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+cardColumns+" FROM cards ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("cards: list: %w", err)
	}
	defer rows.Close()

	result := []Card{}
	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.ID, &c.Name, &c.Link, &c.OwnerID, &c.Likes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("cards: scan: %w", err)
		}
		if c.Likes == nil {
			c.Likes = []string{}
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// Get returns one card by id.
func (r *PGRepository) Get(ctx context.Context, id string) (*Card, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+cardColumns+" FROM cards WHERE id = $1", id)
	return scanCard(row)
}

// Create inserts a new card.
func (r *PGRepository) Create(ctx context.Context, card Card) (*Card, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO cards (id, name, link, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+cardColumns, card.ID, card.Name, card.Link, card.OwnerID)
	created, err := scanCard(row)
	if err != nil {
		return nil, fmt.Errorf("cards: create: %w", err)
	}
	return created, nil
}

// Delete removes a card. A missing id reports NotFound so a repeated
// delete of the same card fails cleanly.
func (r *PGRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM cards WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("cards: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.NotFound("card not found")
	}
	return nil
}

// AddLike adds userID to the card's like set. Adding an existing like is
// a no-op, mirroring set semantics.
func (r *PGRepository) AddLike(ctx context.Context, cardID, userID string) (*Card, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE cards
		SET likes = CASE WHEN $2::uuid = ANY(likes) THEN likes ELSE array_append(likes, $2::uuid) END
		WHERE id = $1
		RETURNING `+cardColumns, cardID, userID)
	return scanCard(row)
}

// RemoveLike removes userID from the card's like set.
func (r *PGRepository) RemoveLike(ctx context.Context, cardID, userID string) (*Card, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE cards
		SET likes = array_remove(likes, $2::uuid)
		WHERE id = $1
		RETURNING `+cardColumns, cardID, userID)
	return scanCard(row)
}

var _ Repository = (*PGRepository)(nil)
