package cards

import (
	"context"

	"github.com/google/uuid"

	"github.com/millennial404/mesto-project-plus/internal/shared"
)

// Service handles card business rules, including the ownership check on
// destructive operations.
type Service struct {
	repo  Repository
	cache *Cache
}

// NewService builds a Service instance.
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return shared.BadRequest("malformed card id")
	}
	return nil
}

// List returns all cards through the read cache.
func (s *Service) List(ctx context.Context) ([]Card, error) {
	return s.cache.FetchList(ctx, s.repo.List)
}

// Get returns one card by id.
func (s *Service) Get(ctx context.Context, id string) (*Card, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Create inserts a card owned by the acting principal.
func (s *Service) Create(ctx context.Context, principal shared.Principal, req CreateCardRequest) (*Card, error) {
	card, err := s.repo.Create(ctx, Card{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Link:    req.Link,
		OwnerID: principal.ID,
	})
	if err != nil {
		return nil, err
	}
	s.cache.Bump(ctx)
	return card, nil
}

// Delete removes a card after the ownership check. Existence is confirmed
// first so an absent card is always NotFound, never Forbidden, and the
// owner comparison happens strictly before the destructive call.
func (s *Service) Delete(ctx context.Context, principal shared.Principal, id string) (*Card, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	card, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if card.OwnerID != principal.ID {
		return nil, shared.Forbidden("someone else's card")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.cache.Bump(ctx)
	return card, nil
}

// Like adds the acting principal to the card's like set.
func (s *Service) Like(ctx context.Context, principal shared.Principal, id string) (*Card, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	card, err := s.repo.AddLike(ctx, id, principal.ID)
	if err != nil {
		return nil, err
	}
	s.cache.Bump(ctx)
	return card, nil
}

// Unlike removes the acting principal from the card's like set.
func (s *Service) Unlike(ctx context.Context, principal shared.Principal, id string) (*Card, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	card, err := s.repo.RemoveLike(ctx, id, principal.ID)
	if err != nil {
		return nil, err
	}
	s.cache.Bump(ctx)
	return card, nil
}
