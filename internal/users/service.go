package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/millennial404/mesto-project-plus/internal/shared"
)

// Service handles user profile business logic.
type Service struct {
	repo Repository
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all profiles.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Get returns a profile by id. A syntactically invalid id is bad input,
// not a missing resource.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, shared.BadRequest("malformed user id")
	}
	return s.repo.Get(ctx, id)
}

// UpdateProfile updates the acting principal's own name and about.
func (s *Service) UpdateProfile(ctx context.Context, principal shared.Principal, req UpdateProfileRequest) (*User, error) {
	return s.repo.UpdateProfile(ctx, principal.ID, req.Name, req.About)
}

// UpdateAvatar updates the acting principal's own avatar.
func (s *Service) UpdateAvatar(ctx context.Context, principal shared.Principal, req UpdateAvatarRequest) (*User, error) {
	return s.repo.UpdateAvatar(ctx, principal.ID, req.Avatar)
}
