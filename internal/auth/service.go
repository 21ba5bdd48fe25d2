package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/millennial404/mesto-project-plus/internal/shared"
)

// Profile defaults applied when signup omits the optional fields.
const (
	defaultName   = "Жак-Ив Кусто"
	defaultAbout  = "Исследователь"
	defaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// Service wraps authentication business rules.
type Service struct {
	repo  Repository
	codec *TokenCodec
}

// NewService constructs a new Service.
func NewService(repo Repository, codec *TokenCodec) *Service {
	return &Service{repo: repo, codec: codec}
}

// RegisterParams carries validated signup input.
type RegisterParams struct {
	Email    string
	Password string
	Name     string
	About    string
	Avatar   string
}

// Authenticate checks email/password credentials and issues a token.
// An unknown email and a wrong password are indistinguishable to the
// caller so account existence cannot be probed. Only a missing account
// counts as a credential failure; any other repository error is an
// infrastructure fault and propagates unchanged.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.NotFound("")) {
			return "", shared.Unauthorized("invalid credentials")
		}
		return "", err
	}
	if !CheckPassword(password, user.PasswordHash) {
		return "", shared.Unauthorized("invalid credentials")
	}
	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("auth: issue token: %w", err)
	}
	return token, nil
}

// Register creates a new account with a hashed password.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	hash, err := HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        params.Email,
		PasswordHash: hash,
		Name:         params.Name,
		About:        params.About,
		Avatar:       params.Avatar,
	}
	if user.Name == "" {
		user.Name = defaultName
	}
	if user.About == "" {
		user.About = defaultAbout
	}
	if user.Avatar == "" {
		user.Avatar = defaultAvatar
	}

	return s.repo.CreateUser(ctx, user)
}
