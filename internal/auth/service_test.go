package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millennial404/mesto-project-plus/internal/auth"
	"github.com/millennial404/mesto-project-plus/internal/shared"
)

type stubRepo struct {
	user      *auth.User
	findErr   error
	createErr error
	created   *auth.User
}

func (s *stubRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.user == nil || s.user.Email != email {
		return nil, shared.NotFound("user not found")
	}
	return s.user, nil
}

func (s *stubRepo) CreateUser(ctx context.Context, user auth.User) (*auth.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &user
	return &user, nil
}

func newService(repo auth.Repository) (*auth.Service, *auth.TokenCodec) {
	codec := auth.NewTokenCodec([]byte("test-secret"), 24*time.Hour)
	return auth.NewService(repo, codec), codec
}

func TestAuthenticateIssuesVerifiableToken(t *testing.T) {
	hash, err := auth.HashPassword("s3cret!")
	require.NoError(t, err)
	service, codec := newService(&stubRepo{user: &auth.User{ID: "u1", Email: "a@x.com", PasswordHash: hash}})

	token, err := service.Authenticate(context.Background(), "a@x.com", "s3cret!")
	require.NoError(t, err)

	principal, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", principal.ID)
}

// An unknown email and a wrong password must produce the same failure so
// account existence cannot be probed through sign-in.
func TestAuthenticateFailuresAreUniform(t *testing.T) {
	hash, err := auth.HashPassword("s3cret!")
	require.NoError(t, err)
	service, _ := newService(&stubRepo{user: &auth.User{ID: "u1", Email: "a@x.com", PasswordHash: hash}})

	_, unknownErr := service.Authenticate(context.Background(), "nobody@x.com", "s3cret!")
	_, wrongErr := service.Authenticate(context.Background(), "a@x.com", "wrong")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.True(t, errors.Is(unknownErr, shared.Unauthorized("")))
	assert.True(t, errors.Is(wrongErr, shared.Unauthorized("")))
}

// A repository fault is not a credential failure: it must reach the
// caller unchanged so the sink reports it as a 500, not a 401.
func TestAuthenticatePropagatesRepositoryFault(t *testing.T) {
	fault := errors.New("pg: connection refused")
	service, _ := newService(&stubRepo{findErr: fault})

	_, err := service.Authenticate(context.Background(), "a@x.com", "s3cret!")
	require.Error(t, err)
	assert.False(t, errors.Is(err, shared.Unauthorized("")))
	assert.True(t, errors.Is(err, fault))
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := &stubRepo{}
	service, _ := newService(repo)

	user, err := service.Register(context.Background(), auth.RegisterParams{
		Email:    "a@x.com",
		Password: "s3cret!",
		Name:     "Ada",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "s3cret!", user.PasswordHash)
	assert.True(t, auth.CheckPassword("s3cret!", user.PasswordHash))
}

func TestRegisterAppliesProfileDefaults(t *testing.T) {
	repo := &stubRepo{}
	service, _ := newService(repo)

	user, err := service.Register(context.Background(), auth.RegisterParams{
		Email:    "a@x.com",
		Password: "s3cret!",
	})
	require.NoError(t, err)

	assert.Equal(t, "Жак-Ив Кусто", user.Name)
	assert.Equal(t, "Исследователь", user.About)
	assert.NotEmpty(t, user.Avatar)
}

func TestRegisterPropagatesConflict(t *testing.T) {
	service, _ := newService(&stubRepo{createErr: shared.Conflict("email already exists")})

	_, err := service.Register(context.Background(), auth.RegisterParams{
		Email:    "a@x.com",
		Password: "s3cret!",
	})
	assert.True(t, errors.Is(err, shared.Conflict("")))
}
