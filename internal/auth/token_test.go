package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millennial404/mesto-project-plus/internal/auth"
	"github.com/millennial404/mesto-project-plus/internal/shared"
)

func TestIssueAndVerify(t *testing.T) {
	codec := auth.NewTokenCodec([]byte("super-strong-secret"), time.Hour)

	token, err := codec.Issue("user-123")
	require.NoError(t, err)

	principal, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", principal.ID)
}

func TestVerifyIsIdempotent(t *testing.T) {
	codec := auth.NewTokenCodec([]byte("secret"), time.Hour)

	token, err := codec.Issue("u1")
	require.NoError(t, err)

	first, err := codec.Verify(token)
	require.NoError(t, err)
	second, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVerifyExpired(t *testing.T) {
	codec := auth.NewTokenCodec([]byte("secret"), -time.Minute)

	token, err := codec.Issue("u1")
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.True(t, errors.Is(err, shared.Unauthorized("")))
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := auth.NewTokenCodec([]byte("right-secret"), time.Hour)
	verifier := auth.NewTokenCodec([]byte("wrong-secret"), time.Hour)

	token, err := issuer.Issue("u1")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, errors.Is(err, shared.Unauthorized("")))
}

func TestVerifyMalformed(t *testing.T) {
	codec := auth.NewTokenCodec([]byte("secret"), time.Hour)

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		_, err := codec.Verify(token)
		assert.True(t, errors.Is(err, shared.Unauthorized("")), "token %q", token)
	}
}
