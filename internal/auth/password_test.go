package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millennial404/mesto-project-plus/internal/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, auth.CheckPassword("s3cret!", hash))
	assert.False(t, auth.CheckPassword("wrong", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := auth.HashPassword("s3cret!")
	require.NoError(t, err)
	second, err := auth.HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
