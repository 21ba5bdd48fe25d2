package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/millennial404/mesto-project-plus/internal/shared"
)

// TokenCodec issues and verifies signed, time-limited identity tokens.
// The signing secret and lifetime are fixed at construction; the codec
// holds no other state, so tokens carry everything needed to verify them.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec constructs a codec around the process-wide signing secret.
func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, ttl: ttl}
}

// Issue signs a token for the given subject with a fixed lifetime.
func (c *TokenCodec) Issue(subjectID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify validates the signature and expiry and resolves the principal.
// Verification is all-or-nothing: a malformed, forged or expired token
// yields the same Unauthorized failure.
func (c *TokenCodec) Verify(tokenString string) (shared.Principal, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return shared.Principal{}, shared.Unauthorized("")
	}
	return shared.Principal{ID: claims.Subject}, nil
}
