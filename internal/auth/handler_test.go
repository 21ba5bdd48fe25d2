package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millennial404/mesto-project-plus/internal/auth"
	"github.com/millennial404/mesto-project-plus/internal/shared"
)

func newAuthRouter(repo auth.Repository) http.Handler {
	service, _ := newService(repo)
	handler := auth.NewHandler(nil, service)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestSignUpReturnsUserWithoutPassword(t *testing.T) {
	router := newAuthRouter(&stubRepo{})

	res := postJSON(t, router, "/signup", `{"email":"a@x.com","password":"s3cret!"}`)
	require.Equal(t, http.StatusCreated, res.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "a@x.com", body["email"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, res.Body.String(), "s3cret!")
}

func TestSignUpDuplicateEmail(t *testing.T) {
	router := newAuthRouter(&stubRepo{createErr: shared.Conflict("email already exists")})

	res := postJSON(t, router, "/signup", `{"email":"a@x.com","password":"s3cret!"}`)
	assert.Equal(t, http.StatusConflict, res.Code)
}

func TestSignUpValidation(t *testing.T) {
	router := newAuthRouter(&stubRepo{})

	cases := map[string]string{
		"malformed body": `{"email":`,
		"missing email":  `{"password":"s3cret!"}`,
		"bad email":      `{"email":"nope","password":"s3cret!"}`,
		"short name":     `{"email":"a@x.com","password":"s3cret!","name":"x"}`,
		"bad avatar url": `{"email":"a@x.com","password":"s3cret!","avatar":"not-a-url"}`,
	}
	for name, body := range cases {
		res := postJSON(t, router, "/signup", body)
		assert.Equal(t, http.StatusBadRequest, res.Code, name)
	}
}

func TestSignInReturnsToken(t *testing.T) {
	hash, err := auth.HashPassword("s3cret!")
	require.NoError(t, err)
	router := newAuthRouter(&stubRepo{user: &auth.User{ID: "u1", Email: "a@x.com", PasswordHash: hash}})

	res := postJSON(t, router, "/signin", `{"email":"a@x.com","password":"s3cret!"}`)
	require.Equal(t, http.StatusOK, res.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])
}

func TestSignInWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret!")
	require.NoError(t, err)
	router := newAuthRouter(&stubRepo{user: &auth.User{ID: "u1", Email: "a@x.com", PasswordHash: hash}})

	res := postJSON(t, router, "/signin", `{"email":"a@x.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, float64(http.StatusUnauthorized), body["statusCode"])
	assert.Equal(t, "invalid credentials", body["message"])
}
