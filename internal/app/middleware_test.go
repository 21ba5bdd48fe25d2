package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millennial404/mesto-project-plus/internal/app"
)

func newStackRouter(handler http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	for _, mw := range app.MiddlewareStack(app.MiddlewareConfig{
		Config: &app.Config{AppEnv: "test", AppRequestTimeout: 5 * time.Second},
	}) {
		r.Use(mw)
	}
	r.Get("/boom", handler)
	return r
}

func TestRecovererProducesJSONError(t *testing.T) {
	router := newStackRouter(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "internal server error", body["message"])
	assert.NotContains(t, res.Body.String(), "kaboom")
}

func TestSecureHeadersApplied(t *testing.T) {
	router := newStackRouter(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusNoContent, res.Code)
	assert.Equal(t, "DENY", res.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", res.Header().Get("X-Content-Type-Options"))
}
