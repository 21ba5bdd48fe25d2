package observability_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/millennial404/mesto-project-plus/internal/observability"
)

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	metrics := observability.NewMetrics()

	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Get("/cards/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/cards/abc", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	res := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "mesto_http_requests_total")
	assert.Contains(t, res.Body.String(), `route="/cards/{id}"`)
	assert.Contains(t, res.Body.String(), `code="200"`)
}

func TestNilMetricsIsPassthrough(t *testing.T) {
	var metrics *observability.Metrics

	handler := metrics.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTeapot, res.Code)
}
