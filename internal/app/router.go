package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/millennial404/mesto-project-plus/internal/auth"
	"github.com/millennial404/mesto-project-plus/internal/cards"
	"github.com/millennial404/mesto-project-plus/internal/observability"
	"github.com/millennial404/mesto-project-plus/internal/platform/httpx"
	"github.com/millennial404/mesto-project-plus/internal/shared"
	"github.com/millennial404/mesto-project-plus/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger       *slog.Logger
	Config       *Config
	TokenCodec   *auth.TokenCodec
	AuthHandler  *auth.Handler
	UsersHandler *users.Handler
	CardsHandler *cards.Handler
	Metrics      *observability.Metrics
}

// NewRouter constructs the chi.Router. Sign-in, sign-up, health and
// metrics stay outside the gated group; everything else requires a
// verified bearer token.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	params.AuthHandler.MountRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(params.TokenCodec))
		r.Route("/users", params.UsersHandler.MountRoutes)
		r.Route("/cards", params.CardsHandler.MountRoutes)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, nil, shared.NotFound(""))
	})

	return r
}
