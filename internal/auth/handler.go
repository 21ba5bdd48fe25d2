package auth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/millennial404/mesto-project-plus/internal/platform/httpx"
	"github.com/millennial404/mesto-project-plus/internal/shared"
)

// Handler wires the public authentication endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers the public routes. They bypass the auth gate by
// construction: the router mounts them outside the gated group.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/signin", h.signIn)
	r.Post("/signup", h.signUp)
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"omitempty,min=2,max=30"`
	About    string `json:"about" validate:"omitempty,min=2,max=200"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// userResponse is the wire shape of an account; the credential hash is
// deliberately absent.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	About     string    `json:"about"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResponse(user *User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		About:     user.About,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, h.logger, shared.BadRequest(""))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, h.logger, shared.BadRequest(""))
		return
	}

	token, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, h.logger, shared.BadRequest(""))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, h.logger, shared.BadRequest(""))
		return
	}

	user, err := h.service.Register(r.Context(), RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
	})
	if err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, newUserResponse(user))
}
