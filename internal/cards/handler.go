package cards

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/millennial404/mesto-project-plus/internal/platform/httpx"
	"github.com/millennial404/mesto-project-plus/internal/shared"
)

// Handler manages card endpoints. All of them sit behind the auth gate.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

func principalOrFail(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (shared.Principal, bool) {
	principal, ok := shared.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, logger, shared.Unauthorized(""))
	}
	return principal, ok
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	card, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, card)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrFail(w, r, h.logger)
	if !ok {
		return
	}

	var req CreateCardRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, h.logger, shared.BadRequest(""))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, h.logger, shared.BadRequest(""))
		return
	}

	card, err := h.service.Create(r.Context(), principal, req)
	if err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, card)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrFail(w, r, h.logger)
	if !ok {
		return
	}

	card, err := h.service.Delete(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("card %s deleted", card.Name),
	})
}

func (h *Handler) like(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrFail(w, r, h.logger)
	if !ok {
		return
	}

	card, err := h.service.Like(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, card)
}

func (h *Handler) unlike(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalOrFail(w, r, h.logger)
	if !ok {
		return
	}

	card, err := h.service.Unlike(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, card)
}
