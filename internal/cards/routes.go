package cards

import "github.com/go-chi/chi/v5"

// MountRoutes registers card routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Put("/{id}/likes", h.like)
	r.Delete("/{id}/likes", h.unlike)
}
