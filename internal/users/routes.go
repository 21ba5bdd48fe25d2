package users

import "github.com/go-chi/chi/v5"

// MountRoutes registers user routes. The /me routes must come before the
// {id} route so "me" is not parsed as an identifier.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/me", h.me)
	r.Patch("/me", h.updateProfile)
	r.Patch("/me/avatar", h.updateAvatar)
	r.Get("/{id}", h.get)
}
