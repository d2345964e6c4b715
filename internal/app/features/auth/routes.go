// internal/app/features/auth/routes.go
package auth

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/huddlehq/huddle/internal/app/system/auth"
)

func Routes(h *Handler, tokens *sysauth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", h.HandleSignup)
	r.Post("/login", h.HandleLogin)

	r.Group(func(pr chi.Router) {
		pr.Use(tokens.RequireUser)
		pr.Get("/me", h.ServeMe)
	})

	return r
}
