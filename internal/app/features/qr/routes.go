// internal/app/features/qr/routes.go
package qr

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/group/{id}.png", h.ServeGroupImage)
	r.Get("/join", h.ServeJoinInfo)

	return r
}
