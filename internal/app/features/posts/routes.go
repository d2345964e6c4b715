// internal/app/features/posts/routes.go
package posts

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/huddlehq/huddle/internal/app/system/auth"
)

// Routes is mounted under /groups/{groupID}/posts by the bootstrap
// router; the groupID parameter is resolved by each handler.
func Routes(h *Handler, tokens *sysauth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Use(tokens.RequireUser)

	r.Get("/", h.ServePostsList)
	r.Post("/", h.HandleCreatePost)

	return r
}
