// internal/app/features/groups/routes.go
package groups

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/huddlehq/huddle/internal/app/system/auth"
)

func Routes(h *Handler, tokens *sysauth.Manager) chi.Router {
	r := chi.NewRouter()

	// Listing is public (see ServeGroupsList); everything that writes
	// or is scoped to the caller requires a token.
	r.Get("/", h.ServeGroupsList)

	r.Group(func(pr chi.Router) {
		pr.Use(tokens.RequireUser)

		pr.Post("/", h.HandleCreateGroup)
		pr.Get("/mine", h.ServeMyGroups)
		pr.Post("/{groupID}/join", h.HandleJoinGroup)
	})

	return r
}
