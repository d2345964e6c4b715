// internal/app/features/auth/me.go
package auth

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	sysauth "github.com/huddlehq/huddle/internal/app/system/auth"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
)

type meResponse struct {
	User userResponse `json:"user"`
}

// ServeMe returns the authenticated user's profile. The user is always
// re-fetched so a deleted account stops authenticating even while its
// token is still unexpired.
//
// GET /auth/me
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := sysauth.CurrentUserID(r)
	if !ok {
		httpjson.Unauthorized(w, "not signed in")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Unauthorized(w, "account no longer exists")
			return
		}
		h.Log.Error("me: user lookup failed", zap.Error(err), zap.String("user_id", userID.Hex()))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, meResponse{
		User: userResponse{
			ID:    user.ID.Hex(),
			Email: user.Email,
			Name:  user.Name,
		},
	})
}
