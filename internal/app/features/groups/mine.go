// internal/app/features/groups/mine.go
package groups

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	sysauth "github.com/huddlehq/huddle/internal/app/system/auth"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
	"github.com/huddlehq/huddle/internal/domain/models"
)

// ServeMyGroups lists the caller's groups by joining the membership
// ledger to the group collection. Memberships whose group has been
// deleted drop out of the join silently.
//
// GET /groups/mine
func (h *Handler) ServeMyGroups(w http.ResponseWriter, r *http.Request) {
	userID, ok := sysauth.CurrentUserID(r)
	if !ok {
		httpjson.Unauthorized(w, "not signed in")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ids, err := h.Memberships.GroupIDsForUser(ctx, userID)
	if err != nil {
		h.Log.Error("membership lookup failed", zap.Error(err), zap.String("user_id", userID.Hex()))
		httpjson.InternalError(w)
		return
	}

	list, err := h.Groups.ListByIDs(ctx, ids)
	if err != nil {
		h.Log.Error("group lookup failed", zap.Error(err), zap.String("user_id", userID.Hex()))
		httpjson.InternalError(w)
		return
	}

	if list == nil {
		list = []models.Group{}
	}
	httpjson.Write(w, http.StatusOK, list)
}
