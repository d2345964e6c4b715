// internal/app/features/groups/list.go
package groups

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
	"github.com/huddlehq/huddle/internal/domain/models"
)

// ServeGroupsList lists every group, newest first. This endpoint is
// public: an invitee who scanned a QR code can browse before signing
// in, and membership still gates everything inside a group.
//
// GET /groups
func (h *Handler) ServeGroupsList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Groups.List(ctx)
	if err != nil {
		h.Log.Error("group list failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}

	if list == nil {
		list = []models.Group{}
	}
	httpjson.Write(w, http.StatusOK, list)
}
