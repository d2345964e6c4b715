// internal/app/features/qr/join.go
package qr

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
)

type joinInfoResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ServeJoinInfo resolves a scanned invite to the group's public info so
// the join page can show what the user is about to join.
//
// GET /qr/join?groupId=...
func (h *Handler) ServeJoinInfo(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("groupId")
	if raw == "" {
		httpjson.BadRequest(w, "groupId is required")
		return
	}

	groupID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		httpjson.NotFound(w, "group not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	group, err := h.Groups.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "group not found")
			return
		}
		h.Log.Error("qr join: group lookup failed", zap.Error(err), zap.String("group_id", groupID.Hex()))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, joinInfoResponse{
		ID:          group.ID.Hex(),
		Name:        group.Name,
		Description: group.Description,
	})
}
