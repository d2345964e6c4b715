// internal/app/features/groups/join.go
package groups

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	membershipstore "github.com/huddlehq/huddle/internal/app/store/memberships"
	sysauth "github.com/huddlehq/huddle/internal/app/system/auth"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
	"github.com/huddlehq/huddle/internal/domain/models"
)

type joinResponse struct {
	Status string `json:"status"`
}

const (
	statusJoined        = "joined"
	statusAlreadyMember = "already_member"
)

// HandleJoinGroup adds the caller to a group as a member. Joining is
// idempotent: a second join, including one racing the first, reports
// already_member instead of failing.
//
// POST /groups/{groupID}/join
func (h *Handler) HandleJoinGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := sysauth.CurrentUserID(r)
	if !ok {
		httpjson.Unauthorized(w, "not signed in")
		return
	}

	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "groupID"))
	if err != nil {
		httpjson.NotFound(w, "group not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Groups.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "group not found")
			return
		}
		h.Log.Error("join: group lookup failed", zap.Error(err), zap.String("group_id", groupID.Hex()))
		httpjson.InternalError(w)
		return
	}

	_, err = h.Memberships.Add(ctx, groupID, userID, models.RoleMember)
	if err != nil {
		if errors.Is(err, membershipstore.ErrDuplicateMembership) {
			httpjson.Write(w, http.StatusOK, joinResponse{Status: statusAlreadyMember})
			return
		}
		h.Log.Error("join: membership create failed",
			zap.Error(err),
			zap.String("group_id", groupID.Hex()),
			zap.String("user_id", userID.Hex()))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, joinResponse{Status: statusJoined})
}
