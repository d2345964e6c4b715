// internal/app/features/groups/create.go
package groups

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	groupstore "github.com/huddlehq/huddle/internal/app/store/groups"
	sysauth "github.com/huddlehq/huddle/internal/app/system/auth"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/slug"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
	"github.com/huddlehq/huddle/internal/domain/models"
)

type createGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HandleCreateGroup creates a group and seeds the creator's admin
// membership.
//
// POST /groups
//
// The group insert and the admin membership insert form one logical
// unit: if the membership write fails, the group is deleted again so a
// group with zero memberships is never observable.
func (h *Handler) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := sysauth.CurrentUserID(r)
	if !ok {
		httpjson.Unauthorized(w, "not signed in")
		return
	}

	var req createGroupRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.BadRequest(w, "invalid JSON body")
		return
	}

	if req.Name == "" {
		httpjson.BadRequest(w, "name is required")
		return
	}
	if slug.Make(req.Name) == "" {
		httpjson.BadRequest(w, "name must contain at least one letter or digit")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := h.Groups.Create(ctx, models.Group{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     userID,
	})
	if err != nil {
		if errors.Is(err, groupstore.ErrDuplicateSlug) {
			httpjson.BadRequest(w, "a group with this name already exists")
			return
		}
		h.Log.Error("group create failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}

	if _, err := h.Memberships.Add(ctx, group.ID, userID, models.RoleAdmin); err != nil {
		// Compensate: without its admin row the group must not exist.
		if _, delErr := h.Groups.Delete(ctx, group.ID); delErr != nil {
			h.Log.Error("compensating group delete failed",
				zap.Error(delErr),
				zap.String("group_id", group.ID.Hex()))
		}
		h.Log.Error("admin membership create failed",
			zap.Error(err),
			zap.String("group_id", group.ID.Hex()),
			zap.String("user_id", userID.Hex()))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusCreated, group)
}
