// internal/app/features/posts/create.go
package posts

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	poststore "github.com/huddlehq/huddle/internal/app/store/posts"
	sysauth "github.com/huddlehq/huddle/internal/app/system/auth"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
	"github.com/huddlehq/huddle/internal/domain/models"
)

type createPostRequest struct {
	Content string `json:"content"`
}

// HandleCreatePost writes a post into a group's feed. Only members may
// post. Content is sanitized before storage; content that is empty
// after sanitization and trimming is rejected.
//
// POST /groups/{groupID}/posts
func (h *Handler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
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

	var req createPostRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.BadRequest(w, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	member, err := h.Memberships.Exists(ctx, groupID, userID)
	if err != nil {
		h.Log.Error("post create: membership check failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}
	if !member {
		httpjson.Forbidden(w, "not a member of this group")
		return
	}

	content := h.Sanitizer.Sanitize(req.Content)

	post, err := h.Posts.Create(ctx, groupID, userID, content)
	if err != nil {
		if errors.Is(err, poststore.ErrEmptyContent) {
			httpjson.BadRequest(w, "content is required")
			return
		}
		h.Log.Error("post create failed", zap.Error(err), zap.String("group_id", groupID.Hex()))
		httpjson.InternalError(w)
		return
	}

	views, err := h.toViews(ctx, []models.Post{post})
	if err != nil {
		h.Log.Error("post create: author resolve failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusCreated, views[0])
}
