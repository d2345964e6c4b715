// internal/app/features/posts/list.go
package posts

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	sysauth "github.com/huddlehq/huddle/internal/app/system/auth"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
	"github.com/huddlehq/huddle/internal/domain/models"
)

// ServePostsList returns a group's posts, newest first, with author
// names attached. Only members may read a group's feed.
//
// GET /groups/{groupID}/posts
func (h *Handler) ServePostsList(w http.ResponseWriter, r *http.Request) {
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

	member, err := h.Memberships.Exists(ctx, groupID, userID)
	if err != nil {
		h.Log.Error("posts list: membership check failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}
	if !member {
		httpjson.Forbidden(w, "not a member of this group")
		return
	}

	list, err := h.Posts.ListByGroup(ctx, groupID)
	if err != nil {
		h.Log.Error("posts list failed", zap.Error(err), zap.String("group_id", groupID.Hex()))
		httpjson.InternalError(w)
		return
	}

	views, err := h.toViews(ctx, list)
	if err != nil {
		h.Log.Error("posts list: author resolve failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, views)
}

// toViews resolves author names for a page of posts in one query.
// A post whose author no longer exists keeps an empty author_name
// rather than disappearing or failing the request.
func (h *Handler) toViews(ctx context.Context, list []models.Post) ([]postView, error) {
	ids := make([]primitive.ObjectID, 0, len(list))
	seen := make(map[primitive.ObjectID]bool, len(list))
	for _, p := range list {
		if !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			ids = append(ids, p.AuthorID)
		}
	}

	names, err := h.Users.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]postView, 0, len(list))
	for _, p := range list {
		views = append(views, postView{
			ID:         p.ID.Hex(),
			GroupID:    p.GroupID.Hex(),
			AuthorID:   p.AuthorID.Hex(),
			AuthorName: names[p.AuthorID],
			Content:    p.Content,
			CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return views, nil
}
