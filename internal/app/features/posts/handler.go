// internal/app/features/posts/handler.go
package posts

import (
	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	membershipstore "github.com/huddlehq/huddle/internal/app/store/memberships"
	poststore "github.com/huddlehq/huddle/internal/app/store/posts"
	userstore "github.com/huddlehq/huddle/internal/app/store/users"
)

// Handler is the shared dependency container for the posts feature.
// Post content is untrusted user input rendered by the dashboard, so
// every write passes through the strict sanitizer first.
type Handler struct {
	Posts       *poststore.Store
	Memberships *membershipstore.Store
	Users       *userstore.Store
	Sanitizer   *bluemonday.Policy
	Log         *zap.Logger
}

// NewHandler constructs a posts Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Posts:       poststore.New(db),
		Memberships: membershipstore.New(db),
		Users:       userstore.New(db),
		Sanitizer:   bluemonday.StrictPolicy(),
		Log:         logger,
	}
}

// postView is a post as the API returns it, with the author's display
// name resolved from the users collection.
type postView struct {
	ID         string `json:"id"`
	GroupID    string `json:"group_id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}
