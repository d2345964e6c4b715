// internal/app/features/qr/handler.go
package qr

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	groupstore "github.com/huddlehq/huddle/internal/app/store/groups"
)

// Handler serves the QR invite surface: the join-URL-as-image endpoint
// printed on flyers and the JSON lookup the frontend join page calls
// after a scan. Both are public by design; joining itself still
// requires a signed-in user.
type Handler struct {
	Groups  *groupstore.Store
	BaseURL string // public frontend base, e.g. https://huddle.example.com
	Log     *zap.Logger
}

// NewHandler constructs a qr Handler. baseURL is the public frontend
// base URL from configuration; a trailing slash is tolerated.
func NewHandler(db *mongo.Database, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		Groups:  groupstore.New(db),
		BaseURL: strings.TrimRight(baseURL, "/"),
		Log:     logger,
	}
}

// JoinURL returns the public join link for a group. The same group id
// always yields the same URL, so re-rendered QR images stay
// scan-equivalent.
func (h *Handler) JoinURL(groupID primitive.ObjectID) string {
	return fmt.Sprintf("%s/join?groupId=%s", h.BaseURL, groupID.Hex())
}
