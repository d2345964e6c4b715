// internal/app/features/groups/handler.go
package groups

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	groupstore "github.com/huddlehq/huddle/internal/app/store/groups"
	membershipstore "github.com/huddlehq/huddle/internal/app/store/memberships"
)

// Handler is the shared dependency container for the groups feature:
// create, list, per-user list, and join.
type Handler struct {
	Groups      *groupstore.Store
	Memberships *membershipstore.Store
	Log         *zap.Logger
}

// NewHandler constructs a groups Handler. It is typically called from
// the bootstrap BuildHandler function, where the application's DB and
// logger are already initialized.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Groups:      groupstore.New(db),
		Memberships: membershipstore.New(db),
		Log:         logger,
	}
}
