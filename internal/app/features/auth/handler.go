// internal/app/features/auth/handler.go
package auth

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/huddlehq/huddle/internal/app/store/users"
	sysauth "github.com/huddlehq/huddle/internal/app/system/auth"
)

// Handler is the shared dependency container for the auth feature:
// signup, login, and the current-user endpoint.
type Handler struct {
	Users  *userstore.Store
	Tokens *sysauth.Manager
	Log    *zap.Logger
}

// NewHandler constructs an auth Handler. It is called from the
// bootstrap BuildHandler function, where the DB, token manager, and
// logger are already initialized.
func NewHandler(db *mongo.Database, tokens *sysauth.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		Tokens: tokens,
		Log:    logger,
	}
}

// userResponse is the public shape of a user in auth responses.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// sessionResponse is returned by signup and login.
type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}
