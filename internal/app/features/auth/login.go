// internal/app/features/auth/login.go
package auth

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/huddlehq/huddle/internal/app/system/authutil"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// invalidCredentials is the single error body for both unknown email
// and wrong password, so callers cannot probe which addresses have
// accounts.
const invalidCredentials = "invalid credentials"

// HandleLogin verifies credentials and issues a session token.
//
// POST /auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.BadRequest(w, "invalid JSON body")
		return
	}

	if req.Email == "" || req.Password == "" {
		httpjson.BadRequest(w, "email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.BadRequest(w, invalidCredentials)
			return
		}
		h.Log.Error("login: user lookup failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}

	if !authutil.CheckPassword(req.Password, user.PasswordHash) {
		httpjson.BadRequest(w, invalidCredentials)
		return
	}

	token, err := h.Tokens.IssueToken(user.ID)
	if err != nil {
		h.Log.Error("login: token issue failed", zap.Error(err), zap.String("user_id", user.ID.Hex()))
		httpjson.InternalError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, sessionResponse{
		Token: token,
		User: userResponse{
			ID:    user.ID.Hex(),
			Email: user.Email,
			Name:  user.Name,
		},
	})
}
