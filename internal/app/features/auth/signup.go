// internal/app/features/auth/signup.go
package auth

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	userstore "github.com/huddlehq/huddle/internal/app/store/users"
	"github.com/huddlehq/huddle/internal/app/system/authutil"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
	"github.com/huddlehq/huddle/internal/domain/models"
)

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// HandleSignup creates an account and issues a session token.
//
// POST /auth/signup
//
// The raw password is hashed before the store ever sees the user, and
// is never logged.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.BadRequest(w, "invalid JSON body")
		return
	}

	if req.Email == "" || req.Name == "" || req.Password == "" {
		httpjson.BadRequest(w, "email, name, and password are required")
		return
	}
	if err := authutil.ValidatePassword(req.Password); err != nil {
		httpjson.BadRequest(w, err.Error())
		return
	}

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		h.Log.Error("password hashing failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.Create(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.BadRequest(w, "email already in use")
			return
		}
		h.Log.Error("signup: user create failed", zap.Error(err))
		httpjson.InternalError(w)
		return
	}

	token, err := h.Tokens.IssueToken(user.ID)
	if err != nil {
		h.Log.Error("signup: token issue failed", zap.Error(err), zap.String("user_id", user.ID.Hex()))
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
