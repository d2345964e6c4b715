// Package auth issues and verifies the bearer tokens that gate the API.
//
// Tokens are HS256 JWTs carrying the user's id with a fixed expiry set
// at issue time. There is no refresh; a client signs in again when its
// token lapses.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/huddlehq/huddle/internal/app/system/httpjson"
)

// DefaultTokenExpiry is how long an issued token stays valid.
const DefaultTokenExpiry = 7 * 24 * time.Hour

var errInvalidToken = errors.New("invalid token")

// Claims are the JWT claims carried by a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Manager signs and verifies session tokens and provides the request
// middleware that gates authenticated routes.
type Manager struct {
	secret []byte
	expiry time.Duration
	log    *zap.Logger
}

// NewManager builds a Manager. A zero expiry falls back to
// DefaultTokenExpiry.
func NewManager(secret string, expiry time.Duration, logger *zap.Logger) *Manager {
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}
	return &Manager{secret: []byte(secret), expiry: expiry, log: logger}
}

// IssueToken signs a token for the given user id.
func (m *Manager) IssueToken(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
		UserID: userID.Hex(),
	})
	return token.SignedString(m.secret)
}

// VerifyToken parses a token string and returns the user id it carries.
// Expired, malformed, and wrongly signed tokens all fail.
func (m *Manager) VerifyToken(tokenString string) (primitive.ObjectID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	if !token.Valid {
		return primitive.NilObjectID, errInvalidToken
	}
	return primitive.ObjectIDFromHex(claims.UserID)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Current-user context                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

type ctxKey string

const currentUserIDKey ctxKey = "currentUserID"

// CurrentUserID returns the authenticated user's id and a "found?" flag.
// It is only set on requests that passed RequireUser.
func CurrentUserID(r *http.Request) (primitive.ObjectID, bool) {
	id, ok := r.Context().Value(currentUserIDKey).(primitive.ObjectID)
	return id, ok
}

// WithTestUserID injects a user id into the request context. Test-only
// shortcut so handler tests can skip the middleware.
func WithTestUserID(r *http.Request, id primitive.ObjectID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserIDKey, id))
}

// RequireUser rejects requests without a valid bearer token before any
// handler logic runs. On success the user id is placed in the request
// context for CurrentUserID.
func (m *Manager) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			httpjson.Unauthorized(w, "missing bearer token")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httpjson.Unauthorized(w, "malformed authorization header")
			return
		}

		userID, err := m.VerifyToken(parts[1])
		if err != nil {
			m.log.Debug("token rejected", zap.Error(err))
			httpjson.Unauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), currentUserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
