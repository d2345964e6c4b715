package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/huddlehq/huddle/internal/app/features/auth"
	sysauth "github.com/huddlehq/huddle/internal/app/system/auth"
	"github.com/huddlehq/huddle/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*auth.Handler, *sysauth.Manager, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	tokens := sysauth.NewManager("test-secret-for-tests-only", 0, logger)
	handler := auth.NewHandler(db, tokens, logger)
	fixtures := testutil.NewFixtures(t, db)
	return handler, tokens, fixtures
}

type sessionBody struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

type errorBody struct {
	Error string `json:"error"`
}

func TestHandleSignup_Success(t *testing.T) {
	handler, tokens, _ := newTestHandler(t)

	body := `{"email":"New@Example.com","name":"New User","password":"password123"}`
	req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.HandleSignup(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got sessionBody
	testutil.DecodeJSONBody(t, rec.Body.Bytes(), &got)

	if got.Token == "" {
		t.Error("expected a session token")
	}
	if got.User.Email != "new@example.com" {
		t.Errorf("email: got %q, want normalized %q", got.User.Email, "new@example.com")
	}
	if got.User.Name != "New User" {
		t.Errorf("name: got %q", got.User.Name)
	}

	// The token must verify and carry the new user's id.
	userID, err := tokens.VerifyToken(got.Token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if userID.Hex() != got.User.ID {
		t.Errorf("token user id %s does not match response id %s", userID.Hex(), got.User.ID)
	}
}

func TestHandleSignup_MissingFields(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	cases := []struct {
		name string
		body string
	}{
		{"no email", `{"name":"A","password":"password123"}`},
		{"no name", `{"email":"a@example.com","password":"password123"}`},
		{"no password", `{"email":"a@example.com","name":"A"}`},
		{"short password", `{"email":"a@example.com","name":"A","password":"short"}`},
		{"bad json", `{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			handler.HandleSignup(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}
		})
	}
}

func TestHandleSignup_DuplicateEmail(t *testing.T) {
	handler, _, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Existing", "taken@example.com", "password123")

	body := `{"email":"TAKEN@example.com","name":"Late Comer","password":"password123"}`
	req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleSignup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var got errorBody
	testutil.DecodeJSONBody(t, rec.Body.Bytes(), &got)
	if got.Error != "email already in use" {
		t.Errorf("error: got %q", got.Error)
	}
}

func TestHandleLogin_Success(t *testing.T) {
	handler, tokens, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Dana", "dana@example.com", "correct-horse")

	body := `{"email":"Dana@Example.com","password":"correct-horse"}`
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got sessionBody
	testutil.DecodeJSONBody(t, rec.Body.Bytes(), &got)

	if got.User.ID != user.ID.Hex() {
		t.Errorf("user id: got %s, want %s", got.User.ID, user.ID.Hex())
	}

	userID, err := tokens.VerifyToken(got.Token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if userID != user.ID {
		t.Errorf("token user id: got %v, want %v", userID, user.ID)
	}
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	handler, _, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Dana", "dana@example.com", "correct-horse")

	// Unknown email and wrong password must be indistinguishable.
	cases := []struct {
		name string
		body string
	}{
		{"unknown email", `{"email":"nobody@example.com","password":"correct-horse"}`},
		{"wrong password", `{"email":"dana@example.com","password":"wrong-horse"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			handler.HandleLogin(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}

			var got errorBody
			testutil.DecodeJSONBody(t, rec.Body.Bytes(), &got)
			if got.Error != "invalid credentials" {
				t.Errorf("error: got %q, want %q", got.Error, "invalid credentials")
			}
		})
	}
}

func TestServeMe(t *testing.T) {
	handler, _, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Eve", "eve@example.com", "password123")

	req := httptest.NewRequest("GET", "/auth/me", nil)
	req = sysauth.WithTestUserID(req, user.ID)

	rec := httptest.NewRecorder()
	handler.ServeMe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	testutil.DecodeJSONBody(t, rec.Body.Bytes(), &got)

	if got.User.ID != user.ID.Hex() {
		t.Errorf("id: got %s, want %s", got.User.ID, user.ID.Hex())
	}
	if got.User.Email != "eve@example.com" {
		t.Errorf("email: got %q", got.User.Email)
	}
}

func TestServeMe_DeletedAccount(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	// A valid token for an account that no longer exists must not
	// authenticate.
	req := httptest.NewRequest("GET", "/auth/me", nil)
	req = sysauth.WithTestUserID(req, primitive.NewObjectID())

	rec := httptest.NewRecorder()
	handler.ServeMe(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestServeMe_NoUser(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeMe(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}
