package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/huddlehq/huddle/internal/app/store/users"
	"github.com/huddlehq/huddle/internal/domain/models"
	"github.com/huddlehq/huddle/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := models.User{
		Name:         "  Alice Example  ",
		Email:        "Alice@Example.COM",
		PasswordHash: "not-a-real-hash",
	}

	created, err := store.Create(ctx, user)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Name != "Alice Example" {
		t.Errorf("Name: got %q, want trimmed %q", created.Name, "Alice Example")
	}
	if created.Email != "alice@example.com" {
		t.Errorf("Email: got %q, want lowercased %q", created.Email, "alice@example.com")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if created.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := models.User{Name: "First", Email: "dup@example.com", PasswordHash: "h1"}
	if _, err := store.Create(ctx, first); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Same address in a different case must still collide.
	second := models.User{Name: "Second", Email: "DUP@example.com", PasswordHash: "h2"}
	_, err := store.Create(ctx, second)
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_GetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Bob", "bob@example.com", "password123")

	// Lookup is case-insensitive because both sides normalize.
	got, err := store.GetByEmail(ctx, "BOB@Example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("ID: got %v, want %v", got.ID, user.ID)
	}

	_, err = store.GetByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("expected mongo.ErrNoDocuments for unknown email, got %v", err)
	}
}

func TestStore_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Carol", "carol@example.com", "password123")

	got, err := store.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Email != "carol@example.com" {
		t.Errorf("Email: got %q, want %q", got.Email, "carol@example.com")
	}

	_, err = store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("expected mongo.ErrNoDocuments for unknown id, got %v", err)
	}
}

func TestStore_NamesByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alice := fixtures.CreateUser(ctx, "Alice", "alice@example.com", "password123")
	bob := fixtures.CreateUser(ctx, "Bob", "bob@example.com", "password123")
	gone := primitive.NewObjectID()

	names, err := store.NamesByIDs(ctx, []primitive.ObjectID{alice.ID, bob.ID, gone})
	if err != nil {
		t.Fatalf("NamesByIDs failed: %v", err)
	}

	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(names))
	}
	if names[alice.ID] != "Alice" {
		t.Errorf("alice name: got %q", names[alice.ID])
	}
	if names[bob.ID] != "Bob" {
		t.Errorf("bob name: got %q", names[bob.ID])
	}
	if _, ok := names[gone]; ok {
		t.Error("missing user should be absent from the map")
	}
}

func TestStore_NamesByIDs_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	names, err := store.NamesByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("NamesByIDs failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected empty map, got %d entries", len(names))
	}
}
