package poststore_test

import (
	"errors"
	"testing"

	poststore "github.com/huddlehq/huddle/internal/app/store/posts"
	"github.com/huddlehq/huddle/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	groupID := primitive.NewObjectID()
	authorID := primitive.NewObjectID()

	post, err := store.Create(ctx, groupID, authorID, "  hello group  ")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if post.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if post.Content != "hello group" {
		t.Errorf("Content: got %q, want trimmed %q", post.Content, "hello group")
	}
	if post.GroupID != groupID {
		t.Errorf("GroupID: got %v, want %v", post.GroupID, groupID)
	}
	if post.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_EmptyContent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := store.Create(ctx, primitive.NewObjectID(), primitive.NewObjectID(), content)
		if !errors.Is(err, poststore.ErrEmptyContent) {
			t.Errorf("content %q: expected ErrEmptyContent, got %v", content, err)
		}
	}
}

func TestStore_ListByGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	groupID := primitive.NewObjectID()
	otherGroup := primitive.NewObjectID()
	authorID := primitive.NewObjectID()

	for _, content := range []string{"first", "second", "third"} {
		if _, err := store.Create(ctx, groupID, authorID, content); err != nil {
			t.Fatalf("Create %q failed: %v", content, err)
		}
	}
	if _, err := store.Create(ctx, otherGroup, authorID, "elsewhere"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	posts, err := store.ListByGroup(ctx, groupID)
	if err != nil {
		t.Fatalf("ListByGroup failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].CreatedAt.After(posts[i-1].CreatedAt) {
			t.Errorf("posts out of order at index %d", i)
		}
	}
	for _, p := range posts {
		if p.GroupID != groupID {
			t.Errorf("post %v leaked from another group", p.ID)
		}
	}

	empty, err := store.ListByGroup(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("ListByGroup failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no posts for unknown group, got %d", len(empty))
	}
}
