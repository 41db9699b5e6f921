package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Iqra544/exam/internal/domain"
	"github.com/Iqra544/exam/internal/service"
)

func newTestCommentService(t *testing.T) (*service.CommentService, *service.ItemService, int64) {
	t.Helper()
	auth, _, db := newTestAuthService(t)
	ctx := context.Background()

	owner, err := auth.Signup(ctx, "Owner", "commenter@example.com", "secret1")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	return service.NewCommentService(db.Comments(), db.Items()),
		service.NewItemService(db.Items()),
		owner.ID
}

func TestCommentService_Create(t *testing.T) {
	comments, items, ownerID := newTestCommentService(t)
	ctx := context.Background()

	item, err := items.Create(ctx, ownerID, "commented", "")
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}

	comment, err := comments.Create(ctx, item.ID, "Bob", "Nice")
	if err != nil {
		t.Fatalf("Create comment: %v", err)
	}
	if comment.ItemID != item.ID {
		t.Fatalf("expected item %d, got %d", item.ID, comment.ItemID)
	}
}

func TestCommentService_Create_UnknownItem(t *testing.T) {
	comments, _, _ := newTestCommentService(t)

	_, err := comments.Create(context.Background(), 9999, "Bob", "Nice")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCommentService_Create_MissingFields(t *testing.T) {
	comments, items, ownerID := newTestCommentService(t)
	ctx := context.Background()

	item, err := items.Create(ctx, ownerID, "commented", "")
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}

	if _, err := comments.Create(ctx, item.ID, "", "text"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing author, got %v", err)
	}
	if _, err := comments.Create(ctx, item.ID, "Bob", "  "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank text, got %v", err)
	}
}

func TestCommentService_ListByItem(t *testing.T) {
	comments, items, ownerID := newTestCommentService(t)
	ctx := context.Background()

	item, err := items.Create(ctx, ownerID, "commented", "")
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}

	for _, text := range []string{"one", "two"} {
		if _, err := comments.Create(ctx, item.ID, "Bob", text); err != nil {
			t.Fatalf("Create comment: %v", err)
		}
	}

	got, err := comments.ListByItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("ListByItem: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(got))
	}
	if got[0].Text != "two" {
		t.Fatalf("expected newest first, got %q", got[0].Text)
	}

	if _, err := comments.ListByItem(ctx, 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown item, got %v", err)
	}
}
