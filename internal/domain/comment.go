package domain

import (
	"context"
	"time"
)

// Comment is a child of an item. The author is a free-text display name,
// not necessarily a registered user. Comments are never updated.
type Comment struct {
	ID        int64
	ItemID    int64
	Author    string
	Text      string
	CreatedAt time.Time
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByItem(ctx context.Context, itemID int64) ([]Comment, error)
}
