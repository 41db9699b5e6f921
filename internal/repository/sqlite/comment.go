package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Iqra544/exam/internal/domain"
)

// CommentRepository implements domain.CommentRepository using SQLite.
type CommentRepository struct {
	db *sql.DB
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (item_id, author, text, created_at) VALUES (?, ?, ?, ?)`,
		comment.ItemID, comment.Author, comment.Text, now,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	comment.ID = id
	comment.CreatedAt = now
	return nil
}

// ListByItem returns an item's comments, newest first.
func (r *CommentRepository) ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, item_id, author, text, created_at
		 FROM comments WHERE item_id = ?
		 ORDER BY created_at DESC, id DESC`, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("query comments by item: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ItemID, &c.Author, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
