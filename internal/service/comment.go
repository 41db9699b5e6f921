package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Iqra544/exam/internal/domain"
)

// CommentService handles comment creation and listing. Comments require no
// session; anyone supplying an author name and text may post on an existing
// item.
type CommentService struct {
	comments domain.CommentRepository
	items    domain.ItemRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments domain.CommentRepository, items domain.ItemRepository) *CommentService {
	return &CommentService{comments: comments, items: items}
}

// ListByItem returns an item's comments, newest first. The parent item must
// exist.
func (s *CommentService) ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.comments.ListByItem(ctx, itemID)
}

// Create posts a comment on an existing item.
func (s *CommentService) Create(ctx context.Context, itemID int64, author, text string) (*domain.Comment, error) {
	author = strings.TrimSpace(author)
	text = strings.TrimSpace(text)
	if author == "" || text == "" {
		return nil, fmt.Errorf("%w: author and comment text are required", domain.ErrInvalidInput)
	}

	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{ItemID: itemID, Author: author, Text: text}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}
