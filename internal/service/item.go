package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Iqra544/exam/internal/domain"
)

const (
	minTitleLen       = 3
	maxDescriptionLen = 2000
)

// ItemService handles validation and ownership rules for items.
type ItemService struct {
	items domain.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(items domain.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

// ListByOwner returns the caller's items, newest first.
func (s *ItemService) ListByOwner(ctx context.Context, userID int64) ([]domain.Item, error) {
	return s.items.ListByUser(ctx, userID)
}

// Get returns a single item by ID.
func (s *ItemService) Get(ctx context.Context, id int64) (*domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

// Create validates and persists a new item owned by the caller.
func (s *ItemService) Create(ctx context.Context, userID int64, title, description string) (*domain.Item, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if err := validateItem(title, description); err != nil {
		return nil, err
	}

	item := &domain.Item{UserID: userID, Title: title, Description: description}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// Update modifies an item after checking that the caller owns it.
func (s *ItemService) Update(ctx context.Context, callerID, id int64, title, description string) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.UserID != callerID {
		return nil, domain.ErrForbidden
	}

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if err := validateItem(title, description); err != nil {
		return nil, err
	}

	item.Title = title
	item.Description = description
	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// Delete removes an item after checking that the caller owns it. Comments
// are left in place.
func (s *ItemService) Delete(ctx context.Context, callerID, id int64) error {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item.UserID != callerID {
		return domain.ErrForbidden
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func validateItem(title, description string) error {
	if len(title) < minTitleLen {
		return fmt.Errorf("%w: title must be at least %d characters", domain.ErrInvalidInput, minTitleLen)
	}
	if len(description) > maxDescriptionLen {
		return fmt.Errorf("%w: description too long", domain.ErrInvalidInput)
	}
	return nil
}
