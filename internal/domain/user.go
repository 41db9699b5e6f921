package domain

import (
	"context"
	"time"
)

// DefaultImage is the placeholder profile image assigned to new users.
const DefaultImage = "/uploads/default.png"

// User represents a registered user of the application.
// PasswordHash is never serialized to clients.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Image        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}
