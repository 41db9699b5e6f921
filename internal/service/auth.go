package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Iqra544/exam/internal/domain"
	"github.com/Iqra544/exam/internal/token"
)

// Passwords shorter than this are ignored on profile update rather than
// rehashed.
const minPasswordLen = 6

// AuthService handles signup, login, and profile maintenance. Tokens are
// minted and checked by the injected token service; this service is the only
// place passwords are hashed or compared.
type AuthService struct {
	users      domain.UserRepository
	tokens     *token.Service
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, tokens *token.Service, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Signup creates a new user account. No session is issued; the caller must
// log in separately.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email, and password are required", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Image:        domain.DefaultImage,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns a signed session token. An unknown
// email surfaces as ErrNotFound and a wrong password as ErrBadCredentials;
// the HTTP layer keeps these distinct.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrBadCredentials
	}

	raw, err := s.tokens.Issue(user.ID, user.Name, user.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return raw, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// ProfileUpdate carries the optional fields of a profile edit. Zero values
// leave the corresponding field unchanged.
type ProfileUpdate struct {
	Name      string
	Email     string
	Password  string
	ImagePath string
}

// UpdateProfile applies the supplied fields to the user's record. The
// password is rehashed only when at least minPasswordLen characters are
// supplied; shorter values are silently ignored.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if name := strings.TrimSpace(upd.Name); name != "" {
		user.Name = name
	}
	if email := strings.TrimSpace(upd.Email); email != "" {
		user.Email = email
	}
	if len(upd.Password) >= minPasswordLen {
		hash, err := bcrypt.GenerateFromPassword([]byte(upd.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if upd.ImagePath != "" {
		user.Image = upd.ImagePath
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}
