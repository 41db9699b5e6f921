// Package token issues and verifies the signed session tokens that back
// cookie-based authentication. Tokens are self-contained HS256 JWTs; the
// server keeps no session state and no revocation list, so a token remains
// verifiable until its natural expiry.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures all match ErrInvalid via errors.Is. The specific
// reasons are kept distinguishable for diagnostics but are collapsed to a
// single outcome at the HTTP boundary.
var (
	ErrInvalid   = errors.New("invalid token")
	ErrMalformed = fmt.Errorf("%w: malformed", ErrInvalid)
	ErrExpired   = fmt.Errorf("%w: expired", ErrInvalid)
	ErrSignature = fmt.Errorf("%w: bad signature", ErrInvalid)
)

// Claims is the identity carried by a session token.
type Claims struct {
	UserID int64
	Name   string
	Email  string
}

// Service signs and verifies session tokens with a process-wide secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service. The secret must be non-empty; callers
// are expected to fail at startup otherwise.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue produces a compact signed token carrying the given identity and the
// configured expiry.
func (s *Service) Issue(userID int64, name, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10),
		"name":  name,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature integrity and expiry and returns the embedded
// claims. It is pure and side-effect-free; it never extends expiry.
func (s *Service) Verify(raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return Claims{}, classify(err)
	}

	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return Claims{}, ErrMalformed
	}

	sub, err := mc.GetSubject()
	if err != nil {
		return Claims{}, ErrMalformed
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return Claims{}, ErrMalformed
	}

	name, _ := mc["name"].(string)
	email, _ := mc["email"].(string)

	return Claims{UserID: userID, Name: name, Email: email}, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
}
