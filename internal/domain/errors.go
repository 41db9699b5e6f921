package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrInvalidInput   = errors.New("invalid input")
	ErrBadCredentials = errors.New("invalid credentials")
	ErrForbidden      = errors.New("forbidden")
)
