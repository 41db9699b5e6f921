package domain

import "context"

// Database defines lifecycle operations for the underlying database.
// The handle is constructed and injected from main; nothing in the
// application reaches for an ambient global connection.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
