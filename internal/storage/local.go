// Package storage persists uploaded files on the local filesystem and hands
// back the relative URL paths stored on user records.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// URLPrefix is the public path prefix under which stored files are served.
const URLPrefix = "/uploads/"

// LocalStore writes uploads into a single directory with generated,
// collision-resistant filenames. Unique names make concurrent writes safe
// without locking.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed and returns a store
// rooted there.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the directory files are written to, for static serving.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save writes data under a generated filename derived from the original name
// and returns the relative URL path ("/uploads/...") to store on the record.
// The client-supplied name is sanitized and never used as-is.
func (s *LocalStore) Save(originalName string, data []byte) (string, error) {
	name := fmt.Sprintf("%d_%s_%s", time.Now().UnixMilli(), uuid.NewString()[:8], sanitizeName(originalName))

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return URLPrefix + name, nil
}

// Remove deletes a previously stored file given its relative URL path.
// Unknown paths are ignored.
func (s *LocalStore) Remove(urlPath string) error {
	name := strings.TrimPrefix(urlPath, URLPrefix)
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("malformed upload path: %q", urlPath)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// sanitizeName reduces a client filename to a safe basename: path separators
// are stripped and anything outside [a-zA-Z0-9._-] becomes an underscore.
func sanitizeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		out = "upload"
	}
	if len(out) > 100 {
		out = out[len(out)-100:]
	}
	return out
}
