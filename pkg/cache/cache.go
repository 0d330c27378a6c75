// Package cache provides a small key/value store with expiry.
//
// Entries are opaque bytes. [FileCache] persists them as JSON envelopes under
// a directory, sharded by key hash; [NullCache] stores nothing and is used
// when no cache directory is available. The backup package is the main
// consumer.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Cache stores byte values under string keys.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// DefaultDir returns the per-user cache directory for tspath, honouring
// XDG_CACHE_HOME when set.
func DefaultDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "tspath"), nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "tspath"), nil
}
