// Package cache caches rendered page bytes per (path, locale, viewport) key.
// Two backends: in-process memory (default) and Redis for multi-instance
// deployments. Entries carry a TTL and the whole cache is cleared when
// content reloads.
package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates the key is absent or expired.
	ErrNotFound = errors.New("cache: not found")
	// ErrClosed indicates the cache has been closed.
	ErrClosed = errors.New("cache: closed")
)

// Cache stores rendered page bytes with TTL expiry.
type Cache interface {
	// Get retrieves the bytes for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for ttl. A non-positive ttl stores the
	// entry without expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
