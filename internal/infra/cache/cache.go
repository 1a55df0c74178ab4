package cache

import (
	"context"
	"time"
)

// Cache is a key/value store with per-entry TTL. Values are JSON-encoded.
type Cache interface {
	// Get decodes the value into dest and reports whether the key was found.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
