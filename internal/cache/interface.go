package cache

import (
	"context"
	"time"
)

// Cache defines the interface for caching operations.
type Cache interface {
	// Set stores a value in cache with TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get retrieves a value from cache. Returns false if key doesn't exist.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// PushCapped prepends a value to a list, keeps only the newest maxLen entries
	// and sets the list's TTL.
	PushCapped(ctx context.Context, key string, value interface{}, maxLen int64, ttl time.Duration) error
}

// Ensure Redis implements Cache interface
var _ Cache = (*Redis)(nil)
