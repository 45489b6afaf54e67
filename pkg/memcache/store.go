package mem

import (
	"context"
	"time"
)

// Store is a string key/value cache with per-entry TTL.
type Store interface {
	// Get returns ok=false when the key is missing or expired.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
