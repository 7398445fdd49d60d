package cache

import (
	"context"
	"time"
)

// Service stores opaque values across requests.
type Service interface {
	// Get returns ErrNotFound when the key is missing or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
