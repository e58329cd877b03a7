package ports

import (
	"context"
	"time"
)

// Cache abstracts the summary cache. Redis in production, an in-memory
// fallback when Redis is unavailable.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}
