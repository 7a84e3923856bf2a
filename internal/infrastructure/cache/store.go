package cache

import (
	"context"
	"time"
)

// Store is the key/value backend behind the cache-aside layer.
// Get reports a miss with found == false and a nil error; an error means the
// backend itself failed.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
}
