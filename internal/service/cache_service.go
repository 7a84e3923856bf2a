package service

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"mos3ef-api/internal/infrastructure/cache"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// CacheStats is a snapshot of the cache-aside counters.
// Computes counts calls into the compute function, i.e. repository fetches.
type CacheStats struct {
	Hits     int64 `json:"hits"`
	Misses   int64 `json:"misses"`
	Computes int64 `json:"computes"`
	Errors   int64 `json:"errors"`
}

// CacheService implements cache-aside over a cache.Store. Values are stored
// as JSON so the memory and Redis backends behave the same. A failing store
// never fails a request: reads fall through to the compute function.
type CacheService struct {
	store cache.Store
	log   *logrus.Logger
	group singleflight.Group

	hits     atomic.Int64
	misses   atomic.Int64
	computes atomic.Int64
	errors   atomic.Int64
}

func NewCacheService(store cache.Store, log *logrus.Logger) *CacheService {
	return &CacheService{
		store: store,
		log:   log,
	}
}

// Stats returns the current counters.
func (c *CacheService) Stats() CacheStats {
	return CacheStats{
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Computes: c.computes.Load(),
		Errors:   c.errors.Load(),
	}
}

// Store exposes the backing store for components that need raw key access.
func (c *CacheService) Store() cache.Store {
	return c.store
}

// computed is what a singleflight call hands to every waiting caller.
// raw is only set when the value could not be encoded.
type computed struct {
	encoded []byte
	raw     interface{}
}

// GetOrCompute returns the value cached under key, or runs compute, caches its
// result for ttl and returns it. Concurrent misses on one key share a single
// compute call. Errors from compute are returned and never cached.
func GetOrCompute[T any](ctx context.Context, c *CacheService, key string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if raw, ok := c.lookup(ctx, key); ok {
		var cached T
		err := json.Unmarshal(raw, &cached)
		if err == nil {
			c.hits.Add(1)
			return cached, nil
		}
		c.log.WithField("key", key).Warnf("Failed to decode cached value: %+v", err)
		c.Invalidate(ctx, key)
	}
	c.misses.Add(1)

	shared, err, _ := c.group.Do(key, func() (interface{}, error) {
		c.computes.Add(1)
		result, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		encoded, err := json.Marshal(result)
		if err != nil {
			c.log.WithField("key", key).Warnf("Failed to encode value for cache: %+v", err)
			return computed{raw: result}, nil
		}

		if err := c.store.Set(ctx, key, encoded, ttl); err != nil {
			c.errors.Add(1)
			c.log.WithField("key", key).Warnf("Failed to write cache entry: %+v", err)
		}
		return computed{encoded: encoded}, nil
	})
	if err != nil {
		return zero, err
	}

	res := shared.(computed)
	if res.encoded == nil {
		return res.raw.(T), nil
	}

	// Every caller decodes its own copy, identical to what later hits return.
	var out T
	if err := json.Unmarshal(res.encoded, &out); err != nil {
		return zero, err
	}
	return out, nil
}

func (c *CacheService) lookup(ctx context.Context, key string) ([]byte, bool) {
	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.errors.Add(1)
		c.log.WithField("key", key).Warnf("Cache unavailable, reading through: %+v", err)
		return nil, false
	}
	return raw, found
}

// Invalidate removes keys. Failures are logged; the entries then expire by TTL.
// A compute already in flight for a key still writes its result after the
// delete, so a read that began before a write may re-cache the old value until
// its TTL runs out (last writer wins).
func (c *CacheService) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	for _, key := range keys {
		c.group.Forget(key)
	}
	if err := c.store.Delete(ctx, keys...); err != nil {
		c.errors.Add(1)
		c.log.WithField("keys", len(keys)).Warnf("Failed to invalidate cache keys: %+v", err)
	}
}

// Put stores value under key, overwriting any entry.
func (c *CacheService) Put(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, key, encoded, ttl)
}
