package cache

import (
	"context"
	"time"

	"mos3ef-api/config"

	"github.com/viccon/sturdyc"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is an in-process Store backed by sturdyc. Entries are local to
// this process. sturdyc evicts by its own client-wide TTL, so each entry also
// carries an absolute expiry that is checked on read.
type MemoryStore struct {
	client *sturdyc.Client[memoryEntry]
	now    func() time.Time
}

// NewMemoryStore sizes the sturdyc client from cfg. maxTTL must cover the
// longest per-entry TTL handed to Set.
func NewMemoryStore(cfg config.CacheConfig, maxTTL time.Duration) *MemoryStore {
	client := sturdyc.New[memoryEntry](
		cfg.Capacity,
		cfg.NumShards,
		maxTTL,
		cfg.EvictionPercentage,
	)
	return &MemoryStore{client: client, now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	entry, ok := s.client.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !s.now().Before(entry.expiresAt) {
		s.client.Delete(key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.client.Set(key, memoryEntry{value: value, expiresAt: s.now().Add(ttl)})
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		s.client.Delete(key)
	}
	return nil
}

func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	_, found, err := s.Get(ctx, key)
	return found, err
}

// Size returns the number of entries held, expired or not.
func (s *MemoryStore) Size() int {
	return s.client.Size()
}
