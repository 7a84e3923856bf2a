package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"mos3ef-api/config"
	"mos3ef-api/internal/infrastructure/cache"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestCacheService(t *testing.T) *CacheService {
	t.Helper()
	cfg := config.CacheConfig{Capacity: 1000, NumShards: 4, EvictionPercentage: 10}
	return NewCacheService(cache.NewMemoryStore(cfg, time.Hour), newTestLogger())
}

var errStoreDown = errors.New("connection refused")

// failingStore simulates an unreachable cache backend.
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errStoreDown
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errStoreDown
}

func (failingStore) Delete(context.Context, ...string) error {
	return errStoreDown
}

func (failingStore) Exists(context.Context, string) (bool, error) {
	return false, errStoreDown
}
