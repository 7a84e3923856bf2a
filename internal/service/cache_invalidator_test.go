package service

import (
	"context"
	"testing"
	"time"

	"mos3ef-api/config"
	"mos3ef-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedServicesSweepKeys(t *testing.T) {
	keys := SavedServicesSweepKeys(4)

	assert.Len(t, keys, SweepMaxPage*len(SweepPageSizes))
	assert.Contains(t, keys, PatientSavedKey(4, 1, 10))
	assert.Contains(t, keys, PatientSavedKey(4, 10, 50))
	assert.NotContains(t, keys, PatientSavedKey(4, 11, 10))
	assert.NotContains(t, keys, PatientSavedKey(5, 1, 10))
}

func TestBrowseFilterSweepKeys_MatchHandlerDefaults(t *testing.T) {
	keys := BrowseFilterSweepKeys()
	assert.Len(t, keys, 2*SweepMaxPage*len(SweepPageSizes))

	// What the handler builds for GET /services/filter with no query parameters.
	plain := entity.ServiceFilter{OnlyAvailable: true, IsAscending: true, PageNumber: 1, PageSize: 10}
	assert.Contains(t, keys, ServiceFilterKey(plain))
}

func TestBrowseSearchSweepKeys(t *testing.T) {
	keys := BrowseSearchSweepKeys()
	assert.Len(t, keys, len(entity.AllCategories())+1)

	nicu := entity.CategoryNICU
	assert.Contains(t, keys, ServiceSearchKey("", nil, nil))
	assert.Contains(t, keys, ServiceSearchKey("", &nicu, nil))
}

func TestCacheInvalidator_ServiceChanged(t *testing.T) {
	ctx := context.Background()
	c := newTestCacheService(t)
	inv := NewCacheInvalidator(c)

	browse := ServiceFilterKey(BrowseFilter(true, 1, 10))
	unrelated := ServiceKey(99)
	for _, key := range []string{ServiceKey(1), HospitalServicesKey(2), DashboardKey(2), browse, unrelated} {
		require.NoError(t, c.Put(ctx, key, "v", time.Minute))
	}

	inv.ServiceChanged(ctx, 1, 2)

	for _, key := range []string{ServiceKey(1), HospitalServicesKey(2), DashboardKey(2), browse} {
		exists, err := c.Store().Exists(ctx, key)
		require.NoError(t, err)
		assert.False(t, exists, key)
	}
	exists, _ := c.Store().Exists(ctx, unrelated)
	assert.True(t, exists)
}

func TestCacheInvalidator_ReviewsChanged(t *testing.T) {
	ctx := context.Background()
	c := newTestCacheService(t)
	inv := NewCacheInvalidator(c)

	browse := ServiceFilterKey(BrowseFilter(true, 1, 10))
	search := ServiceSearchKey("", nil, nil)
	rated := []string{
		ServiceKey(1), ServiceReviewsKey(1), HospitalReviewsKey(2),
		HospitalServicesKey(2), DashboardKey(2), browse, search,
	}
	other := HospitalServicesKey(3)
	for _, key := range append(rated, other) {
		require.NoError(t, c.Put(ctx, key, "v", time.Minute))
	}

	inv.ReviewsChanged(ctx, 1, 2)

	for _, key := range rated {
		exists, err := c.Store().Exists(ctx, key)
		require.NoError(t, err)
		assert.False(t, exists, key)
	}
	exists, _ := c.Store().Exists(ctx, other)
	assert.True(t, exists, "other hospitals keep their listing")
}

func TestCacheInvalidator_SavedServicesChanged(t *testing.T) {
	ctx := context.Background()
	c := newTestCacheService(t)
	inv := NewCacheInvalidator(c)

	require.NoError(t, c.Put(ctx, PatientSavedKey(1, 3, 20), "v", time.Minute))
	require.NoError(t, c.Put(ctx, PatientSavedKey(2, 3, 20), "v", time.Minute))

	inv.SavedServicesChanged(ctx, 1)

	exists, _ := c.Store().Exists(ctx, PatientSavedKey(1, 3, 20))
	assert.False(t, exists)
	exists, _ = c.Store().Exists(ctx, PatientSavedKey(2, 3, 20))
	assert.True(t, exists, "other patients keep their pages")
}

func TestCachePolicy_TTL(t *testing.T) {
	policy := NewCachePolicy(config.CacheTTLConfig{
		Service: 10 * time.Minute,
		Reviews: 30 * time.Minute,
	})

	assert.Equal(t, 10*time.Minute, policy.TTL(CacheKindService))
	assert.Equal(t, 30*time.Minute, policy.TTL(CacheKindReviews))
	assert.Equal(t, fallbackTTL, policy.TTL(CacheKindDashboard), "unset entries fall back")
}
