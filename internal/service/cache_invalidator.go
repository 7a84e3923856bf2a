package service

import (
	"context"

	"mos3ef-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Bounded sweep for parameterized list caches. Only these page/size
// combinations are invalidated on write; other combinations stay cached
// until their TTL lapses.
const SweepMaxPage = 10

var SweepPageSizes = []int{5, 10, 20, 50}

// CacheInvalidator knows which keys a mutation makes stale.
type CacheInvalidator struct {
	cache *CacheService
}

func NewCacheInvalidator(cache *CacheService) *CacheInvalidator {
	return &CacheInvalidator{cache: cache}
}

// ServiceChanged runs after a service is created, updated or deleted.
func (i *CacheInvalidator) ServiceChanged(ctx context.Context, serviceID, hospitalID int) {
	keys := []string{
		ServiceKey(serviceID),
		ServiceReviewsKey(serviceID),
		ServiceHospitalKey(serviceID),
		HospitalServicesKey(hospitalID),
		DashboardKey(hospitalID),
	}
	keys = append(keys, BrowseFilterSweepKeys()...)
	keys = append(keys, BrowseSearchSweepKeys()...)
	i.cache.Invalidate(ctx, keys...)
}

// HospitalChanged runs after a hospital profile changes. Service details embed
// hospital fields, so every service of the hospital is dropped too.
func (i *CacheInvalidator) HospitalChanged(ctx context.Context, hospitalID int, serviceIDs []int) {
	keys := []string{
		HospitalKey(hospitalID),
		HospitalsAllKey(),
		HospitalServicesKey(hospitalID),
		HospitalReviewsKey(hospitalID),
		DashboardKey(hospitalID),
	}
	for _, id := range serviceIDs {
		keys = append(keys, ServiceKey(id), ServiceHospitalKey(id))
	}
	if len(serviceIDs) > 0 {
		keys = append(keys, BrowseFilterSweepKeys()...)
		keys = append(keys, BrowseSearchSweepKeys()...)
	}
	i.cache.Invalidate(ctx, keys...)
}

// ReviewsChanged runs after a review of serviceID is added, edited or removed.
func (i *CacheInvalidator) ReviewsChanged(ctx context.Context, serviceID, hospitalID int) {
	keys := []string{
		ServiceReviewsKey(serviceID),
		ServiceKey(serviceID),
		HospitalReviewsKey(hospitalID),
		HospitalServicesKey(hospitalID),
		DashboardKey(hospitalID),
	}
	// Listings and searches carry average ratings.
	keys = append(keys, BrowseFilterSweepKeys()...)
	keys = append(keys, BrowseSearchSweepKeys()...)
	i.cache.Invalidate(ctx, keys...)
}

func (i *CacheInvalidator) PatientProfileChanged(ctx context.Context, userID uuid.UUID) {
	i.cache.Invalidate(ctx, PatientProfileKey(userID))
}

func (i *CacheInvalidator) SavedServicesChanged(ctx context.Context, patientID int) {
	i.cache.Invalidate(ctx, SavedServicesSweepKeys(patientID)...)
}

// SavedServicesSweepKeys lists the saved-services pages covered by the sweep.
func SavedServicesSweepKeys(patientID int) []string {
	keys := make([]string, 0, SweepMaxPage*len(SweepPageSizes))
	for page := 1; page <= SweepMaxPage; page++ {
		for _, size := range SweepPageSizes {
			keys = append(keys, PatientSavedKey(patientID, page, size))
		}
	}
	return keys
}

// BrowseFilterSweepKeys lists the plain listing pages (no criteria besides
// availability, default sort) covered by the sweep.
func BrowseFilterSweepKeys() []string {
	keys := make([]string, 0, 2*SweepMaxPage*len(SweepPageSizes))
	for _, onlyAvailable := range []bool{true, false} {
		for page := 1; page <= SweepMaxPage; page++ {
			for _, size := range SweepPageSizes {
				keys = append(keys, ServiceFilterKey(BrowseFilter(onlyAvailable, page, size)))
			}
		}
	}
	return keys
}

// BrowseSearchSweepKeys lists the keyword-less searches, overall and per category.
func BrowseSearchSweepKeys() []string {
	categories := entity.AllCategories()
	keys := make([]string, 0, len(categories)+1)
	keys = append(keys, ServiceSearchKey("", nil, nil))
	for _, c := range categories {
		keys = append(keys, ServiceSearchKey("", &c, nil))
	}
	return keys
}

// BrowseFilter is the filter behind the plain service listing.
func BrowseFilter(onlyAvailable bool, page, size int) entity.ServiceFilter {
	return entity.ServiceFilter{
		OnlyAvailable: onlyAvailable,
		SortBy:        entity.SortByName,
		IsAscending:   true,
		PageNumber:    page,
		PageSize:      size,
	}
}
