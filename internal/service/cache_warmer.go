package service

import (
	"context"
	"fmt"
	"time"

	"mos3ef-api/internal/converter"
	"mos3ef-api/internal/domain/entity"
	"mos3ef-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// Batch size for startup warmup - load 500 services at a time
	warmBatchSize = 500
)

// =============================================================================
// Types
// =============================================================================

// CacheWarmer preloads the hottest read entries (service details and the
// hospital list) so the first requests after a deploy are hits.
//
// Warming is best effort: a failed write is logged and the entry is left to
// be filled on its first read.
type CacheWarmer struct {
	db           *gorm.DB
	cache        *CacheService
	policy       CachePolicy
	serviceRepo  repository.ServiceRepository
	hospitalRepo repository.HospitalRepository
	log          *logrus.Logger
}

// =============================================================================
// Constructor
// =============================================================================

func NewCacheWarmer(
	db *gorm.DB,
	cache *CacheService,
	policy CachePolicy,
	serviceRepo repository.ServiceRepository,
	hospitalRepo repository.HospitalRepository,
	log *logrus.Logger,
) *CacheWarmer {
	return &CacheWarmer{
		db:           db,
		cache:        cache,
		policy:       policy,
		serviceRepo:  serviceRepo,
		hospitalRepo: hospitalRepo,
		log:          log,
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// WarmOnStartup loads every service detail and the hospital list into the cache.
// Should be called before accepting traffic.
func (w *CacheWarmer) WarmOnStartup(ctx context.Context) error {
	w.log.Info("Starting cache warmup from database...")
	startTime := time.Now()

	totalWarmed := 0
	serviceTTL := w.policy.TTL(CacheKindService)

	err := w.serviceRepo.FindInBatches(w.db.WithContext(ctx), warmBatchSize, func(batch []entity.Service) error {
		// Respect context cancellation between batches
		if err := ctx.Err(); err != nil {
			return err
		}

		for i := range batch {
			if err := w.cache.Put(ctx, ServiceKey(batch[i].ID), batch[i], serviceTTL); err != nil {
				w.log.Warnf("Failed to warm service %d: %+v", batch[i].ID, err)
				continue
			}
			totalWarmed++
		}

		w.log.Debugf("Warmed batch: %d services", len(batch))
		return nil
	})
	if err != nil {
		w.log.Errorf("Failed to warm services: %+v", err)
		return fmt.Errorf("warm services: %w", err)
	}

	if err := w.WarmHospitals(ctx); err != nil {
		return err
	}

	elapsed := time.Since(startTime)
	w.log.Infof("Cache warmup completed: %d services warmed in %v", totalWarmed, elapsed)

	return nil
}

// WarmHospitals refreshes the hospitals:all entry.
func (w *CacheWarmer) WarmHospitals(ctx context.Context) error {
	hospitals, err := w.hospitalRepo.FindAll(w.db.WithContext(ctx))
	if err != nil {
		w.log.Errorf("Failed to load hospitals for warmup: %+v", err)
		return fmt.Errorf("load hospitals: %w", err)
	}

	responses := converter.HospitalsToResponses(hospitals)
	if err := w.cache.Put(ctx, HospitalsAllKey(), responses, w.policy.TTL(CacheKindHospital)); err != nil {
		w.log.Warnf("Failed to warm hospital list: %+v", err)
	}

	w.log.Debugf("Warmed hospital list: %d hospitals", len(hospitals))
	return nil
}
