package service

import (
	"time"

	"mos3ef-api/config"
)

// CacheKind groups cache entries that share an expiry.
type CacheKind string

const (
	CacheKindService       CacheKind = "service"
	CacheKindHospital      CacheKind = "hospital"
	CacheKindSearch        CacheKind = "search"
	CacheKindReviews       CacheKind = "reviews"
	CacheKindDashboard     CacheKind = "dashboard"
	CacheKindProfile       CacheKind = "profile"
	CacheKindSavedServices CacheKind = "saved_services"
)

// fallbackTTL applies to kinds missing from the table.
const fallbackTTL = 5 * time.Minute

// CachePolicy is the per-kind TTL table.
type CachePolicy struct {
	ttls map[CacheKind]time.Duration
}

func NewCachePolicy(cfg config.CacheTTLConfig) CachePolicy {
	return CachePolicy{ttls: map[CacheKind]time.Duration{
		CacheKindService:       cfg.Service,
		CacheKindHospital:      cfg.Hospital,
		CacheKindSearch:        cfg.Search,
		CacheKindReviews:       cfg.Reviews,
		CacheKindDashboard:     cfg.Dashboard,
		CacheKindProfile:       cfg.Profile,
		CacheKindSavedServices: cfg.SavedServices,
	}}
}

func (p CachePolicy) TTL(kind CacheKind) time.Duration {
	if ttl, ok := p.ttls[kind]; ok && ttl > 0 {
		return ttl
	}
	return fallbackTTL
}
