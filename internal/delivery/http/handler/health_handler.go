package handler

import (
	"net/http"

	"mos3ef-api/internal/service"
	"mos3ef-api/pkg/response"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db    *gorm.DB
	cache *service.CacheService
}

func NewHealthHandler(db *gorm.DB, cache *service.CacheService) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cache,
	}
}

type healthStatus struct {
	Status   string             `json:"status"`
	Database string             `json:"database"`
	Cache    service.CacheStats `json:"cache"`
}

// Check reports database reachability and the cache counters. Cache outages
// do not change the status.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{Status: "ok", Database: "up", Cache: h.cache.Stats()}

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		status.Status = "degraded"
		status.Database = "down"
		response.Error(w, http.StatusServiceUnavailable, "Service unavailable", status)
		return
	}

	response.Success(w, http.StatusOK, "Service is healthy", status)
}
