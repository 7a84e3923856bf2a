package usecase

import (
	"io"
	"testing"
	"time"

	"mos3ef-api/config"
	"mos3ef-api/internal/domain/entity"
	domainRepo "mos3ef-api/internal/domain/repository"
	"mos3ef-api/internal/infrastructure/cache"
	"mos3ef-api/internal/repository"
	"mos3ef-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTTLs = config.CacheTTLConfig{
	Service:       10 * time.Minute,
	Hospital:      10 * time.Minute,
	Search:        10 * time.Minute,
	Reviews:       30 * time.Minute,
	Dashboard:     5 * time.Minute,
	Profile:       5 * time.Minute,
	SavedServices: 5 * time.Minute,
}

// countingServiceRepo records store queries and reports a bogus provisional
// count, which callers must never surface.
type countingServiceRepo struct {
	domainRepo.ServiceRepository
	candidateCalls int
}

const bogusProvisionalCount = 999

func (r *countingServiceRepo) FindCandidates(db *gorm.DB, predicates []entity.StorePredicate) ([]entity.Service, int64, error) {
	r.candidateCalls++
	rows, _, err := r.ServiceRepository.FindCandidates(db, predicates)
	return rows, bogusProvisionalCount, err
}

type fixture struct {
	db          *gorm.DB
	log         *logrus.Logger
	cache       *service.CacheService
	serviceRepo *countingServiceRepo

	services  ServiceUsecase
	hospitals HospitalUsecase
	reviews   ReviewUsecase
	patients  PatientUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := cache.NewMemoryStore(config.CacheConfig{Capacity: 10000, NumShards: 4, EvictionPercentage: 10}, time.Hour)
	return newFixtureWithStore(t, store)
}

func newFixtureWithStore(t *testing.T, store cache.Store) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.Hospital{},
		&entity.Service{},
		&entity.Patient{},
		&entity.Review{},
		&entity.SavedService{},
	))

	log := logrus.New()
	log.SetOutput(io.Discard)

	cacheService := service.NewCacheService(store, log)
	policy := service.NewCachePolicy(testTTLs)
	invalidator := service.NewCacheInvalidator(cacheService)

	serviceRepo := &countingServiceRepo{ServiceRepository: repository.NewServiceRepository()}
	hospitalRepo := repository.NewHospitalRepository()
	reviewRepo := repository.NewReviewRepository()
	patientRepo := repository.NewPatientRepository()

	return &fixture{
		db:          db,
		log:         log,
		cache:       cacheService,
		serviceRepo: serviceRepo,
		services:    NewServiceUsecase(db, log, cacheService, policy, serviceRepo, reviewRepo),
		hospitals:   NewHospitalUsecase(db, log, cacheService, policy, invalidator, hospitalRepo, serviceRepo, reviewRepo),
		reviews:     NewReviewUsecase(db, log, invalidator, reviewRepo, serviceRepo, patientRepo),
		patients:    NewPatientUsecase(db, log, cacheService, policy, invalidator, patientRepo, serviceRepo),
	}
}

func (f *fixture) hospital(t *testing.T, name string, lat, lon *float64) *entity.Hospital {
	t.Helper()
	h := &entity.Hospital{UserID: uuid.New(), Name: name, Latitude: lat, Longitude: lon}
	require.NoError(t, f.db.Create(h).Error)
	return h
}

func (f *fixture) service(t *testing.T, hospitalID int, name string, category entity.CategoryType, price string, availability string) *entity.Service {
	t.Helper()
	s := &entity.Service{
		Name:         name,
		Price:        decimal.RequireFromString(price),
		Availability: availability,
		Category:     category,
		HospitalID:   hospitalID,
	}
	require.NoError(t, f.db.Create(s).Error)
	return s
}

func (f *fixture) patient(t *testing.T, name string) *entity.Patient {
	t.Helper()
	p := &entity.Patient{UserID: uuid.New(), Name: name}
	require.NoError(t, f.db.Create(p).Error)
	return p
}

func (f *fixture) review(t *testing.T, serviceID, patientID, rating int) {
	t.Helper()
	require.NoError(t, f.db.Create(&entity.Review{
		ServiceID: serviceID,
		PatientID: patientID,
		Rating:    rating,
		Date:      time.Now().UTC(),
	}).Error)
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}
