package repository

import (
	"testing"
	"time"

	"mos3ef-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// One connection, so every query sees the same in-memory database.
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
	return db
}

func seedHospital(t *testing.T, db *gorm.DB, name, region string, lat, lon *float64) *entity.Hospital {
	t.Helper()
	h := &entity.Hospital{UserID: uuid.New(), Name: name, Region: region, Latitude: lat, Longitude: lon}
	require.NoError(t, db.Create(h).Error)
	return h
}

func seedService(t *testing.T, db *gorm.DB, hospitalID int, name string, category entity.CategoryType, price string, availability string) *entity.Service {
	t.Helper()
	s := &entity.Service{
		Name:         name,
		Price:        decimal.RequireFromString(price),
		Availability: availability,
		Category:     category,
		HospitalID:   hospitalID,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func seedPatient(t *testing.T, db *gorm.DB, name string) *entity.Patient {
	t.Helper()
	p := &entity.Patient{UserID: uuid.New(), Name: name}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedReview(t *testing.T, db *gorm.DB, serviceID, patientID, rating int, date time.Time) *entity.Review {
	t.Helper()
	r := &entity.Review{ServiceID: serviceID, PatientID: patientID, Rating: rating, Date: date}
	require.NoError(t, db.Create(r).Error)
	return r
}

func ptr(f float64) *float64 {
	return &f
}
