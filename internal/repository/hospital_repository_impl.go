package repository

import (
	"database/sql"
	"errors"

	"mos3ef-api/internal/domain/entity"
	domainRepo "mos3ef-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hospitalRepository struct{}

func NewHospitalRepository() domainRepo.HospitalRepository {
	return &hospitalRepository{}
}

func (r *hospitalRepository) Create(db *gorm.DB, hospital *entity.Hospital) error {
	return db.Omit("Services").Create(hospital).Error
}

func (r *hospitalRepository) FindByID(db *gorm.DB, id int) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := db.Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := db.Where("user_id = ?", userID).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) FindAll(db *gorm.DB) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	err := db.Order("name ASC, id ASC").Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

// GetDashboardStats aggregates the hospital's services and their reviews.
func (r *hospitalRepository) GetDashboardStats(db *gorm.DB, hospitalID int) (*entity.HospitalStats, error) {
	var stats entity.HospitalStats

	err := db.Model(&entity.Service{}).
		Where("hospital_id = ?", hospitalID).
		Count(&stats.ServicesCount).Error
	if err != nil {
		return nil, err
	}

	var reviews struct {
		ReviewsCount  int64
		AverageRating sql.NullFloat64
	}
	err = db.Model(&entity.Review{}).
		Select("COUNT(reviews.id) AS reviews_count, AVG(reviews.rating) AS average_rating").
		Joins("JOIN services ON services.id = reviews.service_id").
		Where("services.hospital_id = ?", hospitalID).
		Scan(&reviews).Error
	if err != nil {
		return nil, err
	}

	stats.ReviewsCount = reviews.ReviewsCount
	if reviews.AverageRating.Valid {
		avg := reviews.AverageRating.Float64
		stats.AverageRating = &avg
	}
	return &stats, nil
}

func (r *hospitalRepository) Update(db *gorm.DB, hospital *entity.Hospital) error {
	return db.Omit("Services").Save(hospital).Error
}

func (r *hospitalRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Hospital{})
	return result.RowsAffected, result.Error
}
