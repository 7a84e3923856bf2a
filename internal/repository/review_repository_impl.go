package repository

import (
	"errors"

	"mos3ef-api/internal/domain/entity"
	domainRepo "mos3ef-api/internal/domain/repository"

	"gorm.io/gorm"
)

type reviewRepository struct{}

func NewReviewRepository() domainRepo.ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *entity.Review) error {
	return db.Omit("Service", "Patient").Create(review).Error
}

func (r *reviewRepository) FindByID(db *gorm.DB, id int) (*entity.Review, error) {
	var review entity.Review
	err := db.Preload("Service").Preload("Patient").Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByServiceID(db *gorm.DB, serviceID int) ([]entity.Review, error) {
	var reviews []entity.Review
	err := db.Preload("Patient").
		Where("service_id = ?", serviceID).
		Order("date DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindByHospitalID(db *gorm.DB, hospitalID int) ([]entity.Review, error) {
	var reviews []entity.Review
	err := db.Preload("Service").Preload("Patient").
		Joins("JOIN services ON services.id = reviews.service_id").
		Where("services.hospital_id = ?", hospitalID).
		Order("reviews.date DESC, reviews.id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Update(db *gorm.DB, review *entity.Review) error {
	return db.Omit("Service", "Patient").Save(review).Error
}

func (r *reviewRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Review{})
	return result.RowsAffected, result.Error
}
