package repository

import (
	"mos3ef-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id int) (*entity.Service, error)
	FindByHospitalID(db *gorm.DB, hospitalID int) ([]entity.Service, error)
	// FindCandidates applies the store predicates and returns the matching rows with
	// Hospital and Reviews loaded, plus the provisional store-level count.
	FindCandidates(db *gorm.DB, predicates []entity.StorePredicate) ([]entity.Service, int64, error)
	FindInBatches(db *gorm.DB, batchSize int, fn func(batch []entity.Service) error) error
	Update(db *gorm.DB, service *entity.Service) error
	Delete(db *gorm.DB, id int) (int64, error)
}
