package repository

import (
	"mos3ef-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *entity.Review) error
	FindByID(db *gorm.DB, id int) (*entity.Review, error)
	FindByServiceID(db *gorm.DB, serviceID int) ([]entity.Review, error)
	FindByHospitalID(db *gorm.DB, hospitalID int) ([]entity.Review, error)
	Update(db *gorm.DB, review *entity.Review) error
	Delete(db *gorm.DB, id int) (int64, error)
}
