package repository

import (
	"mos3ef-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalRepository interface {
	Create(db *gorm.DB, hospital *entity.Hospital) error
	FindByID(db *gorm.DB, id int) (*entity.Hospital, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Hospital, error)
	FindAll(db *gorm.DB) ([]entity.Hospital, error)
	GetDashboardStats(db *gorm.DB, hospitalID int) (*entity.HospitalStats, error)
	Update(db *gorm.DB, hospital *entity.Hospital) error
	Delete(db *gorm.DB, id int) (int64, error)
}
