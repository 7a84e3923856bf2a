package repository

import (
	"mos3ef-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error

	FindSavedService(db *gorm.DB, patientID, serviceID int) (*entity.SavedService, error)
	CreateSavedService(db *gorm.DB, saved *entity.SavedService) error
	DeleteSavedService(db *gorm.DB, patientID, serviceID int) (int64, error)
	// FindSavedServicesPaged returns one page ordered by saved date, newest first, and the total count.
	FindSavedServicesPaged(db *gorm.DB, patientID, offset, limit int) ([]entity.SavedService, int64, error)
}
