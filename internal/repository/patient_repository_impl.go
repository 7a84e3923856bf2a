package repository

import (
	"errors"

	"mos3ef-api/internal/domain/entity"
	domainRepo "mos3ef-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the Postgres SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Omit("SavedServices").Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("user_id = ?", userID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Omit("SavedServices").Save(patient).Error
}

func (r *patientRepository) FindSavedService(db *gorm.DB, patientID, serviceID int) (*entity.SavedService, error) {
	var saved entity.SavedService
	err := db.Where("patient_id = ? AND service_id = ?", patientID, serviceID).First(&saved).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &saved, nil
}

// CreateSavedService inserts the bookmark. A concurrent duplicate surfaces as
// domainRepo.ErrDuplicate.
func (r *patientRepository) CreateSavedService(db *gorm.DB, saved *entity.SavedService) error {
	err := db.Omit("Service").Create(saved).Error
	if isUniqueViolation(err) {
		return domainRepo.ErrDuplicate
	}
	return err
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func (r *patientRepository) DeleteSavedService(db *gorm.DB, patientID, serviceID int) (int64, error) {
	result := db.Where("patient_id = ? AND service_id = ?", patientID, serviceID).Delete(&entity.SavedService{})
	return result.RowsAffected, result.Error
}

func (r *patientRepository) FindSavedServicesPaged(db *gorm.DB, patientID, offset, limit int) ([]entity.SavedService, int64, error) {
	var total int64
	if err := db.Model(&entity.SavedService{}).Where("patient_id = ?", patientID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var saved []entity.SavedService
	err := db.Preload("Service.Hospital").Preload("Service.Reviews").
		Where("patient_id = ?", patientID).
		Order("saved_date DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&saved).Error
	if err != nil {
		return nil, 0, err
	}
	return saved, total, nil
}
