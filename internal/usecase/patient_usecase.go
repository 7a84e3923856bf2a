package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mos3ef-api/internal/converter"
	"mos3ef-api/internal/delivery/dto"
	"mos3ef-api/internal/domain/entity"
	"mos3ef-api/internal/domain/repository"
	"mos3ef-api/internal/service"
	"mos3ef-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPatientProfileNotFound = apperror.NotFound("patient profile not found")

type PatientUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.PatientProfileRequest) (*dto.PatientResponse, error)
	SaveService(ctx context.Context, userID uuid.UUID, serviceID int) error
	RemoveSavedService(ctx context.Context, userID uuid.UUID, serviceID int) error
	GetSavedServices(ctx context.Context, userID uuid.UUID, pageNumber, pageSize int) (*dto.PagedResponse[dto.SavedServiceResponse], error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	cache       *service.CacheService
	policy      service.CachePolicy
	invalidator *service.CacheInvalidator
	patientRepo repository.PatientRepository
	serviceRepo repository.ServiceRepository
	now         func() time.Time
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache *service.CacheService,
	policy service.CachePolicy,
	invalidator *service.CacheInvalidator,
	patientRepo repository.PatientRepository,
	serviceRepo repository.ServiceRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		cache:       cache,
		policy:      policy,
		invalidator: invalidator,
		patientRepo: patientRepo,
		serviceRepo: serviceRepo,
		now:         time.Now,
	}
}

func (u *patientUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error) {
	profile, err := service.GetOrCompute(ctx, u.cache, service.PatientProfileKey(userID), u.policy.TTL(service.CacheKindProfile),
		func(ctx context.Context) (dto.PatientResponse, error) {
			patient, err := resolvePatient(ctx, u.db, u.log, u.patientRepo, userID)
			if err != nil {
				return dto.PatientResponse{}, err
			}
			return *converter.PatientToResponse(patient), nil
		})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile creates the profile on first use and overwrites it afterwards.
func (u *patientUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.PatientProfileRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, apperror.Internal("failed to load patient", err)
	}

	if patient == nil {
		patient = &entity.Patient{UserID: userID}
		applyPatientRequest(patient, req)
		err = u.patientRepo.Create(u.db.WithContext(ctx), patient)
	} else {
		applyPatientRequest(patient, req)
		err = u.patientRepo.Update(u.db.WithContext(ctx), patient)
	}
	if err != nil {
		u.log.Warnf("Failed to save patient profile: %+v", err)
		return nil, apperror.Internal("failed to save patient profile", err)
	}

	u.invalidator.PatientProfileChanged(ctx, userID)
	return converter.PatientToResponse(patient), nil
}

func applyPatientRequest(patient *entity.Patient, req *dto.PatientProfileRequest) {
	patient.Name = strings.TrimSpace(req.Name)
	patient.Location = strings.TrimSpace(req.Location)
	patient.Address = req.Address
}

// SaveService bookmarks serviceID. Saving twice is not an error.
func (u *patientUsecase) SaveService(ctx context.Context, userID uuid.UUID, serviceID int) error {
	patient, err := resolvePatient(ctx, u.db, u.log, u.patientRepo, userID)
	if err != nil {
		return err
	}

	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return apperror.Internal("failed to load service", err)
	}
	if svc == nil {
		return ErrServiceNotFound(serviceID)
	}

	existing, err := u.patientRepo.FindSavedService(u.db.WithContext(ctx), patient.ID, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find saved service: %+v", err)
		return apperror.Internal("failed to load saved service", err)
	}
	if existing != nil {
		return nil
	}

	saved := &entity.SavedService{
		PatientID: patient.ID,
		ServiceID: serviceID,
		SavedDate: u.now().UTC(),
	}
	if err := u.patientRepo.CreateSavedService(u.db.WithContext(ctx), saved); err != nil {
		// Lost a race with a concurrent save of the same service.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		u.log.Warnf("Failed to save service: %+v", err)
		return apperror.Internal("failed to save service", err)
	}

	u.invalidator.SavedServicesChanged(ctx, patient.ID)
	return nil
}

func (u *patientUsecase) RemoveSavedService(ctx context.Context, userID uuid.UUID, serviceID int) error {
	patient, err := resolvePatient(ctx, u.db, u.log, u.patientRepo, userID)
	if err != nil {
		return err
	}

	affected, err := u.patientRepo.DeleteSavedService(u.db.WithContext(ctx), patient.ID, serviceID)
	if err != nil {
		u.log.Warnf("Failed to remove saved service: %+v", err)
		return apperror.Internal("failed to remove saved service", err)
	}
	if affected == 0 {
		return apperror.NotFound("service with ID %d is not in your saved services", serviceID)
	}

	u.invalidator.SavedServicesChanged(ctx, patient.ID)
	return nil
}

func (u *patientUsecase) GetSavedServices(ctx context.Context, userID uuid.UUID, pageNumber, pageSize int) (*dto.PagedResponse[dto.SavedServiceResponse], error) {
	if pageNumber < 1 || pageNumber > entity.MaxPageNumber || pageSize < 1 || pageSize > entity.MaxPageSize {
		return nil, apperror.BadRequest("page_number must be between 1 and %d and page_size between 1 and %d", entity.MaxPageNumber, entity.MaxPageSize)
	}

	patient, err := resolvePatient(ctx, u.db, u.log, u.patientRepo, userID)
	if err != nil {
		return nil, err
	}

	key := service.PatientSavedKey(patient.ID, pageNumber, pageSize)
	page, err := service.GetOrCompute(ctx, u.cache, key, u.policy.TTL(service.CacheKindSavedServices),
		func(ctx context.Context) (dto.PagedResponse[dto.SavedServiceResponse], error) {
			offset := (pageNumber - 1) * pageSize
			saved, total, err := u.patientRepo.FindSavedServicesPaged(u.db.WithContext(ctx), patient.ID, offset, pageSize)
			if err != nil {
				u.log.Warnf("Failed to find saved services: %+v", err)
				return dto.PagedResponse[dto.SavedServiceResponse]{}, apperror.Internal("failed to load saved services", err)
			}
			return dto.PagedResponse[dto.SavedServiceResponse]{
				Items:      converter.SavedServicesToResponses(saved),
				TotalCount: int(total),
				PageNumber: pageNumber,
				PageSize:   pageSize,
			}, nil
		})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// resolvePatient returns the patient profile of the account userID.
func resolvePatient(ctx context.Context, db *gorm.DB, log *logrus.Logger, repo repository.PatientRepository, userID uuid.UUID) (*entity.Patient, error) {
	patient, err := repo.FindByUserID(db.WithContext(ctx), userID)
	if err != nil {
		log.Warnf("Failed to find patient: %+v", err)
		return nil, apperror.Internal("failed to load patient", err)
	}
	if patient == nil {
		return nil, ErrPatientProfileNotFound
	}
	return patient, nil
}
