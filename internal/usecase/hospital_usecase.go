package usecase

import (
	"context"

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

var ErrHospitalProfileNotFound = apperror.NotFound("hospital profile not found")

type HospitalUsecase interface {
	ListHospitals(ctx context.Context) ([]dto.HospitalResponse, error)
	GetHospital(ctx context.Context, hospitalID int) (*dto.HospitalResponse, error)
	GetHospitalServices(ctx context.Context, hospitalID int) ([]dto.ServiceSummaryResponse, error)

	// Operations of the hospital account identified by userID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.HospitalResponse, error)
	CreateHospital(ctx context.Context, userID uuid.UUID, req *dto.HospitalRequest) (*dto.HospitalResponse, error)
	UpdateHospital(ctx context.Context, userID uuid.UUID, req *dto.HospitalRequest) (*dto.HospitalResponse, error)
	DeleteHospital(ctx context.Context, userID uuid.UUID) error
	AddService(ctx context.Context, userID uuid.UUID, req *dto.CreateServiceRequest) (*dto.ServiceDetailResponse, error)
	UpdateService(ctx context.Context, userID uuid.UUID, serviceID int, req *dto.UpdateServiceRequest) (*dto.ServiceDetailResponse, error)
	DeleteService(ctx context.Context, userID uuid.UUID, serviceID int) error
	GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.HospitalDashboardResponse, error)
	GetHospitalReviews(ctx context.Context, userID uuid.UUID) ([]dto.ReviewResponse, error)
}

type hospitalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cache        *service.CacheService
	policy       service.CachePolicy
	invalidator  *service.CacheInvalidator
	hospitalRepo repository.HospitalRepository
	serviceRepo  repository.ServiceRepository
	reviewRepo   repository.ReviewRepository
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache *service.CacheService,
	policy service.CachePolicy,
	invalidator *service.CacheInvalidator,
	hospitalRepo repository.HospitalRepository,
	serviceRepo repository.ServiceRepository,
	reviewRepo repository.ReviewRepository,
) HospitalUsecase {
	return &hospitalUsecase{
		db:           db,
		log:          log,
		cache:        cache,
		policy:       policy,
		invalidator:  invalidator,
		hospitalRepo: hospitalRepo,
		serviceRepo:  serviceRepo,
		reviewRepo:   reviewRepo,
	}
}

func (u *hospitalUsecase) ListHospitals(ctx context.Context) ([]dto.HospitalResponse, error) {
	return service.GetOrCompute(ctx, u.cache, service.HospitalsAllKey(), u.policy.TTL(service.CacheKindHospital),
		func(ctx context.Context) ([]dto.HospitalResponse, error) {
			hospitals, err := u.hospitalRepo.FindAll(u.db.WithContext(ctx))
			if err != nil {
				u.log.Warnf("Failed to find hospitals: %+v", err)
				return nil, apperror.Internal("failed to load hospitals", err)
			}
			return converter.HospitalsToResponses(hospitals), nil
		})
}

func (u *hospitalUsecase) GetHospital(ctx context.Context, hospitalID int) (*dto.HospitalResponse, error) {
	hospital, err := service.GetOrCompute(ctx, u.cache, service.HospitalKey(hospitalID), u.policy.TTL(service.CacheKindHospital),
		func(ctx context.Context) (dto.HospitalResponse, error) {
			found, err := u.findHospital(ctx, hospitalID)
			if err != nil {
				return dto.HospitalResponse{}, err
			}
			return *converter.HospitalToResponse(found), nil
		})
	if err != nil {
		return nil, err
	}
	return &hospital, nil
}

func (u *hospitalUsecase) GetHospitalServices(ctx context.Context, hospitalID int) ([]dto.ServiceSummaryResponse, error) {
	return service.GetOrCompute(ctx, u.cache, service.HospitalServicesKey(hospitalID), u.policy.TTL(service.CacheKindHospital),
		func(ctx context.Context) ([]dto.ServiceSummaryResponse, error) {
			if _, err := u.findHospital(ctx, hospitalID); err != nil {
				return nil, err
			}

			services, err := u.serviceRepo.FindByHospitalID(u.db.WithContext(ctx), hospitalID)
			if err != nil {
				u.log.Warnf("Failed to find hospital services: %+v", err)
				return nil, apperror.Internal("failed to load hospital services", err)
			}
			return converter.ServicesToSummaries(services), nil
		})
}

func (u *hospitalUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.HospitalResponse, error) {
	hospital, err := u.resolveHospital(ctx, userID)
	if err != nil {
		return nil, err
	}
	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) CreateHospital(ctx context.Context, userID uuid.UUID, req *dto.HospitalRequest) (*dto.HospitalResponse, error) {
	existing, err := u.hospitalRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, apperror.Internal("failed to load hospital", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("hospital profile already exists")
	}

	hospital := &entity.Hospital{UserID: userID}
	converter.ApplyHospitalRequest(hospital, req)

	if err := u.hospitalRepo.Create(u.db.WithContext(ctx), hospital); err != nil {
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, apperror.Internal("failed to create hospital", err)
	}

	u.invalidator.HospitalChanged(ctx, hospital.ID, nil)
	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) UpdateHospital(ctx context.Context, userID uuid.UUID, req *dto.HospitalRequest) (*dto.HospitalResponse, error) {
	hospital, err := u.resolveHospital(ctx, userID)
	if err != nil {
		return nil, err
	}

	converter.ApplyHospitalRequest(hospital, req)
	if err := u.hospitalRepo.Update(u.db.WithContext(ctx), hospital); err != nil {
		u.log.Warnf("Failed to update hospital: %+v", err)
		return nil, apperror.Internal("failed to update hospital", err)
	}

	serviceIDs, err := u.serviceIDs(ctx, hospital.ID)
	if err != nil {
		return nil, err
	}
	u.invalidator.HospitalChanged(ctx, hospital.ID, serviceIDs)

	return converter.HospitalToResponse(hospital), nil
}

// DeleteHospital removes the hospital together with its services.
func (u *hospitalUsecase) DeleteHospital(ctx context.Context, userID uuid.UUID) error {
	hospital, err := u.resolveHospital(ctx, userID)
	if err != nil {
		return err
	}

	serviceIDs, err := u.serviceIDs(ctx, hospital.ID)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	for _, id := range serviceIDs {
		if _, err := u.serviceRepo.Delete(tx, id); err != nil {
			u.log.Warnf("Failed to delete service %d: %+v", id, err)
			return apperror.Internal("failed to delete hospital services", err)
		}
	}
	if _, err := u.hospitalRepo.Delete(tx, hospital.ID); err != nil {
		u.log.Warnf("Failed to delete hospital: %+v", err)
		return apperror.Internal("failed to delete hospital", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return apperror.Internal("failed to delete hospital", err)
	}

	u.invalidator.HospitalChanged(ctx, hospital.ID, serviceIDs)
	return nil
}

func (u *hospitalUsecase) AddService(ctx context.Context, userID uuid.UUID, req *dto.CreateServiceRequest) (*dto.ServiceDetailResponse, error) {
	hospital, err := u.resolveHospital(ctx, userID)
	if err != nil {
		return nil, err
	}

	svc, err := converter.CreateServiceRequestToEntity(req, hospital.ID)
	if err != nil {
		return nil, err
	}

	if err := u.serviceRepo.Create(u.db.WithContext(ctx), svc); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, apperror.Internal("failed to create service", err)
	}

	u.invalidator.ServiceChanged(ctx, svc.ID, hospital.ID)

	svc.Hospital = hospital
	return converter.ServiceToDetail(svc), nil
}

func (u *hospitalUsecase) UpdateService(ctx context.Context, userID uuid.UUID, serviceID int, req *dto.UpdateServiceRequest) (*dto.ServiceDetailResponse, error) {
	hospital, svc, err := u.ownedService(ctx, userID, serviceID)
	if err != nil {
		return nil, err
	}

	if err := converter.ApplyServiceUpdate(svc, req); err != nil {
		return nil, err
	}

	if err := u.serviceRepo.Update(u.db.WithContext(ctx), svc); err != nil {
		u.log.Warnf("Failed to update service: %+v", err)
		return nil, apperror.Internal("failed to update service", err)
	}

	u.invalidator.ServiceChanged(ctx, svc.ID, hospital.ID)
	return converter.ServiceToDetail(svc), nil
}

func (u *hospitalUsecase) DeleteService(ctx context.Context, userID uuid.UUID, serviceID int) error {
	hospital, svc, err := u.ownedService(ctx, userID, serviceID)
	if err != nil {
		return err
	}

	affected, err := u.serviceRepo.Delete(u.db.WithContext(ctx), svc.ID)
	if err != nil {
		u.log.Warnf("Failed to delete service: %+v", err)
		return apperror.Internal("failed to delete service", err)
	}
	if affected == 0 {
		return ErrServiceNotFound(serviceID)
	}

	u.invalidator.ServiceChanged(ctx, svc.ID, hospital.ID)
	u.invalidator.ReviewsChanged(ctx, svc.ID, hospital.ID)
	return nil
}

func (u *hospitalUsecase) GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.HospitalDashboardResponse, error) {
	hospital, err := u.resolveHospital(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard, err := service.GetOrCompute(ctx, u.cache, service.DashboardKey(hospital.ID), u.policy.TTL(service.CacheKindDashboard),
		func(ctx context.Context) (dto.HospitalDashboardResponse, error) {
			stats, err := u.hospitalRepo.GetDashboardStats(u.db.WithContext(ctx), hospital.ID)
			if err != nil {
				u.log.Warnf("Failed to get dashboard stats: %+v", err)
				return dto.HospitalDashboardResponse{}, apperror.Internal("failed to load dashboard", err)
			}
			return *converter.HospitalStatsToDashboard(hospital.ID, stats), nil
		})
	if err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (u *hospitalUsecase) GetHospitalReviews(ctx context.Context, userID uuid.UUID) ([]dto.ReviewResponse, error) {
	hospital, err := u.resolveHospital(ctx, userID)
	if err != nil {
		return nil, err
	}

	return service.GetOrCompute(ctx, u.cache, service.HospitalReviewsKey(hospital.ID), u.policy.TTL(service.CacheKindReviews),
		func(ctx context.Context) ([]dto.ReviewResponse, error) {
			reviews, err := u.reviewRepo.FindByHospitalID(u.db.WithContext(ctx), hospital.ID)
			if err != nil {
				u.log.Warnf("Failed to find hospital reviews: %+v", err)
				return nil, apperror.Internal("failed to load reviews", err)
			}
			return converter.ReviewsToResponses(reviews), nil
		})
}

func (u *hospitalUsecase) findHospital(ctx context.Context, hospitalID int) (*entity.Hospital, error) {
	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, apperror.Internal("failed to load hospital", err)
	}
	if hospital == nil {
		return nil, apperror.NotFound("hospital with ID %d not found", hospitalID)
	}
	return hospital, nil
}

// resolveHospital returns the hospital owned by the account userID.
func (u *hospitalUsecase) resolveHospital(ctx context.Context, userID uuid.UUID) (*entity.Hospital, error) {
	hospital, err := u.hospitalRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, apperror.Internal("failed to load hospital", err)
	}
	if hospital == nil {
		return nil, ErrHospitalProfileNotFound
	}
	return hospital, nil
}

// ownedService loads serviceID and checks it belongs to the caller's hospital.
func (u *hospitalUsecase) ownedService(ctx context.Context, userID uuid.UUID, serviceID int) (*entity.Hospital, *entity.Service, error) {
	hospital, err := u.resolveHospital(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, nil, apperror.Internal("failed to load service", err)
	}
	if svc == nil {
		return nil, nil, ErrServiceNotFound(serviceID)
	}
	if svc.HospitalID != hospital.ID {
		return nil, nil, apperror.Forbidden("service with ID %d does not belong to your hospital", serviceID)
	}
	return hospital, svc, nil
}

func (u *hospitalUsecase) serviceIDs(ctx context.Context, hospitalID int) ([]int, error) {
	services, err := u.serviceRepo.FindByHospitalID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital services: %+v", err)
		return nil, apperror.Internal("failed to load hospital services", err)
	}
	ids := make([]int, len(services))
	for i, s := range services {
		ids[i] = s.ID
	}
	return ids, nil
}
