package usecase

import (
	"context"

	"mos3ef-api/internal/converter"
	"mos3ef-api/internal/delivery/dto"
	"mos3ef-api/internal/discovery"
	"mos3ef-api/internal/domain/entity"
	"mos3ef-api/internal/domain/repository"
	"mos3ef-api/internal/service"
	"mos3ef-api/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ServiceUsecase interface {
	GetServices(ctx context.Context, onlyAvailable bool, pageNumber, pageSize int) (*dto.PagedResponse[dto.ServiceSummaryResponse], error)
	GetService(ctx context.Context, serviceID int) (*dto.ServiceDetailResponse, error)
	FilterServices(ctx context.Context, filter entity.ServiceFilter) (*dto.PagedResponse[dto.ServiceSummaryResponse], error)
	SearchServices(ctx context.Context, query discovery.SearchQuery) ([]dto.ServiceSummaryResponse, error)
	CompareServices(ctx context.Context, req *dto.CompareServicesRequest) (*dto.CompareServicesResponse, error)
	GetServiceReviews(ctx context.Context, serviceID int) ([]dto.ReviewResponse, error)
	GetServiceHospital(ctx context.Context, serviceID int) (*dto.HospitalResponse, error)
}

type serviceUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	cache       *service.CacheService
	policy      service.CachePolicy
	serviceRepo repository.ServiceRepository
	reviewRepo  repository.ReviewRepository
}

func NewServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache *service.CacheService,
	policy service.CachePolicy,
	serviceRepo repository.ServiceRepository,
	reviewRepo repository.ReviewRepository,
) ServiceUsecase {
	return &serviceUsecase{
		db:          db,
		log:         log,
		cache:       cache,
		policy:      policy,
		serviceRepo: serviceRepo,
		reviewRepo:  reviewRepo,
	}
}

// GetServices is the plain listing: name order, optionally available only.
func (u *serviceUsecase) GetServices(ctx context.Context, onlyAvailable bool, pageNumber, pageSize int) (*dto.PagedResponse[dto.ServiceSummaryResponse], error) {
	return u.FilterServices(ctx, service.BrowseFilter(onlyAvailable, pageNumber, pageSize))
}

func (u *serviceUsecase) GetService(ctx context.Context, serviceID int) (*dto.ServiceDetailResponse, error) {
	svc, err := u.loadService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return converter.ServiceToDetail(svc), nil
}

// FilterServices runs the two-phase discovery pipeline. Store predicates go to
// the repository; the rating filter, sort and page window run in memory.
func (u *serviceUsecase) FilterServices(ctx context.Context, filter entity.ServiceFilter) (*dto.PagedResponse[dto.ServiceSummaryResponse], error) {
	key := service.ServiceFilterKey(filter)

	page, err := service.GetOrCompute(ctx, u.cache, key, u.policy.TTL(service.CacheKindSearch),
		func(ctx context.Context) (dto.PagedResponse[dto.ServiceSummaryResponse], error) {
			plan := discovery.BuildPlan(filter)

			rows, provisional, err := u.serviceRepo.FindCandidates(u.db.WithContext(ctx), plan.Store)
			if err != nil {
				u.log.Warnf("Failed to find candidate services: %+v", err)
				return dto.PagedResponse[dto.ServiceSummaryResponse]{}, apperror.Internal("failed to filter services", err)
			}

			result := plan.Execute(rows)
			u.log.WithFields(logrus.Fields{
				"store_count": provisional,
				"total_count": result.TotalCount,
			}).Debug("Filtered services")

			return converter.CandidatePageToResponse(result), nil
		})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchServices returns every match, available services first and nearest first.
func (u *serviceUsecase) SearchServices(ctx context.Context, query discovery.SearchQuery) ([]dto.ServiceSummaryResponse, error) {
	key := service.ServiceSearchKey(query.Keyword, query.Category, query.Origin)

	return service.GetOrCompute(ctx, u.cache, key, u.policy.TTL(service.CacheKindSearch),
		func(ctx context.Context) ([]dto.ServiceSummaryResponse, error) {
			rows, _, err := u.serviceRepo.FindCandidates(u.db.WithContext(ctx), query.StorePredicates())
			if err != nil {
				u.log.Warnf("Failed to search services: %+v", err)
				return nil, apperror.Internal("failed to search services", err)
			}
			return converter.CandidatesToSummaries(query.Rank(rows)), nil
		})
}

func (u *serviceUsecase) CompareServices(ctx context.Context, req *dto.CompareServicesRequest) (*dto.CompareServicesResponse, error) {
	if req.Service1ID == req.Service2ID {
		return nil, apperror.BadRequest("cannot compare a service with itself")
	}

	first, err := u.loadService(ctx, req.Service1ID)
	if err != nil {
		return nil, err
	}
	second, err := u.loadService(ctx, req.Service2ID)
	if err != nil {
		return nil, err
	}

	var origin *entity.Point
	if req.UserLatitude != nil && req.UserLongitude != nil {
		origin = &entity.Point{Latitude: *req.UserLatitude, Longitude: *req.UserLongitude}
	}

	candidates := discovery.Annotate([]entity.Service{*first, *second}, origin)
	metrics := discovery.Compare(
		converter.CandidateToCompared(candidates[0]),
		converter.CandidateToCompared(candidates[1]),
	)

	return converter.ComparisonToResponse(candidates[0], candidates[1], metrics), nil
}

func (u *serviceUsecase) GetServiceReviews(ctx context.Context, serviceID int) ([]dto.ReviewResponse, error) {
	key := service.ServiceReviewsKey(serviceID)

	return service.GetOrCompute(ctx, u.cache, key, u.policy.TTL(service.CacheKindReviews),
		func(ctx context.Context) ([]dto.ReviewResponse, error) {
			if _, err := u.loadService(ctx, serviceID); err != nil {
				return nil, err
			}

			reviews, err := u.reviewRepo.FindByServiceID(u.db.WithContext(ctx), serviceID)
			if err != nil {
				u.log.Warnf("Failed to find reviews: %+v", err)
				return nil, apperror.Internal("failed to load reviews", err)
			}
			return converter.ReviewsToResponses(reviews), nil
		})
}

func (u *serviceUsecase) GetServiceHospital(ctx context.Context, serviceID int) (*dto.HospitalResponse, error) {
	key := service.ServiceHospitalKey(serviceID)

	hospital, err := service.GetOrCompute(ctx, u.cache, key, u.policy.TTL(service.CacheKindHospital),
		func(ctx context.Context) (dto.HospitalResponse, error) {
			svc, err := u.loadService(ctx, serviceID)
			if err != nil {
				return dto.HospitalResponse{}, err
			}
			if svc.Hospital == nil {
				return dto.HospitalResponse{}, apperror.NotFound("hospital of service with ID %d not found", serviceID)
			}
			return *converter.HospitalToResponse(svc.Hospital), nil
		})
	if err != nil {
		return nil, err
	}
	return &hospital, nil
}

// loadService reads a service with its hospital and reviews through the
// service:{id} entry.
func (u *serviceUsecase) loadService(ctx context.Context, serviceID int) (*entity.Service, error) {
	svc, err := service.GetOrCompute(ctx, u.cache, service.ServiceKey(serviceID), u.policy.TTL(service.CacheKindService),
		func(ctx context.Context) (entity.Service, error) {
			found, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
			if err != nil {
				u.log.Warnf("Failed to find service: %+v", err)
				return entity.Service{}, apperror.Internal("failed to load service", err)
			}
			if found == nil {
				return entity.Service{}, ErrServiceNotFound(serviceID)
			}
			return *found, nil
		})
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// ErrServiceNotFound is the error for a missing service ID.
func ErrServiceNotFound(serviceID int) error {
	return apperror.NotFound("service with ID %d not found", serviceID)
}
