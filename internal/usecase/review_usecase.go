package usecase

import (
	"context"
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

type ReviewUsecase interface {
	AddReview(ctx context.Context, userID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	UpdateReview(ctx context.Context, userID uuid.UUID, reviewID int, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, userID uuid.UUID, reviewID int) error
}

type reviewUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	invalidator *service.CacheInvalidator
	reviewRepo  repository.ReviewRepository
	serviceRepo repository.ServiceRepository
	patientRepo repository.PatientRepository
	now         func() time.Time
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	invalidator *service.CacheInvalidator,
	reviewRepo repository.ReviewRepository,
	serviceRepo repository.ServiceRepository,
	patientRepo repository.PatientRepository,
) ReviewUsecase {
	return &reviewUsecase{
		db:          db,
		log:         log,
		invalidator: invalidator,
		reviewRepo:  reviewRepo,
		serviceRepo: serviceRepo,
		patientRepo: patientRepo,
		now:         time.Now,
	}
}

func (u *reviewUsecase) AddReview(ctx context.Context, userID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	patient, err := resolvePatient(ctx, u.db, u.log, u.patientRepo, userID)
	if err != nil {
		return nil, err
	}

	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, apperror.Internal("failed to load service", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound(req.ServiceID)
	}

	review := &entity.Review{
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		ServiceID: svc.ID,
		PatientID: patient.ID,
		Date:      u.now().UTC(),
	}
	if err := u.reviewRepo.Create(u.db.WithContext(ctx), review); err != nil {
		u.log.Warnf("Failed to create review: %+v", err)
		return nil, apperror.Internal("failed to create review", err)
	}

	u.invalidator.ReviewsChanged(ctx, svc.ID, svc.HospitalID)

	review.Service = svc
	review.Patient = patient
	return converter.ReviewToResponse(review), nil
}

func (u *reviewUsecase) UpdateReview(ctx context.Context, userID uuid.UUID, reviewID int, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := u.authoredReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	review.Rating = req.Rating
	review.Comment = strings.TrimSpace(req.Comment)
	if err := u.reviewRepo.Update(u.db.WithContext(ctx), review); err != nil {
		u.log.Warnf("Failed to update review: %+v", err)
		return nil, apperror.Internal("failed to update review", err)
	}

	u.invalidator.ReviewsChanged(ctx, review.ServiceID, hospitalOf(review))
	return converter.ReviewToResponse(review), nil
}

func (u *reviewUsecase) DeleteReview(ctx context.Context, userID uuid.UUID, reviewID int) error {
	review, err := u.authoredReview(ctx, userID, reviewID)
	if err != nil {
		return err
	}

	if _, err := u.reviewRepo.Delete(u.db.WithContext(ctx), review.ID); err != nil {
		u.log.Warnf("Failed to delete review: %+v", err)
		return apperror.Internal("failed to delete review", err)
	}

	u.invalidator.ReviewsChanged(ctx, review.ServiceID, hospitalOf(review))
	return nil
}

// authoredReview loads reviewID and checks the caller wrote it.
func (u *reviewUsecase) authoredReview(ctx context.Context, userID uuid.UUID, reviewID int) (*entity.Review, error) {
	patient, err := resolvePatient(ctx, u.db, u.log, u.patientRepo, userID)
	if err != nil {
		return nil, err
	}

	review, err := u.reviewRepo.FindByID(u.db.WithContext(ctx), reviewID)
	if err != nil {
		u.log.Warnf("Failed to find review: %+v", err)
		return nil, apperror.Internal("failed to load review", err)
	}
	if review == nil {
		return nil, apperror.NotFound("review with ID %d not found", reviewID)
	}
	if review.PatientID != patient.ID {
		return nil, apperror.Forbidden("you can only modify your own reviews")
	}
	return review, nil
}

func hospitalOf(review *entity.Review) int {
	if review.Service == nil {
		return 0
	}
	return review.Service.HospitalID
}
