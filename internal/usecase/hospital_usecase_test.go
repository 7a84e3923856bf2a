package usecase

import (
	"context"
	"testing"

	"mos3ef-api/internal/delivery/dto"
	"mos3ef-api/internal/domain/entity"
	"mos3ef-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHospitalUsecase_CreateAndUpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := uuid.New()

	created, err := f.hospitals.CreateHospital(ctx, userID, &dto.HospitalRequest{Name: " Cairo General ", Region: "Cairo"})
	require.NoError(t, err)
	assert.Equal(t, "Cairo General", created.Name)

	_, err = f.hospitals.CreateHospital(ctx, userID, &dto.HospitalRequest{Name: "Again"})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	// Populate hospital:{id} and hospitals:all, then update.
	_, err = f.hospitals.GetHospital(ctx, created.ID)
	require.NoError(t, err)
	list, err := f.hospitals.ListHospitals(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = f.hospitals.UpdateHospital(ctx, userID, &dto.HospitalRequest{Name: "Cairo University Hospital"})
	require.NoError(t, err)

	got, err := f.hospitals.GetHospital(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cairo University Hospital", got.Name)

	list, err = f.hospitals.ListHospitals(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cairo University Hospital", list[0].Name)
}

func TestHospitalUsecase_UpdateWithoutProfile(t *testing.T) {
	f := newFixture(t)
	_, err := f.hospitals.UpdateHospital(context.Background(), uuid.New(), &dto.HospitalRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrHospitalProfileNotFound)
}

func TestHospitalUsecase_ServiceOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	owner := f.hospital(t, "Owner", nil, nil)
	other := f.hospital(t, "Other", nil, nil)
	s := f.service(t, owner.ID, "ICU", entity.CategoryICU, "900", "available")

	name := "Hijacked"
	_, err := f.hospitals.UpdateService(ctx, other.UserID, s.ID, &dto.UpdateServiceRequest{Name: &name})
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	err = f.hospitals.DeleteService(ctx, other.UserID, s.ID)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	err = f.hospitals.DeleteService(ctx, owner.UserID, 9999)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestHospitalUsecase_UpdateServiceRefreshesDetail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	h := f.hospital(t, "H", nil, nil)
	s := f.service(t, h.ID, "ICU", entity.CategoryICU, "900", "available")

	before, err := f.services.GetService(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "available", before.Availability)

	busy := "busy"
	category := "nicu"
	updated, err := f.hospitals.UpdateService(ctx, h.UserID, s.ID, &dto.UpdateServiceRequest{
		Availability: &busy,
		Category:     &category,
	})
	require.NoError(t, err)
	assert.Equal(t, "NICU", updated.Category)

	after, err := f.services.GetService(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "busy", after.Availability)
}

func TestHospitalUsecase_RejectsUnknownCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	h := f.hospital(t, "H", nil, nil)

	_, err := f.hospitals.AddService(ctx, h.UserID, &dto.CreateServiceRequest{
		Name:         "Spa",
		Price:        decimalPtr("10"),
		Availability: "available",
		Category:     "Spa",
	})
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
	assert.ErrorContains(t, err, "malformed category")
}

func TestHospitalUsecase_DashboardFollowsReviews(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	h := f.hospital(t, "H", nil, nil)
	s := f.service(t, h.ID, "ICU", entity.CategoryICU, "900", "available")
	p := f.patient(t, "Mona")

	dashboard, err := f.hospitals.GetDashboard(ctx, h.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dashboard.ServicesCount)
	assert.Nil(t, dashboard.AverageRating)

	_, err = f.reviews.AddReview(ctx, p.UserID, &dto.CreateReviewRequest{ServiceID: s.ID, Rating: 4})
	require.NoError(t, err)

	dashboard, err = f.hospitals.GetDashboard(ctx, h.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dashboard.ReviewsCount)
	require.NotNil(t, dashboard.AverageRating)
	assert.InDelta(t, 4.0, *dashboard.AverageRating, 1e-9)

	reviews, err := f.hospitals.GetHospitalReviews(ctx, h.UserID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Mona", reviews[0].PatientName)
}

func TestHospitalUsecase_DeleteHospital(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	h := f.hospital(t, "H", nil, nil)
	s := f.service(t, h.ID, "ICU", entity.CategoryICU, "900", "available")

	_, err := f.services.GetService(ctx, s.ID)
	require.NoError(t, err)

	require.NoError(t, f.hospitals.DeleteHospital(ctx, h.UserID))

	_, err = f.hospitals.GetHospital(ctx, h.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	_, err = f.services.GetService(ctx, s.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err), "cached detail was dropped")
}

func TestHospitalUsecase_GetHospitalServices(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	h := f.hospital(t, "H", nil, nil)
	f.service(t, h.ID, "B", entity.CategoryICU, "1", "available")
	f.service(t, h.ID, "A", entity.CategoryICU, "1", "busy")

	services, err := f.hospitals.GetHospitalServices(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "A", services[0].Name)
	assert.Equal(t, "H", services[0].HospitalName)

	_, err = f.hospitals.GetHospitalServices(ctx, 999)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
