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

func TestReviewUsecase_AddInvalidatesServiceViews(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	h := f.hospital(t, "H", nil, nil)
	s := f.service(t, h.ID, "ICU", entity.CategoryICU, "900", "available")
	p := f.patient(t, "Mona")

	detail, err := f.services.GetService(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.AverageRating)
	reviews, err := f.services.GetServiceReviews(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	created, err := f.reviews.AddReview(ctx, p.UserID, &dto.CreateReviewRequest{ServiceID: s.ID, Rating: 5, Comment: " great "})
	require.NoError(t, err)
	assert.Equal(t, "great", created.Comment)
	assert.Equal(t, "ICU", created.ServiceName)

	detail, err = f.services.GetService(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.AverageRating)
	assert.InDelta(t, 5.0, *detail.AverageRating, 1e-9)

	reviews, err = f.services.GetServiceReviews(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestReviewUsecase_OnlyAuthorMayModify(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	h := f.hospital(t, "H", nil, nil)
	s := f.service(t, h.ID, "ICU", entity.CategoryICU, "900", "available")
	author := f.patient(t, "Mona")
	stranger := f.patient(t, "Omar")

	created, err := f.reviews.AddReview(ctx, author.UserID, &dto.CreateReviewRequest{ServiceID: s.ID, Rating: 2})
	require.NoError(t, err)

	_, err = f.reviews.UpdateReview(ctx, stranger.UserID, created.ID, &dto.UpdateReviewRequest{Rating: 1})
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(f.reviews.DeleteReview(ctx, stranger.UserID, created.ID)))

	updated, err := f.reviews.UpdateReview(ctx, author.UserID, created.ID, &dto.UpdateReviewRequest{Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)

	require.NoError(t, f.reviews.DeleteReview(ctx, author.UserID, created.ID))
	err = f.reviews.DeleteReview(ctx, author.UserID, created.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestReviewUsecase_RequiresPatientAndService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.patient(t, "Mona")

	_, err := f.reviews.AddReview(ctx, uuid.New(), &dto.CreateReviewRequest{ServiceID: 1, Rating: 3})
	assert.ErrorIs(t, err, ErrPatientProfileNotFound)

	_, err = f.reviews.AddReview(ctx, p.UserID, &dto.CreateReviewRequest{ServiceID: 42, Rating: 3})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.ErrorContains(t, err, "service with ID 42 not found")
}
