package repository

import (
	"testing"
	"time"

	"mos3ef-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_FindByServiceAndHospital(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository()

	h := seedHospital(t, db, "H", "", nil, nil)
	other := seedHospital(t, db, "Other", "", nil, nil)
	s := seedService(t, db, h.ID, "S", entity.CategoryICU, "1", "available")
	o := seedService(t, db, other.ID, "O", entity.CategoryICU, "1", "available")
	p := seedPatient(t, db, "Mona")

	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	older := seedReview(t, db, s.ID, p.ID, 2, day)
	newer := seedReview(t, db, s.ID, p.ID, 5, day.Add(24*time.Hour))
	seedReview(t, db, o.ID, p.ID, 3, day)

	byService, err := repo.FindByServiceID(db, s.ID)
	require.NoError(t, err)
	require.Len(t, byService, 2)
	assert.Equal(t, newer.ID, byService[0].ID)
	assert.Equal(t, older.ID, byService[1].ID)
	require.NotNil(t, byService[0].Patient)
	assert.Equal(t, "Mona", byService[0].Patient.Name)

	byHospital, err := repo.FindByHospitalID(db, h.ID)
	require.NoError(t, err)
	assert.Len(t, byHospital, 2)
}

func TestReviewRepository_UpdateDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository()

	h := seedHospital(t, db, "H", "", nil, nil)
	s := seedService(t, db, h.ID, "S", entity.CategoryICU, "1", "available")
	p := seedPatient(t, db, "Mona")
	r := seedReview(t, db, s.ID, p.ID, 2, time.Now())

	found, err := repo.FindByID(db, r.ID)
	require.NoError(t, err)
	found.Rating = 4
	found.Comment = "better now"
	require.NoError(t, repo.Update(db, found))

	found, err = repo.FindByID(db, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, found.Rating)

	affected, err := repo.Delete(db, r.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err = repo.FindByID(db, r.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
