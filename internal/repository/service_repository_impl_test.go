package repository

import (
	"testing"
	"time"

	"mos3ef-api/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idsOf(services []entity.Service) []int {
	ids := make([]int, len(services))
	for i, s := range services {
		ids[i] = s.ID
	}
	return ids
}

func TestServiceRepository_FindCandidates(t *testing.T) {
	db := newTestDB(t)
	repo := NewServiceRepository()

	cairo := seedHospital(t, db, "Cairo General", "Cairo", ptr(30.04), ptr(31.23))
	alex := seedHospital(t, db, "Alexandria 100% Care", "Alexandria", ptr(31.20), ptr(29.92))
	remote := seedHospital(t, db, "Desert Clinic", "Sinai", nil, nil)

	er := seedService(t, db, cairo.ID, "Emergency Room", entity.CategoryEmergencyRoom, "150.00", "Available")
	icu := seedService(t, db, cairo.ID, "Adult ICU", entity.CategoryICU, "900.00", "busy")
	mri := seedService(t, db, alex.ID, "MRI scan", entity.CategoryRadiology, "450.50", " available ")
	lab := seedService(t, db, remote.ID, "Blood tests", entity.CategoryLaboratory, "50.00", "available")

	tests := []struct {
		name       string
		predicates []entity.StorePredicate
		want       []int
	}{
		{
			name: "no predicates",
			want: []int{er.ID, icu.ID, mri.ID, lab.ID},
		},
		{
			name:       "category in",
			predicates: []entity.StorePredicate{{Op: entity.PredicateCategoryIn, Categories: []entity.CategoryType{entity.CategoryICU, entity.CategoryRadiology}}},
			want:       []int{icu.ID, mri.ID},
		},
		{
			name:       "category not in",
			predicates: []entity.StorePredicate{{Op: entity.PredicateCategoryNotIn, Categories: []entity.CategoryType{entity.CategoryEmergencyRoom}}},
			want:       []int{icu.ID, mri.ID, lab.ID},
		},
		{
			name:       "available ignores case and padding",
			predicates: []entity.StorePredicate{{Op: entity.PredicateAvailable}},
			want:       []int{er.ID, mri.ID, lab.ID},
		},
		{
			name:       "max price inclusive",
			predicates: []entity.StorePredicate{{Op: entity.PredicateMaxPrice, Price: decimal.RequireFromString("450.5")}},
			want:       []int{er.ID, mri.ID, lab.ID},
		},
		{
			name:       "keyword matches hospital name",
			predicates: []entity.StorePredicate{{Op: entity.PredicateKeyword, Text: "CAIRO"}},
			want:       []int{er.ID, icu.ID},
		},
		{
			name:       "keyword matches service name",
			predicates: []entity.StorePredicate{{Op: entity.PredicateKeyword, Text: "mri"}},
			want:       []int{mri.ID},
		},
		{
			name:       "percent is literal",
			predicates: []entity.StorePredicate{{Op: entity.PredicateHospitalName, Text: "100%"}},
			want:       []int{mri.ID},
		},
		{
			name:       "underscore is literal",
			predicates: []entity.StorePredicate{{Op: entity.PredicateHospitalName, Text: "_"}},
			want:       []int{},
		},
		{
			name:       "region",
			predicates: []entity.StorePredicate{{Op: entity.PredicateRegion, Text: "alex"}},
			want:       []int{mri.ID},
		},
		{
			name: "bounding box skips hospitals without coordinates",
			predicates: []entity.StorePredicate{{Op: entity.PredicateWithinBox, Box: entity.BoundingBox{
				MinLat: 29, MaxLat: 32, MinLon: 29, MaxLon: 32,
			}}},
			want: []int{er.ID, icu.ID, mri.ID},
		},
		{
			name: "predicates combine with AND",
			predicates: []entity.StorePredicate{
				{Op: entity.PredicateAvailable},
				{Op: entity.PredicateRegion, Text: "cairo"},
			},
			want: []int{er.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, count, err := repo.FindCandidates(db, tt.predicates)
			require.NoError(t, err)
			assert.Equal(t, tt.want, idsOf(rows))
			assert.Equal(t, int64(len(tt.want)), count)
		})
	}
}

func TestServiceRepository_FindCandidatesAcrossAntimeridian(t *testing.T) {
	db := newTestDB(t)
	repo := NewServiceRepository()

	east := seedHospital(t, db, "Suva Hospital", "Fiji", ptr(0), ptr(179.9))
	west := seedHospital(t, db, "Apia Clinic", "Samoa", ptr(0), ptr(-179.9))
	greenwich := seedHospital(t, db, "Accra Centre", "Ghana", ptr(0), ptr(0))

	e := seedService(t, db, east.ID, "ICU", entity.CategoryICU, "100", "available")
	w := seedService(t, db, west.ID, "ICU", entity.CategoryICU, "100", "available")
	seedService(t, db, greenwich.ID, "ICU", entity.CategoryICU, "100", "available")

	box := entity.BoundingBox{MinLat: -1, MaxLat: 1, MinLon: 179.5, MaxLon: -179.5, WrapsAntimeridian: true}
	rows, _, err := repo.FindCandidates(db, []entity.StorePredicate{{Op: entity.PredicateWithinBox, Box: box}})
	require.NoError(t, err)
	assert.Equal(t, []int{e.ID, w.ID}, idsOf(rows))
}

func TestServiceRepository_FindCandidatesLoadsRelations(t *testing.T) {
	db := newTestDB(t)
	repo := NewServiceRepository()

	h := seedHospital(t, db, "Cairo General", "Cairo", ptr(30.04), ptr(31.23))
	s := seedService(t, db, h.ID, "Dialysis", entity.CategoryDialysisUnit, "300", "available")
	p := seedPatient(t, db, "Mona")
	seedReview(t, db, s.ID, p.ID, 4, time.Now())
	seedReview(t, db, s.ID, p.ID, 5, time.Now())

	rows, _, err := repo.FindCandidates(db, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NotNil(t, rows[0].Hospital)
	assert.Equal(t, "Cairo General", rows[0].Hospital.Name)
	assert.Len(t, rows[0].Reviews, 2)
	assert.InDelta(t, 4.5, *rows[0].AverageRating(), 1e-9)
	assert.True(t, rows[0].Price.Equal(decimal.NewFromInt(300)))
}

func TestServiceRepository_UnknownPredicate(t *testing.T) {
	db := newTestDB(t)
	_, _, err := NewServiceRepository().FindCandidates(db, []entity.StorePredicate{{Op: "fuzzy"}})
	assert.ErrorContains(t, err, "fuzzy")
}

func TestServiceRepository_FindInBatches(t *testing.T) {
	db := newTestDB(t)
	repo := NewServiceRepository()

	h := seedHospital(t, db, "H", "", nil, nil)
	for i := 0; i < 5; i++ {
		seedService(t, db, h.ID, "S", entity.CategoryPharmacy, "1", "available")
	}

	var sizes []int
	err := repo.FindInBatches(db, 2, func(batch []entity.Service) error {
		sizes = append(sizes, len(batch))
		for _, s := range batch {
			assert.NotNil(t, s.Hospital)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, sizes)
}

func TestServiceRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewServiceRepository()
	h := seedHospital(t, db, "H", "", nil, nil)

	s := &entity.Service{Name: "X-Ray", Price: decimal.NewFromInt(80), Availability: "available", Category: entity.CategoryRadiology, HospitalID: h.ID}
	require.NoError(t, repo.Create(db, s))
	require.NotZero(t, s.ID)

	found, err := repo.FindByID(db, s.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "X-Ray", found.Name)

	found.Name = "Digital X-Ray"
	require.NoError(t, repo.Update(db, found))

	byHospital, err := repo.FindByHospitalID(db, h.ID)
	require.NoError(t, err)
	require.Len(t, byHospital, 1)
	assert.Equal(t, "Digital X-Ray", byHospital[0].Name)

	affected, err := repo.Delete(db, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	missing, err := repo.FindByID(db, s.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
