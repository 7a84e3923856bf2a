package service

import (
	"testing"

	"mos3ef-api/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestServiceFilterKey_Deterministic(t *testing.T) {
	price := decimal.RequireFromString("100")
	priceScaled := decimal.RequireFromString("100.00")

	a := entity.ServiceFilter{MaxPrice: &price, Region: "Cairo", OnlyAvailable: true}
	b := entity.ServiceFilter{MaxPrice: &priceScaled, Region: "  cairo ", OnlyAvailable: true, PageNumber: 1, PageSize: 10, SortBy: entity.SortByName}

	assert.Equal(t, ServiceFilterKey(a), ServiceFilterKey(b))
}

func TestServiceFilterKey_DistinctCriteria(t *testing.T) {
	yes, no := true, false
	rating := 4
	lat, lon := 30.0, 31.0

	filters := []entity.ServiceFilter{
		{},
		{OnlyAvailable: true},
		{HasICU: &yes},
		{HasICU: &no},
		{MinRating: &rating},
		{Keyword: "x"},
		{HospitalName: "x"},
		{Region: "x"},
		{SortBy: entity.SortByPrice},
		{IsAscending: true},
		{PageNumber: 2},
		{PageSize: 20},
		{UserLatitude: &lat, UserLongitude: &lon},
	}

	seen := map[string]int{}
	for i, f := range filters {
		key := ServiceFilterKey(f)
		if j, dup := seen[key]; dup {
			t.Fatalf("filters %d and %d share key %s", j, i, key)
		}
		seen[key] = i
	}
}

func TestServiceSearchKey(t *testing.T) {
	icu := entity.CategoryICU
	origin := &entity.Point{Latitude: 30.0444, Longitude: 31.2357}

	assert.Equal(t, `service_search:""___`, ServiceSearchKey("", nil, nil))
	assert.Equal(t, `service_search:"mri"_ICU_30.0444_31.2357`, ServiceSearchKey(" MRI ", &icu, origin))

	// An underscore inside the keyword cannot collide with the segment separator.
	assert.NotEqual(t, ServiceSearchKey("a_ICU", nil, nil), ServiceSearchKey("a", &icu, nil))
}

func TestEntityKeys(t *testing.T) {
	assert.Equal(t, "service:5", ServiceKey(5))
	assert.Equal(t, "service_reviews:5", ServiceReviewsKey(5))
	assert.Equal(t, "hospitals:all", HospitalsAllKey())
	assert.Equal(t, "patient_saved:3_p2_s20", PatientSavedKey(3, 2, 20))
	assert.Equal(t, "revoked_token:abc", RevokedTokenKey("abc"))
}
