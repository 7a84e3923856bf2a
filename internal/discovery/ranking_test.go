package discovery

import (
	"testing"

	"mos3ef-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func candidateIDs(cs []Candidate) []int {
	ids := make([]int, 0, len(cs))
	for _, c := range cs {
		ids = append(ids, c.Service.ID)
	}
	return ids
}

func TestSortCandidates(t *testing.T) {
	rated := func(v float64) *float64 { return &v }

	base := func() []Candidate {
		return []Candidate{
			{Service: entity.Service{ID: 1, Name: "alpha", Price: money("150")}, AverageRating: rated(3.5), DistanceKm: floatPtr(12)},
			{Service: entity.Service{ID: 2, Name: "Zeta", Price: money("80.50")}, AverageRating: nil, DistanceKm: nil},
			{Service: entity.Service{ID: 3, Name: "Beta", Price: money("150.00")}, AverageRating: rated(4.5), DistanceKm: floatPtr(3)},
			{Service: entity.Service{ID: 4, Name: "beta", Price: money("20")}, AverageRating: rated(0.5), DistanceKm: nil},
		}
	}

	tests := []struct {
		name      string
		by        entity.SortField
		ascending bool
		want      []int
	}{
		// Byte-wise: upper case sorts before lower case.
		{"name ascending is case-sensitive", entity.SortByName, true, []int{3, 2, 1, 4}},
		{"name descending", entity.SortByName, false, []int{4, 1, 2, 3}},
		{"price ascending, equal prices by id", entity.SortByPrice, true, []int{4, 2, 1, 3}},
		{"price descending, equal prices by id", entity.SortByPrice, false, []int{1, 3, 2, 4}},
		{"rating ascending treats unrated as zero", entity.SortByRating, true, []int{2, 4, 1, 3}},
		{"rating descending puts unrated last", entity.SortByRating, false, []int{3, 1, 4, 2}},
		{"distance ascending, missing last by id", entity.SortByDistance, true, []int{3, 1, 2, 4}},
		{"distance descending, missing still last", entity.SortByDistance, false, []int{1, 3, 2, 4}},
		{"unknown key falls back to name", entity.SortField("bogus"), true, []int{3, 2, 1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := base()
			SortCandidates(cs, tt.by, tt.ascending)
			assert.Equal(t, tt.want, candidateIDs(cs))
		})
	}
}

func TestSortCandidates_IsDeterministicRegardlessOfInputOrder(t *testing.T) {
	a := []Candidate{
		{Service: entity.Service{ID: 9, Name: "same"}},
		{Service: entity.Service{ID: 2, Name: "same"}},
		{Service: entity.Service{ID: 5, Name: "same"}},
	}
	b := []Candidate{a[2], a[0], a[1]}

	SortCandidates(a, entity.SortByName, true)
	SortCandidates(b, entity.SortByName, true)

	assert.Equal(t, []int{2, 5, 9}, candidateIDs(a))
	assert.Equal(t, candidateIDs(a), candidateIDs(b))
}

func TestSearchRankingPolicy(t *testing.T) {
	cs := []Candidate{
		{Service: entity.Service{ID: 1, Availability: "unavailable"}, DistanceKm: floatPtr(1)},
		{Service: entity.Service{ID: 2, Availability: "available"}, DistanceKm: nil},
		{Service: entity.Service{ID: 3, Availability: "AVAILABLE"}, DistanceKm: floatPtr(8)},
		{Service: entity.Service{ID: 4, Availability: "available"}, DistanceKm: floatPtr(2)},
		{Service: entity.Service{ID: 5, Availability: "full"}, DistanceKm: nil},
		{Service: entity.Service{ID: 6, Availability: "full"}, DistanceKm: floatPtr(0.5)},
	}

	SearchRankingPolicy(cs)

	assert.Equal(t, []int{4, 3, 2, 6, 1, 5}, candidateIDs(cs))
}
