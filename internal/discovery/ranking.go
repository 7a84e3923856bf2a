package discovery

import (
	"cmp"
	"slices"
	"strings"

	"mos3ef-api/internal/domain/entity"
)

// SortCandidates orders candidates in place by the given key and direction.
//
//   - price: numeric.
//   - name: case-sensitive, byte-wise lexicographic ("Zeta" < "alpha").
//   - rating: unrated candidates sort as 0.
//   - distance: candidates without a distance sort last in both directions.
//
// Ties are broken by service ID ascending, whatever the direction.
func SortCandidates(candidates []Candidate, by entity.SortField, ascending bool) {
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		var c int
		switch by {
		case entity.SortByPrice:
			c = directed(a.Service.Price.Cmp(b.Service.Price), ascending)
		case entity.SortByRating:
			c = directed(cmp.Compare(ratingKey(a.AverageRating), ratingKey(b.AverageRating)), ascending)
		case entity.SortByDistance:
			c = compareDistance(a.DistanceKm, b.DistanceKm, ascending)
		default:
			c = directed(strings.Compare(a.Service.Name, b.Service.Name), ascending)
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.Service.ID, b.Service.ID)
	})
}

// SearchRankingPolicy orders search results: available services first, then by
// distance ascending with unknown distances last, then by service ID.
func SearchRankingPolicy(candidates []Candidate) {
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		if c := compareAvailability(&a.Service, &b.Service); c != 0 {
			return c
		}
		if c := compareDistance(a.DistanceKm, b.DistanceKm, true); c != 0 {
			return c
		}
		return cmp.Compare(a.Service.ID, b.Service.ID)
	})
}

func directed(c int, ascending bool) int {
	if ascending {
		return c
	}
	return -c
}

// ratingKey is only used for ordering; the output keeps the nil rating.
func ratingKey(avg *float64) float64 {
	if avg == nil {
		return 0
	}
	return *avg
}

func compareDistance(a, b *float64, ascending bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return directed(cmp.Compare(*a, *b), ascending)
}

func compareAvailability(a, b *entity.Service) int {
	switch aa, ba := a.IsAvailable(), b.IsAvailable(); {
	case aa == ba:
		return 0
	case aa:
		return -1
	default:
		return 1
	}
}
