package converter

import (
	"mos3ef-api/internal/delivery/dto"
	"mos3ef-api/internal/discovery"
)

// CandidateToCompared picks the compared fields of a candidate
func CandidateToCompared(c discovery.Candidate) discovery.ComparedService {
	return discovery.ComparedService{
		Price:         c.Service.Price,
		AverageRating: c.AverageRating,
		DistanceKm:    c.DistanceKm,
		Available:     c.Service.IsAvailable(),
	}
}

// ComparisonToResponse assembles the comparison response
func ComparisonToResponse(a, b discovery.Candidate, m discovery.Metrics) *dto.CompareServicesResponse {
	return &dto.CompareServicesResponse{
		Service1: CandidateToSummary(a),
		Service2: CandidateToSummary(b),
		Metrics: dto.ComparisonMetricsResponse{
			PriceDifference:        m.PriceDifference,
			PriceComparison:        m.PriceComparison,
			RatingDifference:       m.RatingDifference,
			RatingComparison:       m.RatingComparison,
			DistanceDifference:     m.DistanceDifference,
			DistanceComparison:     m.DistanceComparison,
			AvailabilityComparison: m.AvailabilityComparison,
			Recommendation:         m.Recommendation,
		},
	}
}
