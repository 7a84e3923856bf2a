package discovery

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const similarRecommendation = "Both services are similar. Consider other factors like hospital reputation or specific needs."

// ComparedService is the part of a service the comparison looks at.
type ComparedService struct {
	Price         decimal.Decimal
	AverageRating *float64
	DistanceKm    *float64
	Available     bool
}

// Metrics is the side-by-side result of comparing service 1 with service 2.
// Differences are absolute; nil when the metric cannot be computed.
type Metrics struct {
	PriceDifference        decimal.Decimal
	PriceComparison        string
	RatingDifference       *float64
	RatingComparison       string
	DistanceDifference     *float64
	DistanceComparison     string
	AvailabilityComparison string
	Recommendation         string
}

// Compare computes the four metric blocks and the recommendation.
// Swapping a and b swaps the service labels and keeps every difference.
func Compare(a, b ComparedService) Metrics {
	var m Metrics
	var factors []string

	// availability
	switch {
	case a.Available && b.Available:
		m.AvailabilityComparison = "Both services are available"
	case a.Available:
		m.AvailabilityComparison = "Service 1 is available, Service 2 is not"
		factors = append(factors, "Service 1 is available")
	case b.Available:
		m.AvailabilityComparison = "Service 2 is available, Service 1 is not"
		factors = append(factors, "Service 2 is available")
	default:
		m.AvailabilityComparison = "Neither service is currently available"
	}

	// price
	m.PriceDifference = a.Price.Sub(b.Price).Abs()
	switch a.Price.Cmp(b.Price) {
	case 0:
		m.PriceComparison = "Both services have the same price"
	case -1:
		m.PriceComparison = fmt.Sprintf("Service 1 is %s cheaper", formatMoney(m.PriceDifference))
		factors = append(factors, "Service 1 is more affordable")
	default:
		m.PriceComparison = fmt.Sprintf("Service 2 is %s cheaper", formatMoney(m.PriceDifference))
		factors = append(factors, "Service 2 is more affordable")
	}

	// rating
	switch {
	case a.AverageRating != nil && b.AverageRating != nil:
		diff := math.Abs(*a.AverageRating - *b.AverageRating)
		m.RatingDifference = &diff
		switch {
		case *a.AverageRating > *b.AverageRating:
			m.RatingComparison = fmt.Sprintf("Service 1 has %.1f points higher rating", diff)
			factors = append(factors, "Service 1 has better ratings")
		case *b.AverageRating > *a.AverageRating:
			m.RatingComparison = fmt.Sprintf("Service 2 has %.1f points higher rating", diff)
			factors = append(factors, "Service 2 has better ratings")
		default:
			m.RatingComparison = "Both services have the same rating"
		}
	case a.AverageRating != nil:
		m.RatingComparison = "Service 1 has ratings, Service 2 has no ratings yet"
		factors = append(factors, "Service 1 has ratings")
	case b.AverageRating != nil:
		m.RatingComparison = "Service 2 has ratings, Service 1 has no ratings yet"
		factors = append(factors, "Service 2 has ratings")
	default:
		m.RatingComparison = "Neither service has ratings yet"
	}

	// distance, only when both sides resolved one
	if a.DistanceKm != nil && b.DistanceKm != nil {
		diff := math.Abs(*a.DistanceKm - *b.DistanceKm)
		m.DistanceDifference = &diff
		switch {
		case *a.DistanceKm < *b.DistanceKm:
			m.DistanceComparison = fmt.Sprintf("Service 1 is %.2f km closer", diff)
			factors = append(factors, "Service 1 is closer")
		case *b.DistanceKm < *a.DistanceKm:
			m.DistanceComparison = fmt.Sprintf("Service 2 is %.2f km closer", diff)
			factors = append(factors, "Service 2 is closer")
		default:
			m.DistanceComparison = "Both services are at the same distance"
		}
	}

	m.Recommendation = recommend(factors)
	return m
}

func recommend(factors []string) string {
	if len(factors) == 0 {
		return similarRecommendation
	}
	return strings.Join(factors, ". ") + "."
}

func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
