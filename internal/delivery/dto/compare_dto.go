package dto

import "github.com/shopspring/decimal"

type CompareServicesRequest struct {
	Service1ID    int      `json:"service1_id" validate:"required,gte=1"`
	Service2ID    int      `json:"service2_id" validate:"required,gte=1"`
	UserLatitude  *float64 `json:"user_latitude" validate:"required_with=UserLongitude,omitempty,gte=-90,lte=90"`
	UserLongitude *float64 `json:"user_longitude" validate:"required_with=UserLatitude,omitempty,gte=-180,lte=180"`
}

type ComparisonMetricsResponse struct {
	PriceDifference        decimal.Decimal `json:"price_difference"`
	PriceComparison        string          `json:"price_comparison"`
	RatingDifference       *float64        `json:"rating_difference"`
	RatingComparison       string          `json:"rating_comparison"`
	DistanceDifference     *float64        `json:"distance_difference"`
	DistanceComparison     string          `json:"distance_comparison,omitempty"`
	AvailabilityComparison string          `json:"availability_comparison"`
	Recommendation         string          `json:"recommendation"`
}

type CompareServicesResponse struct {
	Service1 ServiceSummaryResponse    `json:"service1"`
	Service2 ServiceSummaryResponse    `json:"service2"`
	Metrics  ComparisonMetricsResponse `json:"metrics"`
}
