package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

// FilterServicesRequest is built from the query string of GET /services/filter.
// Absent booleans and page fields are defaulted by the handler before validation.
type FilterServicesRequest struct {
	HasEmergency  *bool            `json:"has_emergency"`
	HasICU        *bool            `json:"has_icu"`
	HasNICU       *bool            `json:"has_nicu"`
	Category      string           `json:"category" validate:"omitempty,max=50"`
	HospitalName  string           `json:"hospital_name" validate:"omitempty,max=100"`
	MaxPrice      *decimal.Decimal `json:"max_price" validate:"omitempty,gte=0,lte=1000000"`
	MinRating     *int             `json:"min_rating" validate:"omitempty,gte=1,lte=5"`
	Region        string           `json:"region" validate:"omitempty,max=100"`
	OnlyAvailable bool             `json:"only_available"`
	Keyword       string           `json:"keyword" validate:"omitempty,max=200"`
	SortBy        string           `json:"sort_by" validate:"omitempty,oneof=price name rating distance"`
	IsAscending   bool             `json:"is_ascending"`
	UserLatitude  *float64         `json:"user_latitude" validate:"required_with=UserLongitude RadiusKm,omitempty,gte=-90,lte=90"`
	UserLongitude *float64         `json:"user_longitude" validate:"required_with=UserLatitude RadiusKm,omitempty,gte=-180,lte=180"`
	RadiusKm      *float64         `json:"radius_km" validate:"omitempty,gte=0,lte=10000"`
	PageNumber    int              `json:"page_number" validate:"gte=1,lte=2147483647"`
	PageSize      int              `json:"page_size" validate:"gte=1,lte=100"`
}

type SearchServicesRequest struct {
	Keyword       string   `json:"keyword" validate:"omitempty,max=200"`
	Category      string   `json:"category" validate:"omitempty,max=50"`
	UserLatitude  *float64 `json:"lat" validate:"required_with=UserLongitude,omitempty,gte=-90,lte=90"`
	UserLongitude *float64 `json:"lng" validate:"required_with=UserLatitude,omitempty,gte=-180,lte=180"`
}

type CreateServiceRequest struct {
	Name         string           `json:"name" validate:"required,max=100"`
	Description  string           `json:"description" validate:"omitempty,max=500"`
	Price        *decimal.Decimal `json:"price" validate:"required,gte=0,lte=1000000"`
	Availability string           `json:"availability" validate:"required,max=50"`
	WorkingHours string           `json:"working_hours" validate:"omitempty,max=100"`
	Category     string           `json:"category" validate:"required,max=50"`
}

type UpdateServiceRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Description  *string          `json:"description" validate:"omitempty,max=500"`
	Price        *decimal.Decimal `json:"price" validate:"omitempty,gte=0,lte=1000000"`
	Availability *string          `json:"availability" validate:"omitempty,min=1,max=50"`
	WorkingHours *string          `json:"working_hours" validate:"omitempty,max=100"`
	Category     *string          `json:"category" validate:"omitempty,max=50"`
}

// Response DTOs

// ServiceSummaryResponse is one row of a service listing. AverageRating is null
// for services without reviews; DistanceKm is null when no distance applies.
type ServiceSummaryResponse struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Price             decimal.Decimal `json:"price"`
	Availability      string          `json:"availability"`
	WorkingHours      string          `json:"working_hours,omitempty"`
	Category          string          `json:"category"`
	AverageRating     *float64        `json:"average_rating"`
	DistanceKm        *float64        `json:"distance_km"`
	HospitalID        int             `json:"hospital_id"`
	HospitalName      string          `json:"hospital_name"`
	HospitalLatitude  *float64        `json:"hospital_latitude"`
	HospitalLongitude *float64        `json:"hospital_longitude"`
}

type ServiceDetailResponse struct {
	ServiceSummaryResponse
	ReviewsCount    int    `json:"reviews_count"`
	HospitalAddress string `json:"hospital_address,omitempty"`
	HospitalRegion  string `json:"hospital_region,omitempty"`
}

// PagedResponse is one page of a list together with the size of the whole list.
type PagedResponse[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
}

// PageRequest is the page window of a plain listing.
type PageRequest struct {
	PageNumber int `json:"page_number" validate:"gte=1,lte=2147483647"`
	PageSize   int `json:"page_size" validate:"gte=1,lte=100"`
}
