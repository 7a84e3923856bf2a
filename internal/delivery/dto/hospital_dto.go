package dto

import "time"

// Request DTOs

// HospitalRequest creates or replaces the caller's hospital profile.
type HospitalRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Address     string   `json:"address" validate:"omitempty,max=200"`
	Region      string   `json:"region" validate:"omitempty,max=100"`
	Phone       string   `json:"phone" validate:"omitempty,max=30"`
	Website     string   `json:"website" validate:"omitempty,url,max=200"`
	Latitude    *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,gte=-180,lte=180"`
}

// Response DTOs

type HospitalResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	Region      string    `json:"region,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Website     string    `json:"website,omitempty"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type HospitalDashboardResponse struct {
	HospitalID    int      `json:"hospital_id"`
	ServicesCount int64    `json:"services_count"`
	ReviewsCount  int64    `json:"reviews_count"`
	AverageRating *float64 `json:"average_rating"`
}
