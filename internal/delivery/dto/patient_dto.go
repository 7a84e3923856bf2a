package dto

import "time"

// Request DTOs

type PatientProfileRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Location string `json:"location" validate:"omitempty,max=100"`
	Address  string `json:"address" validate:"omitempty,max=200"`
}

// Response DTOs

type PatientResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Address  string `json:"address,omitempty"`
}

type SavedServiceResponse struct {
	Service   ServiceSummaryResponse `json:"service"`
	SavedDate time.Time              `json:"saved_date"`
}
