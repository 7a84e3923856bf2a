package dto

import "time"

// Request DTOs

type CreateReviewRequest struct {
	ServiceID int    `json:"service_id" validate:"required,gte=1"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment" validate:"omitempty,max=300"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=300"`
}

// Response DTOs

type ReviewResponse struct {
	ID          int       `json:"id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	ServiceID   int       `json:"service_id"`
	ServiceName string    `json:"service_name,omitempty"`
	PatientID   int       `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	Date        time.Time `json:"date"`
}
