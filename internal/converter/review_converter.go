package converter

import (
	"mos3ef-api/internal/delivery/dto"
	"mos3ef-api/internal/domain/entity"
)

// ReviewToResponse converts a Review entity to ReviewResponse DTO
func ReviewToResponse(review *entity.Review) *dto.ReviewResponse {
	if review == nil {
		return nil
	}

	response := &dto.ReviewResponse{
		ID:        review.ID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		ServiceID: review.ServiceID,
		PatientID: review.PatientID,
		Date:      review.Date,
	}

	// Include names if relationships were loaded
	if review.Service != nil {
		response.ServiceName = review.Service.Name
	}
	if review.Patient != nil {
		response.PatientName = review.Patient.Name
	}

	return response
}

// ReviewsToResponses converts a slice of Review entities to slice of ReviewResponse DTOs
func ReviewsToResponses(reviews []entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = *ReviewToResponse(&reviews[i])
	}
	return responses
}
