package converter

import (
	"strings"

	"mos3ef-api/internal/delivery/dto"
	"mos3ef-api/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:          hospital.ID,
		Name:        hospital.Name,
		Description: hospital.Description,
		Address:     hospital.Address,
		Region:      hospital.Region,
		Phone:       hospital.Phone,
		Website:     hospital.Website,
		Latitude:    hospital.Latitude,
		Longitude:   hospital.Longitude,
		CreatedAt:   hospital.CreatedAt,
		UpdatedAt:   hospital.UpdatedAt,
	}
}

// HospitalsToResponses converts a slice of Hospital entities to slice of HospitalResponse DTOs
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i := range hospitals {
		responses[i] = *HospitalToResponse(&hospitals[i])
	}
	return responses
}

// ApplyHospitalRequest overwrites the profile fields of hospital with req
func ApplyHospitalRequest(hospital *entity.Hospital, req *dto.HospitalRequest) {
	hospital.Name = strings.TrimSpace(req.Name)
	hospital.Description = req.Description
	hospital.Address = req.Address
	hospital.Region = strings.TrimSpace(req.Region)
	hospital.Phone = req.Phone
	hospital.Website = req.Website
	hospital.Latitude = req.Latitude
	hospital.Longitude = req.Longitude
}

func HospitalStatsToDashboard(hospitalID int, stats *entity.HospitalStats) *dto.HospitalDashboardResponse {
	return &dto.HospitalDashboardResponse{
		HospitalID:    hospitalID,
		ServicesCount: stats.ServicesCount,
		ReviewsCount:  stats.ReviewsCount,
		AverageRating: stats.AverageRating,
	}
}
