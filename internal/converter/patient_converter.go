package converter

import (
	"mos3ef-api/internal/delivery/dto"
	"mos3ef-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:       patient.ID,
		Name:     patient.Name,
		Location: patient.Location,
		Address:  patient.Address,
	}
}

// SavedServicesToResponses converts saved services with Service (and its
// Hospital and Reviews) loaded
func SavedServicesToResponses(saved []entity.SavedService) []dto.SavedServiceResponse {
	responses := make([]dto.SavedServiceResponse, 0, len(saved))
	for _, s := range saved {
		if s.Service == nil {
			continue
		}
		responses = append(responses, dto.SavedServiceResponse{
			Service:   ServiceToSummary(s.Service),
			SavedDate: s.SavedDate,
		})
	}
	return responses
}
