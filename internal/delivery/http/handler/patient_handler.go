package handler

import (
	"net/http"

	"mos3ef-api/internal/delivery/dto"
	"mos3ef-api/internal/domain/entity"
	"mos3ef-api/internal/usecase"
	"mos3ef-api/pkg/response"
	"mos3ef-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
	log            *logrus.Logger
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator, log *logrus.Logger) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
		log:            log,
	}
}

func (h *PatientHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	profile, err := h.patientUsecase.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, err, "Failed to get profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *PatientHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req dto.PatientProfileRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err, "")
		return
	}
	if err := h.validator.Check(&req); err != nil {
		writeError(w, h.log, err, "")
		return
	}

	profile, err := h.patientUsecase.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to update profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}

func (h *PatientHandler) GetSavedServices(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	q := newQueryParser(r)
	page := dto.PageRequest{
		PageNumber: q.Int("page_number", entity.DefaultPageNumber),
		PageSize:   q.Int("page_size", entity.DefaultPageSize),
	}
	if err := q.Err(); err != nil {
		writeError(w, h.log, err, "")
		return
	}
	if err := h.validator.Check(&page); err != nil {
		writeError(w, h.log, err, "")
		return
	}

	saved, err := h.patientUsecase.GetSavedServices(r.Context(), userID, page.PageNumber, page.PageSize)
	if err != nil {
		writeError(w, h.log, err, "Failed to get saved services")
		return
	}

	writePage(w, "Saved services retrieved successfully", saved)
}

func (h *PatientHandler) SaveService(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	serviceID, err := pathID(r, "serviceId")
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	if err := h.patientUsecase.SaveService(r.Context(), userID, serviceID); err != nil {
		writeError(w, h.log, err, "Failed to save service")
		return
	}

	response.Success(w, http.StatusOK, "Service saved successfully", nil)
}

func (h *PatientHandler) RemoveSavedService(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	serviceID, err := pathID(r, "serviceId")
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	if err := h.patientUsecase.RemoveSavedService(r.Context(), userID, serviceID); err != nil {
		writeError(w, h.log, err, "Failed to remove saved service")
		return
	}

	response.Success(w, http.StatusOK, "Service removed successfully", nil)
}
