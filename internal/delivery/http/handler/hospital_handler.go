package handler

import (
	"net/http"

	"mos3ef-api/internal/delivery/dto"
	"mos3ef-api/internal/usecase"
	"mos3ef-api/pkg/response"
	"mos3ef-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
	log             *logrus.Logger
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, validator *validator.CustomValidator, log *logrus.Logger) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
		log:             log,
	}
}

// ==================== PUBLIC ====================

func (h *HospitalHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalUsecase.ListHospitals(r.Context())
	if err != nil {
		writeError(w, h.log, err, "Failed to get hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	hospital, err := h.hospitalUsecase.GetHospital(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err, "Failed to get hospital")
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}

func (h *HospitalHandler) GetHospitalServices(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	services, err := h.hospitalUsecase.GetHospitalServices(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err, "Failed to get services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

// ==================== HOSPITAL ACCOUNT ====================

func (h *HospitalHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	hospital, err := h.hospitalUsecase.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, err, "Failed to get profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", hospital)
}

func (h *HospitalHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req dto.HospitalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err, "")
		return
	}
	if err := h.validator.Check(&req); err != nil {
		writeError(w, h.log, err, "")
		return
	}

	hospital, err := h.hospitalUsecase.CreateHospital(r.Context(), userID, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to create profile")
		return
	}

	response.Success(w, http.StatusCreated, "Profile created successfully", hospital)
}

func (h *HospitalHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req dto.HospitalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err, "")
		return
	}
	if err := h.validator.Check(&req); err != nil {
		writeError(w, h.log, err, "")
		return
	}

	hospital, err := h.hospitalUsecase.UpdateHospital(r.Context(), userID, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to update profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", hospital)
}

func (h *HospitalHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	if err := h.hospitalUsecase.DeleteHospital(r.Context(), userID); err != nil {
		writeError(w, h.log, err, "Failed to delete profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile deleted successfully", nil)
}

func (h *HospitalHandler) AddService(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req dto.CreateServiceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err, "")
		return
	}
	if err := h.validator.Check(&req); err != nil {
		writeError(w, h.log, err, "")
		return
	}

	service, err := h.hospitalUsecase.AddService(r.Context(), userID, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to add service")
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", service)
}

func (h *HospitalHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	var req dto.UpdateServiceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err, "")
		return
	}
	if err := h.validator.Check(&req); err != nil {
		writeError(w, h.log, err, "")
		return
	}

	service, err := h.hospitalUsecase.UpdateService(r.Context(), userID, id, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to update service")
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", service)
}

func (h *HospitalHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	if err := h.hospitalUsecase.DeleteService(r.Context(), userID, id); err != nil {
		writeError(w, h.log, err, "Failed to delete service")
		return
	}

	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}

func (h *HospitalHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	dashboard, err := h.hospitalUsecase.GetDashboard(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, err, "Failed to get dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *HospitalHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	reviews, err := h.hospitalUsecase.GetHospitalReviews(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, err, "Failed to get reviews")
		return
	}

	response.Success(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}
