package handler

import (
	"net/http"

	"mos3ef-api/internal/converter"
	"mos3ef-api/internal/delivery/dto"
	"mos3ef-api/internal/domain/entity"
	"mos3ef-api/internal/usecase"
	"mos3ef-api/pkg/response"
	"mos3ef-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

type ServiceHandler struct {
	serviceUsecase usecase.ServiceUsecase
	validator      *validator.CustomValidator
	log            *logrus.Logger
}

func NewServiceHandler(serviceUsecase usecase.ServiceUsecase, validator *validator.CustomValidator, log *logrus.Logger) *ServiceHandler {
	return &ServiceHandler{
		serviceUsecase: serviceUsecase,
		validator:      validator,
		log:            log,
	}
}

// GetServices lists services by name. only_available defaults to true.
func (h *ServiceHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	onlyAvailable := q.Bool("only_available", true)
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

	result, err := h.serviceUsecase.GetServices(r.Context(), onlyAvailable, page.PageNumber, page.PageSize)
	if err != nil {
		writeError(w, h.log, err, "Failed to get services")
		return
	}

	writePage(w, "Services retrieved successfully", result)
}

func (h *ServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	service, err := h.serviceUsecase.GetService(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err, "Failed to get service")
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", service)
}

func (h *ServiceHandler) FilterServices(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	req := dto.FilterServicesRequest{
		HasEmergency:  q.OptionalBool("has_emergency"),
		HasICU:        q.OptionalBool("has_icu"),
		HasNICU:       q.OptionalBool("has_nicu"),
		Category:      q.String("category"),
		HospitalName:  q.String("hospital_name"),
		MaxPrice:      q.OptionalDecimal("max_price"),
		MinRating:     q.OptionalInt("min_rating"),
		Region:        q.String("region"),
		OnlyAvailable: q.Bool("only_available", true),
		Keyword:       q.String("keyword"),
		SortBy:        q.String("sort_by"),
		IsAscending:   q.Bool("is_ascending", true),
		UserLatitude:  q.OptionalFloat("user_latitude"),
		UserLongitude: q.OptionalFloat("user_longitude"),
		RadiusKm:      q.OptionalFloat("radius_km"),
		PageNumber:    q.Int("page_number", entity.DefaultPageNumber),
		PageSize:      q.Int("page_size", entity.DefaultPageSize),
	}
	if err := q.Err(); err != nil {
		writeError(w, h.log, err, "")
		return
	}
	if err := h.validator.Check(&req); err != nil {
		writeError(w, h.log, err, "")
		return
	}

	filter, err := converter.FilterRequestToEntity(&req)
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	result, err := h.serviceUsecase.FilterServices(r.Context(), filter)
	if err != nil {
		writeError(w, h.log, err, "Failed to filter services")
		return
	}

	writePage(w, "Services retrieved successfully", result)
}

func (h *ServiceHandler) SearchServices(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	req := dto.SearchServicesRequest{
		Keyword:       q.String("keyword"),
		Category:      q.String("category"),
		UserLatitude:  q.OptionalFloat("lat"),
		UserLongitude: q.OptionalFloat("lng"),
	}
	if err := q.Err(); err != nil {
		writeError(w, h.log, err, "")
		return
	}
	if err := h.validator.Check(&req); err != nil {
		writeError(w, h.log, err, "")
		return
	}

	query, err := converter.SearchRequestToQuery(&req)
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	services, err := h.serviceUsecase.SearchServices(r.Context(), query)
	if err != nil {
		writeError(w, h.log, err, "Failed to search services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *ServiceHandler) CompareServices(w http.ResponseWriter, r *http.Request) {
	var req dto.CompareServicesRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err, "")
		return
	}
	if err := h.validator.Check(&req); err != nil {
		writeError(w, h.log, err, "")
		return
	}

	comparison, err := h.serviceUsecase.CompareServices(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to compare services")
		return
	}

	response.Success(w, http.StatusOK, "Services compared successfully", comparison)
}

func (h *ServiceHandler) GetServiceReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	reviews, err := h.serviceUsecase.GetServiceReviews(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err, "Failed to get reviews")
		return
	}

	response.Success(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}

func (h *ServiceHandler) GetServiceHospital(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	hospital, err := h.serviceUsecase.GetServiceHospital(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err, "Failed to get hospital")
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}
