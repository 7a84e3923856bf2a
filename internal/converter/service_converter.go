package converter

import (
	"strings"

	"mos3ef-api/internal/delivery/dto"
	"mos3ef-api/internal/discovery"
	"mos3ef-api/internal/domain/entity"
	"mos3ef-api/pkg/apperror"
)

// ServiceToSummary converts a Service entity to a listing row. The rating is
// derived from the loaded reviews; distance is left empty.
func ServiceToSummary(service *entity.Service) dto.ServiceSummaryResponse {
	return CandidateToSummary(discovery.Candidate{
		Service:       *service,
		AverageRating: service.AverageRating(),
	})
}

// CandidateToSummary converts an annotated discovery candidate to a listing row.
func CandidateToSummary(c discovery.Candidate) dto.ServiceSummaryResponse {
	s := c.Service
	response := dto.ServiceSummaryResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		Price:         s.Price,
		Availability:  s.Availability,
		WorkingHours:  s.WorkingHours,
		Category:      s.Category.String(),
		AverageRating: c.AverageRating,
		DistanceKm:    c.DistanceKm,
		HospitalID:    s.HospitalID,
	}

	if s.Hospital != nil {
		response.HospitalName = s.Hospital.Name
		response.HospitalLatitude = s.Hospital.Latitude
		response.HospitalLongitude = s.Hospital.Longitude
	}

	return response
}

// CandidatesToSummaries converts a slice of candidates to listing rows
func CandidatesToSummaries(candidates []discovery.Candidate) []dto.ServiceSummaryResponse {
	responses := make([]dto.ServiceSummaryResponse, len(candidates))
	for i, c := range candidates {
		responses[i] = CandidateToSummary(c)
	}
	return responses
}

// ServicesToSummaries converts a slice of Service entities to listing rows
func ServicesToSummaries(services []entity.Service) []dto.ServiceSummaryResponse {
	responses := make([]dto.ServiceSummaryResponse, len(services))
	for i := range services {
		responses[i] = ServiceToSummary(&services[i])
	}
	return responses
}

// ServiceToDetail converts a Service entity with Hospital and Reviews loaded
func ServiceToDetail(service *entity.Service) *dto.ServiceDetailResponse {
	if service == nil {
		return nil
	}

	response := &dto.ServiceDetailResponse{
		ServiceSummaryResponse: ServiceToSummary(service),
		ReviewsCount:           len(service.Reviews),
	}
	if service.Hospital != nil {
		response.HospitalAddress = service.Hospital.Address
		response.HospitalRegion = service.Hospital.Region
	}
	return response
}

// CandidatePageToResponse converts a discovery page to the paged DTO
func CandidatePageToResponse(page discovery.Page[discovery.Candidate]) dto.PagedResponse[dto.ServiceSummaryResponse] {
	mapped := discovery.MapPage(page, CandidateToSummary)
	return dto.PagedResponse[dto.ServiceSummaryResponse]{
		Items:      mapped.Items,
		TotalCount: mapped.TotalCount,
		PageNumber: mapped.PageNumber,
		PageSize:   mapped.PageSize,
	}
}

// CreateServiceRequestToEntity converts a create request into a Service owned by hospitalID
func CreateServiceRequestToEntity(req *dto.CreateServiceRequest, hospitalID int) (*entity.Service, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	return &entity.Service{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Price:        *req.Price,
		Availability: strings.TrimSpace(req.Availability),
		WorkingHours: req.WorkingHours,
		Category:     category,
		HospitalID:   hospitalID,
	}, nil
}

// ApplyServiceUpdate copies the supplied fields of req onto service
func ApplyServiceUpdate(service *entity.Service, req *dto.UpdateServiceRequest) error {
	if req.Category != nil {
		category, err := parseCategory(*req.Category)
		if err != nil {
			return err
		}
		service.Category = category
	}
	if req.Name != nil {
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Availability != nil {
		service.Availability = strings.TrimSpace(*req.Availability)
	}
	if req.WorkingHours != nil {
		service.WorkingHours = *req.WorkingHours
	}
	return nil
}

// FilterRequestToEntity converts a validated filter request to the domain filter.
// Text criteria are trimmed; an unknown category is a bad request.
func FilterRequestToEntity(req *dto.FilterServicesRequest) (entity.ServiceFilter, error) {
	filter := entity.ServiceFilter{
		HasEmergency:  req.HasEmergency,
		HasICU:        req.HasICU,
		HasNICU:       req.HasNICU,
		HospitalName:  strings.TrimSpace(req.HospitalName),
		MaxPrice:      req.MaxPrice,
		MinRating:     req.MinRating,
		Region:        strings.TrimSpace(req.Region),
		OnlyAvailable: req.OnlyAvailable,
		Keyword:       strings.TrimSpace(req.Keyword),
		SortBy:        entity.SortField(req.SortBy),
		IsAscending:   req.IsAscending,
		UserLatitude:  req.UserLatitude,
		UserLongitude: req.UserLongitude,
		RadiusKm:      req.RadiusKm,
		PageNumber:    req.PageNumber,
		PageSize:      req.PageSize,
	}

	if strings.TrimSpace(req.Category) != "" {
		category, err := parseCategory(req.Category)
		if err != nil {
			return entity.ServiceFilter{}, err
		}
		filter.Category = &category
	}

	return filter, nil
}

// SearchRequestToQuery converts a validated search request to a discovery query
func SearchRequestToQuery(req *dto.SearchServicesRequest) (discovery.SearchQuery, error) {
	query := discovery.SearchQuery{Keyword: strings.TrimSpace(req.Keyword)}

	if strings.TrimSpace(req.Category) != "" {
		category, err := parseCategory(req.Category)
		if err != nil {
			return discovery.SearchQuery{}, err
		}
		query.Category = &category
	}
	if req.UserLatitude != nil && req.UserLongitude != nil {
		query.Origin = &entity.Point{Latitude: *req.UserLatitude, Longitude: *req.UserLongitude}
	}

	return query, nil
}

func parseCategory(s string) (entity.CategoryType, error) {
	category, err := entity.ParseCategory(s)
	if err != nil {
		return 0, apperror.BadRequest("malformed category %q", strings.TrimSpace(s))
	}
	return category, nil
}
