package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"mos3ef-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Cache key layout. Every key is a pure function of its inputs.
const (
	keyService          = "service:%d"
	keyServiceReviews   = "service_reviews:%d"
	keyServiceHospital  = "service_hospital:%d"
	keyServiceFilter    = "service_filter:%s"
	keyServiceSearch    = "service_search:%s_%s_%s_%s"
	keyHospital         = "hospital:%d"
	keyHospitalsAll     = "hospitals:all"
	keyHospitalServices = "hospital_services:%d"
	keyHospitalReviews  = "hospital_reviews:%d"
	keyDashboard        = "dashboard:%d"
	keyPatientProfile   = "patient_profile:%s"
	keyPatientSaved     = "patient_saved:%d_p%d_s%d"
	keyRevokedToken     = "revoked_token:%s"
)

func ServiceKey(id int) string {
	return fmt.Sprintf(keyService, id)
}

func ServiceReviewsKey(id int) string {
	return fmt.Sprintf(keyServiceReviews, id)
}

func ServiceHospitalKey(id int) string {
	return fmt.Sprintf(keyServiceHospital, id)
}

func HospitalKey(id int) string {
	return fmt.Sprintf(keyHospital, id)
}

func HospitalsAllKey() string {
	return keyHospitalsAll
}

func HospitalServicesKey(id int) string {
	return fmt.Sprintf(keyHospitalServices, id)
}

func HospitalReviewsKey(id int) string {
	return fmt.Sprintf(keyHospitalReviews, id)
}

func DashboardKey(hospitalID int) string {
	return fmt.Sprintf(keyDashboard, hospitalID)
}

// PatientProfileKey is keyed by account, so a profile read needs no lookup first.
func PatientProfileKey(userID uuid.UUID) string {
	return fmt.Sprintf(keyPatientProfile, userID)
}

func PatientSavedKey(patientID, page, size int) string {
	return fmt.Sprintf(keyPatientSaved, patientID, page, size)
}

func RevokedTokenKey(tokenID string) string {
	return fmt.Sprintf(keyRevokedToken, tokenID)
}

// filterSignature is the canonical form of a ServiceFilter. Field order is
// fixed by the struct, so json.Marshal yields one encoding per filter.
type filterSignature struct {
	HasEmergency  *bool    `json:"em"`
	HasICU        *bool    `json:"icu"`
	HasNICU       *bool    `json:"nicu"`
	Category      *int     `json:"cat"`
	HospitalName  string   `json:"hn"`
	MaxPrice      *string  `json:"mp"`
	MinRating     *int     `json:"mr"`
	Region        string   `json:"rg"`
	OnlyAvailable bool     `json:"av"`
	Keyword       string   `json:"kw"`
	SortBy        string   `json:"sb"`
	IsAscending   bool     `json:"asc"`
	UserLatitude  *float64 `json:"lat"`
	UserLongitude *float64 `json:"lon"`
	RadiusKm      *float64 `json:"r"`
	PageNumber    int      `json:"p"`
	PageSize      int      `json:"s"`
}

// ServiceFilterKey derives the cache key of a filter request. Defaults are
// applied first and substring criteria are case-folded, since matching
// ignores case.
func ServiceFilterKey(f entity.ServiceFilter) string {
	f = f.WithDefaults()

	sig := filterSignature{
		HasEmergency:  f.HasEmergency,
		HasICU:        f.HasICU,
		HasNICU:       f.HasNICU,
		HospitalName:  normalizeText(f.HospitalName),
		MinRating:     f.MinRating,
		Region:        normalizeText(f.Region),
		OnlyAvailable: f.OnlyAvailable,
		Keyword:       normalizeText(f.Keyword),
		SortBy:        string(f.SortBy),
		IsAscending:   f.IsAscending,
		UserLatitude:  f.UserLatitude,
		UserLongitude: f.UserLongitude,
		RadiusKm:      f.RadiusKm,
		PageNumber:    f.PageNumber,
		PageSize:      f.PageSize,
	}
	if f.Category != nil {
		c := int(*f.Category)
		sig.Category = &c
	}
	if f.MaxPrice != nil {
		// String drops trailing zeros: 100 and 100.00 are the same bound.
		bound := f.MaxPrice.String()
		sig.MaxPrice = &bound
	}

	encoded, _ := json.Marshal(sig)
	return fmt.Sprintf(keyServiceFilter, encoded)
}

// ServiceSearchKey derives the cache key of a search. The keyword is quoted so
// an underscore inside it cannot shift the other segments.
func ServiceSearchKey(keyword string, category *entity.CategoryType, origin *entity.Point) string {
	cat, lat, lon := "", "", ""
	if category != nil {
		cat = category.String()
	}
	if origin != nil {
		lat = strconv.FormatFloat(origin.Latitude, 'f', -1, 64)
		lon = strconv.FormatFloat(origin.Longitude, 'f', -1, 64)
	}
	return fmt.Sprintf(keyServiceSearch, strconv.Quote(normalizeText(keyword)), cat, lat, lon)
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
