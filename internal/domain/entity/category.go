package entity

import (
	"fmt"
	"strings"
)

// CategoryType is the hospital department a service belongs to.
// Values are persisted as integers; do not renumber.
type CategoryType int

const (
	CategoryEmergencyRoom    CategoryType = 1
	CategoryICU              CategoryType = 2
	CategoryOperationTheater CategoryType = 3
	CategoryGeneralWard      CategoryType = 4
	CategoryPrivateRoom      CategoryType = 5
	CategoryMaternityWard    CategoryType = 6
	CategoryPediatricWard    CategoryType = 7
	CategoryRadiology        CategoryType = 8
	CategoryLaboratory       CategoryType = 9
	CategoryPharmacy         CategoryType = 10
	CategoryOutpatientClinic CategoryType = 11
	CategoryAmbulanceService CategoryType = 12
	CategoryRehabilitation   CategoryType = 13
	CategoryDentalClinic     CategoryType = 14
	CategoryCardiologyUnit   CategoryType = 15
	CategoryDialysisUnit     CategoryType = 16
	CategoryNICU             CategoryType = 17
	CategoryBloodBank        CategoryType = 18
)

var categoryNames = map[CategoryType]string{
	CategoryEmergencyRoom:    "EmergencyRoom",
	CategoryICU:              "ICU",
	CategoryOperationTheater: "OperationTheater",
	CategoryGeneralWard:      "GeneralWard",
	CategoryPrivateRoom:      "PrivateRoom",
	CategoryMaternityWard:    "MaternityWard",
	CategoryPediatricWard:    "PediatricWard",
	CategoryRadiology:        "Radiology",
	CategoryLaboratory:       "Laboratory",
	CategoryPharmacy:         "Pharmacy",
	CategoryOutpatientClinic: "OutpatientClinic",
	CategoryAmbulanceService: "AmbulanceService",
	CategoryRehabilitation:   "Rehabilitation",
	CategoryDentalClinic:     "DentalClinic",
	CategoryCardiologyUnit:   "CardiologyUnit",
	CategoryDialysisUnit:     "DialysisUnit",
	CategoryNICU:             "NICU",
	CategoryBloodBank:        "BloodBank",
}

// AllCategories lists every category in numeric order.
func AllCategories() []CategoryType {
	categories := make([]CategoryType, 0, len(categoryNames))
	for c := CategoryEmergencyRoom; c <= CategoryBloodBank; c++ {
		categories = append(categories, c)
	}
	return categories
}

func (c CategoryType) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CategoryType(%d)", int(c))
}

// IsValid reports whether c is one of the known categories.
func (c CategoryType) IsValid() bool {
	_, ok := categoryNames[c]
	return ok
}

// ParseCategory resolves a category from its name (case-insensitive) or its numeric value.
func ParseCategory(s string) (CategoryType, error) {
	s = strings.TrimSpace(s)
	for c, name := range categoryNames {
		if strings.EqualFold(name, s) || fmt.Sprint(int(c)) == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}
