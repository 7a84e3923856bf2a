package entity

import "github.com/shopspring/decimal"

// SortField selects the primary ordering of a filtered service list.
type SortField string

const (
	SortByPrice    SortField = "price"
	SortByName     SortField = "name"
	SortByRating   SortField = "rating"
	SortByDistance SortField = "distance"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
	MaxPageNumber     = 2147483647
)

// ServiceFilter is a domain-level filter for querying services.
// Used by the discovery pipeline to avoid coupling with delivery DTOs.
// Nil pointers mean "not supplied".
type ServiceFilter struct {
	HasEmergency  *bool
	HasICU        *bool
	HasNICU       *bool
	Category      *CategoryType
	HospitalName  string // substring, case-insensitive
	MaxPrice      *decimal.Decimal
	MinRating     *int
	Region        string // substring, case-insensitive
	OnlyAvailable bool
	Keyword       string // substring over service name, description and hospital name
	SortBy        SortField
	IsAscending   bool
	UserLatitude  *float64
	UserLongitude *float64
	RadiusKm      *float64
	PageNumber    int
	PageSize      int
}

// Origin returns the caller position when both coordinates were supplied.
func (f *ServiceFilter) Origin() *Point {
	if f.UserLatitude == nil || f.UserLongitude == nil {
		return nil
	}
	return &Point{Latitude: *f.UserLatitude, Longitude: *f.UserLongitude}
}

// WithDefaults fills in the page window and sort key when absent.
func (f ServiceFilter) WithDefaults() ServiceFilter {
	if f.PageNumber < 1 {
		f.PageNumber = DefaultPageNumber
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	if f.SortBy == "" {
		f.SortBy = SortByName
	}
	return f
}

// PredicateOp names a predicate the repository evaluates inside the query.
type PredicateOp string

const (
	PredicateCategoryIn    PredicateOp = "category_in"
	PredicateCategoryNotIn PredicateOp = "category_not_in"
	PredicateAvailable     PredicateOp = "available"
	PredicateMaxPrice      PredicateOp = "max_price"
	PredicateKeyword       PredicateOp = "keyword"
	PredicateHospitalName  PredicateOp = "hospital_name"
	PredicateRegion        PredicateOp = "region"
	PredicateWithinBox     PredicateOp = "within_box"
)

// StorePredicate is one store-evaluable condition. Only the operand matching Op is set.
type StorePredicate struct {
	Op         PredicateOp
	Categories []CategoryType
	Text       string
	Price      decimal.Decimal
	Box        BoundingBox
}
