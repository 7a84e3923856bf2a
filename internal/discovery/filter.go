// Package discovery holds the service discovery engine: it splits a filter into
// store-evaluable and in-memory predicates, derives ratings and distances over
// the fetched rows, ranks them and cuts the requested page.
package discovery

import (
	"mos3ef-api/internal/domain/entity"
)

// Candidate is a fetched service annotated with the values derived in memory.
type Candidate struct {
	Service       entity.Service
	AverageRating *float64
	DistanceKm    *float64
}

// MemoryPredicate is evaluated against annotated candidates after the store query.
type MemoryPredicate struct {
	Name  string
	Match func(c *Candidate) bool
}

// Plan is a filter request split into its two predicate lists.
// Store predicates run first, inside the repository query; Memory predicates
// run over the materialized rows.
type Plan struct {
	Store      []entity.StorePredicate
	Memory     []MemoryPredicate
	Origin     *entity.Point
	SortBy     entity.SortField
	Ascending  bool
	PageNumber int
	PageSize   int
}

// BuildPlan splits f into store and memory predicates. f is expected to be
// validated already; defaults are applied here.
func BuildPlan(f entity.ServiceFilter) Plan {
	f = f.WithDefaults()

	plan := Plan{
		Origin:     f.Origin(),
		SortBy:     f.SortBy,
		Ascending:  f.IsAscending,
		PageNumber: f.PageNumber,
		PageSize:   f.PageSize,
	}

	include, exclude := categorySets(f)
	if len(include) > 0 {
		plan.Store = append(plan.Store, entity.StorePredicate{Op: entity.PredicateCategoryIn, Categories: include})
	}
	if len(exclude) > 0 {
		plan.Store = append(plan.Store, entity.StorePredicate{Op: entity.PredicateCategoryNotIn, Categories: exclude})
	}
	if f.OnlyAvailable {
		plan.Store = append(plan.Store, entity.StorePredicate{Op: entity.PredicateAvailable})
	}
	if f.MaxPrice != nil {
		plan.Store = append(plan.Store, entity.StorePredicate{Op: entity.PredicateMaxPrice, Price: *f.MaxPrice})
	}
	if f.Keyword != "" {
		plan.Store = append(plan.Store, entity.StorePredicate{Op: entity.PredicateKeyword, Text: f.Keyword})
	}
	if f.HospitalName != "" {
		plan.Store = append(plan.Store, entity.StorePredicate{Op: entity.PredicateHospitalName, Text: f.HospitalName})
	}
	if f.Region != "" {
		plan.Store = append(plan.Store, entity.StorePredicate{Op: entity.PredicateRegion, Text: f.Region})
	}
	if plan.Origin != nil && f.RadiusKm != nil {
		plan.Store = append(plan.Store, entity.StorePredicate{
			Op:  entity.PredicateWithinBox,
			Box: BoundingBoxAround(*plan.Origin, *f.RadiusKm),
		})
	}

	if f.MinRating != nil {
		plan.Memory = append(plan.Memory, MinRating(float64(*f.MinRating)))
	}

	return plan
}

// MinRating keeps candidates with at least one review and a mean rating >= min.
func MinRating(min float64) MemoryPredicate {
	return MemoryPredicate{
		Name: "min_rating",
		Match: func(c *Candidate) bool {
			return c.AverageRating != nil && *c.AverageRating >= min
		},
	}
}

// categorySets maps the department flags and the explicit category to
// inclusion and exclusion sets. A flag set to false excludes its department.
func categorySets(f entity.ServiceFilter) (include, exclude []entity.CategoryType) {
	flags := []struct {
		flag     *bool
		category entity.CategoryType
	}{
		{f.HasEmergency, entity.CategoryEmergencyRoom},
		{f.HasICU, entity.CategoryICU},
		{f.HasNICU, entity.CategoryNICU},
	}

	for _, fl := range flags {
		if fl.flag == nil {
			continue
		}
		if *fl.flag {
			include = append(include, fl.category)
		} else {
			exclude = append(exclude, fl.category)
		}
	}

	if f.Category != nil {
		include = appendUnique(include, *f.Category)
	}
	return include, exclude
}

func appendUnique(categories []entity.CategoryType, c entity.CategoryType) []entity.CategoryType {
	for _, existing := range categories {
		if existing == c {
			return categories
		}
	}
	return append(categories, c)
}

// Annotate derives the average rating and, when origin is known, the exact
// distance of every row. Row order is preserved.
func Annotate(rows []entity.Service, origin *entity.Point) []Candidate {
	candidates := make([]Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, Candidate{
			Service:       row,
			AverageRating: row.AverageRating(),
			DistanceKm:    DistanceToHospital(origin, row.Hospital),
		})
	}
	return candidates
}

// Execute runs the in-memory stage over rows already narrowed by the store
// predicates: annotate, memory filter, sort, then paginate. The page's
// TotalCount is the size of the fully filtered set.
func (p Plan) Execute(rows []entity.Service) Page[Candidate] {
	candidates := Annotate(rows, p.Origin)

	filtered := candidates[:0]
	for i := range candidates {
		if p.matchesMemory(&candidates[i]) {
			filtered = append(filtered, candidates[i])
		}
	}

	SortCandidates(filtered, p.SortBy, p.Ascending)
	return Paginate(filtered, p.PageNumber, p.PageSize)
}

func (p Plan) matchesMemory(c *Candidate) bool {
	for _, pred := range p.Memory {
		if !pred.Match(c) {
			return false
		}
	}
	return true
}

// SearchQuery is a keyword/category browse ranked by SearchRankingPolicy.
type SearchQuery struct {
	Keyword  string
	Category *entity.CategoryType
	Origin   *entity.Point
}

// StorePredicates returns the predicates pushed to the repository for a search.
func (q SearchQuery) StorePredicates() []entity.StorePredicate {
	var preds []entity.StorePredicate
	if q.Category != nil {
		preds = append(preds, entity.StorePredicate{Op: entity.PredicateCategoryIn, Categories: []entity.CategoryType{*q.Category}})
	}
	if q.Keyword != "" {
		preds = append(preds, entity.StorePredicate{Op: entity.PredicateKeyword, Text: q.Keyword})
	}
	return preds
}

// Rank annotates rows and orders them with SearchRankingPolicy.
func (q SearchQuery) Rank(rows []entity.Service) []Candidate {
	candidates := Annotate(rows, q.Origin)
	SearchRankingPolicy(candidates)
	return candidates
}
