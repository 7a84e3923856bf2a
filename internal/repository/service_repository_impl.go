package repository

import (
	"errors"
	"fmt"
	"strings"

	"mos3ef-api/internal/domain/entity"
	domainRepo "mos3ef-api/internal/domain/repository"

	"gorm.io/gorm"
)

type serviceRepository struct{}

func NewServiceRepository() domainRepo.ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) Create(db *gorm.DB, service *entity.Service) error {
	return db.Omit("Hospital", "Reviews").Create(service).Error
}

func (r *serviceRepository) FindByID(db *gorm.DB, id int) (*entity.Service, error) {
	var service entity.Service
	err := db.Preload("Hospital").Preload("Reviews").Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) FindByHospitalID(db *gorm.DB, hospitalID int) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Preload("Hospital").Preload("Reviews").
		Where("hospital_id = ?", hospitalID).
		Order("name ASC, id ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

// FindCandidates returns every service matching all predicates. The count is
// the store-level size of the result, before any in-memory filtering.
func (r *serviceRepository) FindCandidates(db *gorm.DB, predicates []entity.StorePredicate) ([]entity.Service, int64, error) {
	query := db.Model(&entity.Service{}).
		Select("services.*").
		Joins("JOIN hospitals ON hospitals.id = services.hospital_id")

	for _, p := range predicates {
		var err error
		query, err = applyPredicate(query, p)
		if err != nil {
			return nil, 0, err
		}
	}

	var services []entity.Service
	err := query.
		Preload("Hospital").Preload("Reviews").
		Order("services.id ASC").
		Find(&services).Error
	if err != nil {
		return nil, 0, err
	}
	return services, int64(len(services)), nil
}

func applyPredicate(query *gorm.DB, p entity.StorePredicate) (*gorm.DB, error) {
	switch p.Op {
	case entity.PredicateCategoryIn:
		return query.Where("services.category IN ?", p.Categories), nil
	case entity.PredicateCategoryNotIn:
		return query.Where("services.category NOT IN ?", p.Categories), nil
	case entity.PredicateAvailable:
		return query.Where("LOWER(TRIM(services.availability)) = ?", entity.AvailabilityAvailable), nil
	case entity.PredicateMaxPrice:
		return query.Where("services.price <= ?", p.Price), nil
	case entity.PredicateKeyword:
		pattern := containsPattern(p.Text)
		return query.Where(
			"(LOWER(services.name) LIKE ? ESCAPE '\\' OR LOWER(services.description) LIKE ? ESCAPE '\\' OR LOWER(hospitals.name) LIKE ? ESCAPE '\\')",
			pattern, pattern, pattern,
		), nil
	case entity.PredicateHospitalName:
		return query.Where("LOWER(hospitals.name) LIKE ? ESCAPE '\\'", containsPattern(p.Text)), nil
	case entity.PredicateRegion:
		return query.Where("LOWER(hospitals.region) LIKE ? ESCAPE '\\'", containsPattern(p.Text)), nil
	case entity.PredicateWithinBox:
		// Hospitals without coordinates never match.
		query = query.Where("hospitals.latitude BETWEEN ? AND ?", p.Box.MinLat, p.Box.MaxLat)
		if p.Box.WrapsAntimeridian {
			return query.Where("(hospitals.longitude >= ? OR hospitals.longitude <= ?)", p.Box.MinLon, p.Box.MaxLon), nil
		}
		return query.Where("hospitals.longitude BETWEEN ? AND ?", p.Box.MinLon, p.Box.MaxLon), nil
	default:
		return nil, fmt.Errorf("unsupported store predicate %q", p.Op)
	}
}

// containsPattern builds a case-insensitive substring LIKE pattern with the
// wildcards in s escaped.
func containsPattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(s))
	return "%" + escaped + "%"
}

func (r *serviceRepository) FindInBatches(db *gorm.DB, batchSize int, fn func(batch []entity.Service) error) error {
	var services []entity.Service
	result := db.Preload("Hospital").Preload("Reviews").
		Order("id ASC").
		FindInBatches(&services, batchSize, func(_ *gorm.DB, _ int) error {
			return fn(services)
		})
	return result.Error
}

func (r *serviceRepository) Update(db *gorm.DB, service *entity.Service) error {
	return db.Omit("Hospital", "Reviews").Save(service).Error
}

func (r *serviceRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Service{})
	return result.RowsAffected, result.Error
}
