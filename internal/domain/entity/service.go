package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AvailabilityAvailable is the only availability value treated as bookable.
const AvailabilityAvailable = "available"

// Service is a bookable hospital service. The average rating is never stored,
// it is derived from Reviews.
type Service struct {
	ID           int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"type:varchar(100);not null;index" json:"name"`
	Description  string          `gorm:"type:varchar(500)" json:"description,omitempty"`
	Price        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	Availability string          `gorm:"type:varchar(50);not null" json:"availability"`
	WorkingHours string          `gorm:"type:varchar(100)" json:"working_hours,omitempty"`
	Category     CategoryType    `gorm:"not null;index" json:"category"`
	HospitalID   int             `gorm:"not null;index" json:"hospital_id"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

func (Service) TableName() string {
	return "services"
}

// IsAvailable reports whether the availability value reads "available", ignoring case.
func (s *Service) IsAvailable() bool {
	return strings.EqualFold(strings.TrimSpace(s.Availability), AvailabilityAvailable)
}

// AverageRating is the mean of the loaded reviews, or nil when there are none.
func (s *Service) AverageRating() *float64 {
	return AverageOf(s.Reviews)
}

// AverageOf returns the mean rating of reviews, or nil for an empty slice.
func AverageOf(reviews []Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return &avg
}
