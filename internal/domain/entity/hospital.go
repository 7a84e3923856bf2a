package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hospital owns the services listed in the catalog.
// Latitude and Longitude are either both set or both nil.
type Hospital struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Name        string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Description string    `gorm:"type:varchar(500)" json:"description,omitempty"`
	Address     string    `gorm:"type:varchar(200)" json:"address,omitempty"`
	Region      string    `gorm:"type:varchar(100);index" json:"region,omitempty"`
	Phone       string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Website     string    `gorm:"type:varchar(200)" json:"website,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Services []Service `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"services,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

// Location returns the hospital coordinates, or false when either one is missing.
func (h *Hospital) Location() (Point, bool) {
	if h == nil || h.Latitude == nil || h.Longitude == nil {
		return Point{}, false
	}
	return Point{Latitude: *h.Latitude, Longitude: *h.Longitude}, true
}

// HospitalStats aggregates a hospital's catalog for its dashboard.
// AverageRating is nil when no service of the hospital has been reviewed.
type HospitalStats struct {
	ServicesCount int64
	ReviewsCount  int64
	AverageRating *float64
}
