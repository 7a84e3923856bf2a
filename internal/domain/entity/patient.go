package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the profile of a patient account.
type Patient struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Location  string    `gorm:"type:varchar(100)" json:"location,omitempty"`
	Address   string    `gorm:"type:varchar(200)" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	SavedServices []SavedService `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"saved_services,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// SavedService is a bookmark from a patient to a service.
type SavedService struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int       `gorm:"not null;uniqueIndex:idx_saved_patient_service" json:"patient_id"`
	ServiceID int       `gorm:"not null;uniqueIndex:idx_saved_patient_service" json:"service_id"`
	SavedDate time.Time `gorm:"not null;index" json:"saved_date"`

	// Relationships
	Service *Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"service,omitempty"`
}

func (SavedService) TableName() string {
	return "saved_services"
}
