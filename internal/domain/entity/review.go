package entity

import "time"

// Review is a patient's 1-5 rating of a service.
type Review struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"type:varchar(300)" json:"comment,omitempty"`
	ServiceID int       `gorm:"not null;index" json:"service_id"`
	PatientID int       `gorm:"not null;index" json:"patient_id"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
