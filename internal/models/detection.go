package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Detection records one detection request for the history endpoint.
type Detection struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Category   string    `gorm:"not null" json:"category"`
	Confidence float64   `gorm:"not null" json:"confidence"`
	Source     string    `gorm:"not null" json:"source"`
	ImageURL   string    `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate assigns the ID.
func (d *Detection) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
