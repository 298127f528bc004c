package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Description     string  `gorm:"size:255" json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`

	SpecialistID *uuid.UUID `gorm:"type:uuid" json:"specialist_id"`
	Specialist   *Profile   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"specialist,omitempty"`

	ImageKey string `gorm:"size:255" json:"image_key"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
