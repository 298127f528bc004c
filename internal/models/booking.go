package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	Client   Profile   `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	ServiceID uuid.UUID `gorm:"type:uuid" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	EmployeeID uuid.UUID `gorm:"type:uuid;index" json:"employee_id"`

	AppointmentDate time.Time `gorm:"index" json:"appointment_date"`
	Status          string    `gorm:"size:20;default:'pending'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
