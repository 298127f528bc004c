package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-booking/internal/models"
)

// UnassignedLabel is shown for services without a specialist.
const UnassignedLabel = "Unassigned"

type Repository interface {
	// ListServices returns every service with its specialist, ordered by name.
	ListServices(ctx context.Context) ([]models.Service, error)

	GetService(ctx context.Context, id uuid.UUID) (*models.Service, error)

	CreateService(ctx context.Context, s *models.Service) error

	DeleteService(ctx context.Context, id uuid.UUID) error
}

// SpecialistName returns the display name of the service's specialist.
func SpecialistName(s models.Service) string {
	if s.Specialist != nil && s.Specialist.FullName != "" {
		return s.Specialist.FullName
	}
	return UnassignedLabel
}
