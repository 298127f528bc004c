package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type Repository interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)

	// UpdateContact writes full_name and phone only.
	UpdateContact(ctx context.Context, id uuid.UUID, fullName, phone string) error

	// ListByRole returns profiles with the given role ordered by full name.
	ListByRole(ctx context.Context, role string) ([]models.Profile, error)

	// ListAll returns every profile ordered by full name.
	ListAll(ctx context.Context) ([]models.Profile, error)
}
