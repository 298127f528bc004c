package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type Repository interface {
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// ListAll returns every booking ordered by appointment date ascending.
	ListAll(
		ctx context.Context,
	) ([]models.Booking, error)

	// ListForEmployee returns bookings assigned to employeeID ordered by
	// appointment date ascending.
	ListForEmployee(
		ctx context.Context,
		employeeID uuid.UUID,
	) ([]models.Booking, error)
}
