package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-booking/internal/audit"
	"github.com/BruksfildServices01/studio-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/studio-booking/internal/domain/booking"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type Actor struct {
	UserID uuid.UUID
	Role   access.Role
}

// ChangeStatus confirms, completes or cancels a booking. Staff may only
// act on bookings assigned to them; admins on any booking.
type ChangeStatus struct {
	repo  domain.Repository
	audit audit.Recorder
	now   func() time.Time
}

func NewChangeStatus(
	repo domain.Repository,
	audit audit.Recorder,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	actor Actor,
	bookingID uuid.UUID,
	action domain.Action,
) (*models.Booking, error) {

	if !actor.Role.Privileged() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	if actor.Role == access.RoleStaff && b.EmployeeID != actor.UserID {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Apply(b, action, uc.now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "booking_" + b.Status,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
