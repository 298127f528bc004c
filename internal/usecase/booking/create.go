package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-booking/internal/audit"
	domain "github.com/BruksfildServices01/studio-booking/internal/domain/booking"
	"github.com/BruksfildServices01/studio-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-booking/internal/domain/profile"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/models"
	"github.com/BruksfildServices01/studio-booking/internal/timezone"
)

const FormName = "booking"

// Locker guards a form submission per user.
type Locker interface {
	Acquire(ctx context.Context, form string, userID uuid.UUID) (func(), error)
}

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID        uuid.UUID
	ServiceID       string
	EmployeeID      string
	AppointmentDate string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	bookings domain.Repository
	services catalog.Repository
	profiles profile.Repository
	locker   Locker
	audit    audit.Recorder
	loc      *time.Location
}

func NewCreateBooking(
	bookings domain.Repository,
	services catalog.Repository,
	profiles profile.Repository,
	locker Locker,
	audit audit.Recorder,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		bookings: bookings,
		services: services,
		profiles: profiles,
		locker:   locker,
		audit:    audit,
		loc:      loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	serviceRaw := strings.TrimSpace(in.ServiceID)
	employeeRaw := strings.TrimSpace(in.EmployeeID)
	dateRaw := strings.TrimSpace(in.AppointmentDate)

	if serviceRaw == "" || employeeRaw == "" || dateRaw == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	serviceID, err := uuid.Parse(serviceRaw)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	employeeID, err := uuid.Parse(employeeRaw)
	if err != nil {
		return nil, httperr.ErrBusiness("specialist_not_found")
	}

	when, err := timezone.ParseLocal(dateRaw, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// 2. One submission at a time per user
	// --------------------------------------------------
	release, err := uc.locker.Acquire(ctx, FormName, in.ClientID)
	if err != nil {
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// 3. Referenced rows
	// --------------------------------------------------
	if _, err := uc.services.GetService(ctx, serviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	specialist, err := uc.profiles.GetProfile(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("specialist_not_found")
		}
		return nil, err
	}
	if specialist.Role != "staff" {
		return nil, httperr.ErrBusiness("specialist_not_found")
	}

	// --------------------------------------------------
	// 4. Insert
	// --------------------------------------------------
	b := &models.Booking{
		ClientID:        in.ClientID,
		ServiceID:       serviceID,
		EmployeeID:      employeeID,
		AppointmentDate: when.UTC(),
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.bookings.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
