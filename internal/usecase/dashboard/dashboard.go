package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/studio-booking/internal/domain/booking"
	"github.com/BruksfildServices01/studio-booking/internal/domain/profile"
	"github.com/BruksfildServices01/studio-booking/internal/dto"
	"github.com/BruksfildServices01/studio-booking/internal/models"
	"github.com/BruksfildServices01/studio-booking/internal/timezone"
	"github.com/BruksfildServices01/studio-booking/internal/usecase/catalog"
	"github.com/BruksfildServices01/studio-booking/internal/viewmodel"
)

// ErrNoDashboard is returned for roles without a dashboard.
var ErrNoDashboard = errors.New("dashboard: role has no dashboard")

const (
	AdminScheduleTitle = "Admin Schedule"
	StaffScheduleTitle = "Your Schedule"

	notAvailable = "N/A"
)

type LoadDashboard struct {
	bookings domain.Repository
	profiles profile.Repository
	catalog  *catalog.Catalog
	loc      *time.Location
}

func NewLoadDashboard(
	bookings domain.Repository,
	profiles profile.Repository,
	catalog *catalog.Catalog,
	loc *time.Location,
) *LoadDashboard {
	return &LoadDashboard{
		bookings: bookings,
		profiles: profiles,
		catalog:  catalog,
		loc:      loc,
	}
}

// Execute fills every section visible to role. The returned page has no
// layout; the caller adds it.
func (uc *LoadDashboard) Execute(
	ctx context.Context,
	userID uuid.UUID,
	role access.Role,
) (viewmodel.DashboardPage, error) {

	switch role {
	case access.RoleAdmin:
		return uc.admin(ctx)
	case access.RoleStaff:
		return uc.staff(ctx, userID)
	default:
		return viewmodel.DashboardPage{}, ErrNoDashboard
	}
}

func (uc *LoadDashboard) admin(ctx context.Context) (viewmodel.DashboardPage, error) {
	page := viewmodel.DashboardPage{
		ShowServices:  true,
		ShowUsers:     true,
		ShowSchedule:  true,
		ScheduleTitle: AdminScheduleTitle,
	}

	bookings, err := uc.bookings.ListAll(ctx)
	if err != nil {
		return page, fmt.Errorf("load schedule: %w", err)
	}
	page.Schedule = uc.schedule(bookings)

	services, err := uc.catalog.ListServices(ctx)
	if err != nil {
		return page, fmt.Errorf("load services: %w", err)
	}
	page.Services = services

	specialists, err := uc.profiles.ListByRole(ctx, string(access.RoleStaff))
	if err != nil {
		return page, fmt.Errorf("load specialists: %w", err)
	}
	page.Specialists = specialistSelect(specialists)

	profiles, err := uc.profiles.ListAll(ctx)
	if err != nil {
		return page, fmt.Errorf("load users: %w", err)
	}
	for _, p := range profiles {
		page.Users = append(page.Users, dto.UserRowDTO{
			ID:       p.ID.String(),
			FullName: p.FullName,
			Phone:    p.Phone,
			Role:     access.ParseRole(p.Role).String(),
		})
	}

	return page, nil
}

func (uc *LoadDashboard) staff(ctx context.Context, userID uuid.UUID) (viewmodel.DashboardPage, error) {
	page := viewmodel.DashboardPage{
		ShowSchedule:  true,
		ScheduleTitle: StaffScheduleTitle,
	}

	bookings, err := uc.bookings.ListForEmployee(ctx, userID)
	if err != nil {
		return page, fmt.Errorf("load schedule: %w", err)
	}
	page.Schedule = uc.schedule(bookings)
	return page, nil
}

func (uc *LoadDashboard) schedule(bookings []models.Booking) []dto.ScheduleEntryDTO {
	out := make([]dto.ScheduleEntryDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToScheduleEntry(b, uc.loc))
	}
	return out
}

// ToScheduleEntry flattens a booking with its client and service. Missing
// joined values render as N/A.
func ToScheduleEntry(b models.Booking, loc *time.Location) dto.ScheduleEntryDTO {
	e := dto.ScheduleEntryDTO{
		ID:              b.ID.String(),
		AppointmentDate: b.AppointmentDate,
		When:            timezone.Format(b.AppointmentDate, loc),
		ClientName:      orNA(b.Client.FullName),
		ClientPhone:     orNA(b.Client.Phone),
		ServiceName:     orNA(b.Service.Name),
		Price:           "$" + notAvailable,
		Duration:        notAvailable + " min",
		Status:          b.Status,
		Badge:           domain.Badge(b.Status),
		EmployeeID:      b.EmployeeID.String(),
	}

	if b.Service.Price != 0 {
		e.Price = "$" + strconv.FormatFloat(b.Service.Price, 'f', -1, 64)
	}
	if b.Service.DurationMinutes != 0 {
		e.Duration = strconv.Itoa(b.Service.DurationMinutes) + " min"
	}
	return e
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func specialistSelect(specialists []models.Profile) viewmodel.Select {
	sel := viewmodel.Select{Placeholder: "Select Specialist..."}
	for _, p := range specialists {
		sel.Options = append(sel.Options, viewmodel.Option{
			Value: p.ID.String(),
			Label: p.FullName,
		})
	}
	return sel
}
