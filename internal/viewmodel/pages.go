package viewmodel

import "github.com/BruksfildServices01/studio-booking/internal/dto"

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type Select struct {
	Placeholder string
	Options     []Option
	Disabled    bool
}

type BookingPage struct {
	Layout
	Services    Select
	Specialists Select
	Form        BookingForm
}

type BookingForm struct {
	ServiceID       string `form:"service_id"`
	EmployeeID      string `form:"employee_id"`
	AppointmentDate string `form:"appointment_date"`
}

type ProfilePage struct {
	Layout
	Email    string
	FullName string
	Phone    string
}

type LoginPage struct {
	Layout
	LoginEmail    string
	RegisterName  string
	RegisterEmail string
}

type CatalogPage struct {
	Layout
	Services []dto.ServiceRowDTO
}

type GalleryPage struct {
	Layout
	Items []dto.GalleryItemDTO
}

type DashboardPage struct {
	Layout
	ShowServices  bool
	ShowUsers     bool
	ShowSchedule  bool
	ScheduleTitle string
	Schedule      []dto.ScheduleEntryDTO
	Services      []dto.ServiceRowDTO
	Specialists   Select
	Users         []dto.UserRowDTO
	ServiceForm   ServiceForm
}

type ServiceForm struct {
	Name         string `form:"name"`
	Description  string `form:"description"`
	Price        string `form:"price"`
	Duration     string `form:"duration_minutes"`
	SpecialistID string `form:"specialist_id"`
}
