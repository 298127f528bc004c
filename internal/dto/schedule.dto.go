package dto

import "time"

type ScheduleEntryDTO struct {
	ID              string    `json:"id"`
	AppointmentDate time.Time `json:"appointment_date"`
	When            string    `json:"when"`
	ClientName      string    `json:"client_name"`
	ClientPhone     string    `json:"client_phone"`
	ServiceName     string    `json:"service_name"`
	Price           string    `json:"price"`
	Duration        string    `json:"duration"`
	Status          string    `json:"status"`
	Badge           string    `json:"badge"`
	EmployeeID      string    `json:"employee_id"`
}
