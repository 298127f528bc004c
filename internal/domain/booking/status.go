package booking

import (
	"strings"

	"github.com/BruksfildServices01/studio-booking/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus is the status of every newly created booking.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// ===============================
// Display
// ===============================

// Badge returns the emphasis class used to display a status.
func Badge(status string) string {
	switch Status(strings.ToLower(strings.TrimSpace(status))) {
	case StatusPending:
		return "warning"
	case StatusConfirmed:
		return "success"
	case StatusCompleted:
		return "info"
	case StatusCancelled:
		return "danger"
	default:
		return "secondary"
	}
}
