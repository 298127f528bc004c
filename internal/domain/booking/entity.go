package booking

import (
	"time"

	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

func Confirm(b *models.Booking) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}
	b.Status = string(StatusConfirmed)
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}
	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}
	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

// Apply runs the transition named by action.
func Apply(b *models.Booking, action Action, now time.Time) error {
	switch action {
	case ActionConfirm:
		return Confirm(b)
	case ActionComplete:
		return Complete(b, now)
	case ActionCancel:
		return Cancel(b, now)
	default:
		return httperr.ErrBusiness("unknown_action")
	}
}
