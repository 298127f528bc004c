package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-booking/internal/guard"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/inflight"
	"github.com/BruksfildServices01/studio-booking/internal/metrics"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
	"github.com/BruksfildServices01/studio-booking/internal/viewmodel"
)

// pageBase is embedded by every HTML handler.
type pageBase struct {
	cookies middleware.Cookies
}

// layout builds the shared chrome from the guard decision and consumes
// any pending flash notice.
func (b pageBase) layout(c *gin.Context, title string) viewmodel.Layout {
	d := guard.DecisionFrom(c)
	return viewmodel.Layout{
		Title:  title,
		Page:   d.State.CurrentPage,
		State:  d.State,
		Nav:    d.Nav,
		Notice: b.cookies.PopFlash(c),
	}
}

func (b pageBase) redirectWith(c *gin.Context, location string, n *viewmodel.Notice) {
	if n != nil {
		b.cookies.SetFlash(c, *n)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// ======================================================
// Form outcomes
// ======================================================

func formResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, inflight.ErrInFlight):
		return "duplicate"
	case httperr.BusinessCode(err) != "":
		return "invalid"
	default:
		return "error"
	}
}

func observeForm(form string, err error) {
	metrics.FormSubmissionsTotal.WithLabelValues(form, formResult(err)).Inc()
}

var businessMessages = map[string]string{
	"missing_fields":           "Please fill in all required fields.",
	"invalid_date":             "Please choose a valid date and time.",
	"service_not_found":        "The selected service is no longer available.",
	"specialist_not_found":     "The selected specialist is not available.",
	"booking_not_found":        "Booking not found.",
	"invalid_state":            "This booking can no longer be changed that way.",
	"unknown_action":           "Unknown booking action.",
	"forbidden":                guard.AccessDeniedMessage,
	"invalid_service":          "Please fill in all required fields correctly.",
	"invalid_image":            "The uploaded image could not be read. Use PNG, JPEG or WebP.",
	"invalid_email":            "Please enter a valid email address.",
	"password_too_short":       "Password must be at least 6 characters.",
	"email_already_registered": "This email is already registered.",
	"invalid_credentials":      "Invalid email or password.",
	"invalid_contact":          "Please enter a valid phone number.",
}

// messageFor returns the user-facing text of a business error, or fallback.
func messageFor(err error, fallback string) string {
	if msg, ok := businessMessages[httperr.BusinessCode(err)]; ok {
		return msg
	}
	return fallback
}
