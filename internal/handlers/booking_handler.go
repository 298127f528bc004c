package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/studio-booking/internal/guard"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/inflight"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
	"github.com/BruksfildServices01/studio-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/studio-booking/internal/viewmodel"
)

const BookingSuccessMessage = "Appointment booked successfully! We will confirm your booking shortly."

type BookingHandler struct {
	pageBase
	form   *booking.LoadBookingForm
	create *booking.CreateBooking
	logger zerolog.Logger
}

func NewBookingHandler(
	form *booking.LoadBookingForm,
	create *booking.CreateBooking,
	cookies middleware.Cookies,
	logger zerolog.Logger,
) *BookingHandler {
	return &BookingHandler{
		pageBase: pageBase{cookies: cookies},
		form:     form,
		create:   create,
		logger:   logger,
	}
}

func (h *BookingHandler) Show(c *gin.Context) {
	h.render(c, http.StatusOK, viewmodel.BookingForm{}, nil)
}

func (h *BookingHandler) Submit(c *gin.Context) {
	d := guard.DecisionFrom(c)
	if d.Session == nil {
		h.redirectWith(c, "/login", viewmodel.Danger("Please log in to book an appointment."))
		return
	}

	var form viewmodel.BookingForm
	_ = c.ShouldBind(&form)

	_, err := h.create.Execute(c.Request.Context(), booking.CreateBookingInput{
		ClientID:        d.Session.UserID,
		ServiceID:       form.ServiceID,
		EmployeeID:      form.EmployeeID,
		AppointmentDate: form.AppointmentDate,
	})
	observeForm(booking.FormName, err)

	if err != nil {
		status, notice := h.failure(err)
		h.render(c, status, form, notice)
		return
	}

	h.logger.Info().Str("user_id", d.Session.UserID.String()).Msg("booking created")
	h.redirectWith(c, "/", viewmodel.Success(BookingSuccessMessage))
}

func (h *BookingHandler) failure(err error) (int, *viewmodel.Notice) {
	switch {
	case errors.Is(err, inflight.ErrInFlight):
		return http.StatusConflict, viewmodel.Warning("Your booking is already being submitted. Please wait.")
	case httperr.IsBusiness(err, "missing_fields"):
		return http.StatusUnprocessableEntity, viewmodel.Warning(businessMessages["missing_fields"])
	case httperr.BusinessCode(err) != "":
		return http.StatusUnprocessableEntity, viewmodel.Danger("Error booking appointment: " + messageFor(err, "Please check your input."))
	default:
		h.logger.Error().Err(err).Msg("failed to create booking")
		return http.StatusInternalServerError, viewmodel.Danger("Error booking appointment. Please try again.")
	}
}

// render keeps the submitted values selected.
func (h *BookingHandler) render(c *gin.Context, status int, form viewmodel.BookingForm, notice *viewmodel.Notice) {
	page := viewmodel.BookingPage{
		Layout: h.layout(c, "Book Now"),
		Form:   form,
	}
	if notice != nil {
		page.Notice = notice
	}

	opts, err := h.form.Execute(c.Request.Context(), form)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load booking form")
		page.Notice = viewmodel.Danger("Error loading booking form. Please refresh the page.")
		opts = booking.FormOptions{
			Services:    booking.ServiceSelect(nil, ""),
			Specialists: booking.SpecialistSelect(nil, ""),
		}
	}
	page.Services = opts.Services
	page.Specialists = opts.Specialists

	c.HTML(status, "booking", page)
}
