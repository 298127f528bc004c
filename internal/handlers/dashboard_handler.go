package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/studio-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/studio-booking/internal/domain/booking"
	"github.com/BruksfildServices01/studio-booking/internal/guard"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
	"github.com/BruksfildServices01/studio-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/studio-booking/internal/usecase/catalog"
	"github.com/BruksfildServices01/studio-booking/internal/usecase/dashboard"
	"github.com/BruksfildServices01/studio-booking/internal/viewmodel"
)

const (
	serviceFormName = "service"
	maxImageBytes   = 5 << 20
)

// DashboardHandler serves the admin page and its management actions.
type DashboardHandler struct {
	pageBase
	load    *dashboard.LoadDashboard
	catalog *catalog.Catalog
	status  *booking.ChangeStatus
	logger  zerolog.Logger
}

func NewDashboardHandler(
	load *dashboard.LoadDashboard,
	catalog *catalog.Catalog,
	status *booking.ChangeStatus,
	cookies middleware.Cookies,
	logger zerolog.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		pageBase: pageBase{cookies: cookies},
		load:     load,
		catalog:  catalog,
		status:   status,
		logger:   logger,
	}
}

func (h *DashboardHandler) Show(c *gin.Context) {
	h.render(c, http.StatusOK, viewmodel.ServiceForm{}, nil)
}

func (h *DashboardHandler) render(c *gin.Context, status int, form viewmodel.ServiceForm, notice *viewmodel.Notice) {
	d := guard.DecisionFrom(c)
	if d.Session == nil {
		h.redirectWith(c, "/login", nil)
		return
	}

	page, err := h.load.Execute(c.Request.Context(), d.Session.UserID, d.State.Role)
	if errors.Is(err, dashboard.ErrNoDashboard) {
		h.logger.Warn().Str("role", d.State.Role.String()).Msg("role does not have dashboard access")
		h.redirectWith(c, "/", nil)
		return
	}

	page.Layout = h.layout(c, "Dashboard")
	page.ServiceForm = form
	if notice != nil {
		page.Notice = notice
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load dashboard")
		page.Notice = viewmodel.Danger("Error loading dashboard data.")
	}

	c.HTML(status, "admin", page)
}

// requireAdmin redirects staff back to the dashboard.
func (h *DashboardHandler) requireAdmin(c *gin.Context) (guard.Decision, bool) {
	d := guard.DecisionFrom(c)
	if d.Session == nil || d.State.Role != access.RoleAdmin {
		h.redirectWith(c, "/admin", viewmodel.Danger(guard.AccessDeniedMessage))
		return d, false
	}
	return d, true
}

func (h *DashboardHandler) AddService(c *gin.Context) {
	d, ok := h.requireAdmin(c)
	if !ok {
		return
	}

	var form viewmodel.ServiceForm
	_ = c.ShouldBind(&form)

	image, err := readUpload(c, "image")
	if err != nil {
		observeForm(serviceFormName, httperr.ErrBusiness("invalid_image"))
		h.render(c, http.StatusUnprocessableEntity, form, viewmodel.Warning("The uploaded image is too large or unreadable."))
		return
	}

	_, err = h.catalog.AddService(c.Request.Context(), d.Session.UserID, catalog.AddServiceInput{
		Name:         form.Name,
		Description:  form.Description,
		Price:        form.Price,
		Duration:     form.Duration,
		SpecialistID: form.SpecialistID,
		Image:        image,
	})
	observeForm(serviceFormName, err)

	if err != nil {
		if httperr.BusinessCode(err) != "" {
			h.render(c, http.StatusUnprocessableEntity, form, viewmodel.Warning(messageFor(err, "Please fill in all required fields correctly.")))
			return
		}
		h.logger.Error().Err(err).Msg("failed to add service")
		h.render(c, http.StatusInternalServerError, form, viewmodel.Danger("Failed to add service"))
		return
	}

	h.redirectWith(c, "/admin", viewmodel.Success("Service added successfully!"))
}

func (h *DashboardHandler) DeleteService(c *gin.Context) {
	d, ok := h.requireAdmin(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.redirectWith(c, "/admin", viewmodel.Danger("Failed to delete service"))
		return
	}

	if err := h.catalog.DeleteService(c.Request.Context(), d.Session.UserID, id); err != nil {
		if httperr.BusinessCode(err) == "" {
			h.logger.Error().Err(err).Str("service_id", id.String()).Msg("failed to delete service")
		}
		h.redirectWith(c, "/admin", viewmodel.Danger("Failed to delete service"))
		return
	}

	h.redirectWith(c, "/admin", viewmodel.Success("Service deleted successfully!"))
}

// ChangeStatus applies confirm, complete or cancel to a booking.
func (h *DashboardHandler) ChangeStatus(c *gin.Context) {
	d := guard.DecisionFrom(c)
	if d.Session == nil {
		h.redirectWith(c, "/login", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.redirectWith(c, "/admin", viewmodel.Danger(businessMessages["booking_not_found"]))
		return
	}

	b, err := h.status.Execute(
		c.Request.Context(),
		booking.Actor{UserID: d.Session.UserID, Role: d.State.Role},
		id,
		domain.Action(c.Param("action")),
	)
	if err != nil {
		if httperr.BusinessCode(err) == "" {
			h.logger.Error().Err(err).Str("booking_id", id.String()).Msg("failed to change booking status")
		}
		h.redirectWith(c, "/admin", viewmodel.Danger(messageFor(err, "Failed to update booking.")))
		return
	}

	h.redirectWith(c, "/admin", viewmodel.Success("Booking "+b.Status+"."))
}

// readUpload returns nil when no file was sent.
func readUpload(c *gin.Context, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if fh.Size > maxImageBytes {
		return nil, errors.New("upload too large")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, maxImageBytes))
}
