package web

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-booking/internal/domain/access"
	"github.com/BruksfildServices01/studio-booking/internal/dto"
	"github.com/BruksfildServices01/studio-booking/internal/viewmodel"
)

func layout(page access.Page, loggedIn bool, role access.Role) viewmodel.Layout {
	state := access.NavState{LoggedIn: loggedIn, Role: role, CurrentPage: page}
	return viewmodel.Layout{Title: "Test", Page: page, State: state, Nav: access.Render(state)}
}

func renderPage(t *testing.T, name string, data any) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, r.Instance(name, data).Render(rec))
	return rec.Body.String()
}

func TestEveryPageParses(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	for _, p := range Pages {
		assert.Contains(t, r.templates, p)
	}
}

func TestLayoutNavLoggedOut(t *testing.T) {
	out := renderPage(t, "index", layout(access.PageIndex, false, access.RoleAnonymous))

	assert.Contains(t, out, `href="/login">Login</a>`)
	assert.NotContains(t, out, `action="/logout"`)
	assert.NotContains(t, out, "My Profile")
	assert.NotContains(t, out, "Dashboard")
	assert.Contains(t, out, `data-page="index"`)
}

func TestLayoutNavStaffWithNotice(t *testing.T) {
	l := layout(access.PageIndex, true, access.RoleStaff)
	l.Notice = viewmodel.Success("Saved")
	out := renderPage(t, "index", l)

	assert.Contains(t, out, `action="/logout"`)
	assert.Contains(t, out, "My Profile")
	assert.Contains(t, out, `href="/admin">Dashboard</a>`)
	assert.Contains(t, out, "alert-success")
	assert.Contains(t, out, "data-autodismiss")
}

func TestBookingPageDisabledSelects(t *testing.T) {
	out := renderPage(t, "booking", viewmodel.BookingPage{
		Layout:      layout(access.PageBooking, true, access.RoleClient),
		Services:    viewmodel.Select{Placeholder: "No services available", Disabled: true},
		Specialists: viewmodel.Select{Placeholder: "Choose a specialist...", Options: []viewmodel.Option{{Value: "s1", Label: "Maria", Selected: true}}},
		Form:        viewmodel.BookingForm{AppointmentDate: "2026-11-03T14:30"},
	})

	assert.Contains(t, out, `name="service_id" disabled`)
	assert.Contains(t, out, "No services available")
	assert.Contains(t, out, `<option value="s1" selected>Maria</option>`)
	assert.Contains(t, out, `value="2026-11-03T14:30"`)
}

func TestAdminPageSections(t *testing.T) {
	out := renderPage(t, "admin", viewmodel.DashboardPage{
		Layout:        layout(access.PageAdmin, true, access.RoleStaff),
		ShowSchedule:  true,
		ScheduleTitle: "Your Schedule",
		Schedule: []dto.ScheduleEntryDTO{
			{ID: "b1", When: "03 Nov 2026 14:30", ClientName: "Ana", Status: "pending", Badge: "warning"},
		},
	})

	assert.Contains(t, out, "Your Schedule")
	assert.Contains(t, out, "bg-warning")
	assert.Contains(t, out, "/admin/bookings/b1/confirm")
	assert.NotContains(t, out, "adminServicesSection")
	assert.NotContains(t, out, "manageUsersSection")
}

func TestUnknownPagePanics(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	assert.Panics(t, func() { r.Instance("missing", nil) })
}
