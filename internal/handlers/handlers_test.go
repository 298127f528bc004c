package handlers_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/studio-booking/internal/audit"
	"github.com/BruksfildServices01/studio-booking/internal/auth"
	"github.com/BruksfildServices01/studio-booking/internal/domain/access"
	"github.com/BruksfildServices01/studio-booking/internal/guard"
	"github.com/BruksfildServices01/studio-booking/internal/handlers"
	"github.com/BruksfildServices01/studio-booking/internal/inflight"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
	"github.com/BruksfildServices01/studio-booking/internal/models"
	"github.com/BruksfildServices01/studio-booking/internal/notify"
	"github.com/BruksfildServices01/studio-booking/internal/repotest"
	"github.com/BruksfildServices01/studio-booking/internal/routes"
	"github.com/BruksfildServices01/studio-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/studio-booking/internal/usecase/catalog"
	"github.com/BruksfildServices01/studio-booking/internal/usecase/dashboard"
	"github.com/BruksfildServices01/studio-booking/internal/usecase/profile"
	"github.com/BruksfildServices01/studio-booking/internal/viewmodel"
	"github.com/BruksfildServices01/studio-booking/internal/web"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ======================================================
// Harness
// ======================================================

type captureMailer struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (m *captureMailer) Send(_ context.Context, msg notify.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *captureMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type fakeAuditReader struct {
	got  audit.Filter
	logs []models.AuditLog
}

func (f *fakeAuditReader) List(_ context.Context, filter audit.Filter) ([]models.AuditLog, int64, error) {
	f.got = filter
	return f.logs, int64(len(f.logs)), nil
}

type harness struct {
	store   *repotest.Store
	audit   *repotest.Recorder
	locker  *repotest.Locker
	mailer  *captureMailer
	reader  *fakeAuditReader
	auth    *auth.Service
	router  *gin.Engine
	browser string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	logger := zerolog.Nop()
	h := &harness{
		store:   repotest.NewStore(),
		audit:   &repotest.Recorder{},
		locker:  &repotest.Locker{},
		mailer:  &captureMailer{},
		reader:  &fakeAuditReader{},
		browser: uuid.NewString(),
	}

	h.auth = auth.NewService(h.store.Users(), rdb, auth.NewHub(logger), "test-secret", time.Hour)
	cookies := middleware.Cookies{}

	g := guard.New(
		h.auth,
		guard.NewProfileRoles(h.store.Profiles()),
		access.DefaultPolicy(),
		logger,
	)

	cat := catalog.New(h.store.Services(), nil, h.audit, logger)
	create := booking.NewCreateBooking(
		h.store.Bookings(),
		h.store.Services(),
		h.store.Profiles(),
		h.locker,
		h.audit,
		time.UTC,
	)

	r := gin.New()
	r.HTMLRender = web.MustRenderer()
	routes.RegisterRoutes(r, routes.Deps{
		Guard:   g,
		Cookies: cookies,
		Logger:  logger,
		App:     handlers.NewAppWebHandler(cat, cookies, logger),
		Auth:    handlers.NewAuthHandler(h.auth, h.mailer, nil, cookies, logger),
		Booking: handlers.NewBookingHandler(
			booking.NewLoadBookingForm(h.store.Services(), h.store.Profiles()),
			create,
			cookies,
			logger,
		),
		Profile: handlers.NewProfileHandler(profile.New(h.store.Profiles()), cookies, logger),
		Dashboard: handlers.NewDashboardHandler(
			dashboard.NewLoadDashboard(h.store.Bookings(), h.store.Profiles(), cat, time.UTC),
			cat,
			booking.NewChangeStatus(h.store.Bookings(), h.audit),
			cookies,
			logger,
		),
		Session:   handlers.NewSessionHandler(g, h.auth, nil, logger),
		AuditLogs: handlers.NewAuditLogsHandler(h.reader),
	})
	h.router = r

	return h
}

// seedUser creates an account with the given role and returns its id and
// a live session token.
func (h *harness) seedUser(t *testing.T, email, role string) (uuid.UUID, string) {
	t.Helper()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{Email: email, PasswordHash: string(hash)}
	prof := &models.Profile{FullName: strings.Split(email, "@")[0], Role: role}
	require.NoError(t, h.store.Users().CreateUserWithProfile(ctx, user, prof))

	sess, err := h.auth.SignIn(ctx, h.browser, email, "secret1")
	require.NoError(t, err)
	return user.ID, sess.Token
}

func (h *harness) do(t *testing.T, method, path, token string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.AddCookie(&http.Cookie{Name: middleware.BrowserCookie, Value: h.browser})
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func cookieFrom(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func flashFrom(t *testing.T, w *httptest.ResponseRecorder) viewmodel.Notice {
	t.Helper()
	c := cookieFrom(w, middleware.FlashCookie)
	require.NotNil(t, c, "flash cookie not set")

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	require.NoError(t, err)

	var n viewmodel.Notice
	require.NoError(t, json.Unmarshal(raw, &n))
	return n
}

// ======================================================
// Public pages and guard
// ======================================================

func TestPublicPagesRenderForAnonymous(t *testing.T) {
	h := newHarness(t)
	h.store.AddService(models.Service{Name: "Deep Tissue Massage", Description: "60 minutes", Price: 50, DurationMinutes: 60})

	w := h.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/login"`)
	assert.NotContains(t, w.Body.String(), "My Profile")

	w = h.do(t, http.MethodGet, "/services", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Deep Tissue Massage")
}

func TestProtectedPagesRedirectAnonymousToLogin(t *testing.T) {
	h := newHarness(t)

	for _, path := range []string{"/booking", "/profile", "/admin"} {
		w := h.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusSeeOther, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}

func TestClientIsDeniedAdminPage(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedUser(t, "client@example.com", "client")

	w := h.do(t, http.MethodGet, "/admin", token, nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	n := flashFrom(t, w)
	assert.Equal(t, viewmodel.NoticeDanger, n.Kind)
	assert.Equal(t, guard.AccessDeniedMessage, n.Message)
}

func TestLoggedInNavShowsProfileAndLogout(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedUser(t, "staff@example.com", "staff")

	w := h.do(t, http.MethodGet, "/", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "My Profile")
	assert.Contains(t, body, "Dashboard")
	assert.Contains(t, body, `action="/logout"`)
}

// ======================================================
// Auth
// ======================================================

func TestRegisterThenLogin(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, http.MethodPost, "/register", "", url.Values{
		"full_name": {"Ana Petrova"},
		"email":     {"ana@example.com"},
		"password":  {"secret1"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Equal(t, viewmodel.NoticeSuccess, flashFrom(t, w).Kind)
	assert.Equal(t, 1, h.mailer.count())

	w = h.do(t, http.MethodPost, "/login", "", url.Values{
		"email":    {"ana@example.com"},
		"password": {"secret1"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, "Login successful!", flashFrom(t, w).Message)

	session := cookieFrom(w, middleware.SessionCookie)
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Value)
	assert.True(t, session.HttpOnly)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := newHarness(t)
	h.seedUser(t, "ana@example.com", "client")

	w := h.do(t, http.MethodPost, "/register", "", url.Values{
		"full_name": {"Ana"},
		"email":     {"ana@example.com"},
		"password":  {"secret1"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Registration Error: This email is already registered.")
	assert.Equal(t, 0, h.mailer.count())
}

func TestLoginWrongPassword(t *testing.T) {
	h := newHarness(t)
	h.seedUser(t, "ana@example.com", "client")

	w := h.do(t, http.MethodPost, "/login", "", url.Values{
		"email":    {"ana@example.com"},
		"password": {"wrong-password"},
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Login Error: Invalid email or password.")
	assert.Nil(t, cookieFrom(w, middleware.SessionCookie))
}

func TestLogoutRevokesSession(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedUser(t, "ana@example.com", "client")

	w := h.do(t, http.MethodPost, "/logout", token, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, handlers.LogoutMessage, flashFrom(t, w).Message)

	cleared := cookieFrom(w, middleware.SessionCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)

	w = h.do(t, http.MethodGet, "/profile", token, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

// ======================================================
// Booking
// ======================================================

func seedBookable(h *harness) (serviceID, staffID uuid.UUID) {
	staffID = h.store.AddProfile("Maria Ivanova", "", "staff")
	serviceID = h.store.AddService(models.Service{
		Name:            "Facial",
		Description:     "Classic facial",
		Price:           40,
		DurationMinutes: 45,
		SpecialistID:    &staffID,
	})
	return serviceID, staffID
}

func TestBookingSubmitCreatesPendingBooking(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedUser(t, "client@example.com", "client")
	serviceID, staffID := seedBookable(h)

	w := h.do(t, http.MethodPost, "/booking", token, url.Values{
		"service_id":       {serviceID.String()},
		"employee_id":      {staffID.String()},
		"appointment_date": {"2026-11-03T14:30"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, handlers.BookingSuccessMessage, flashFrom(t, w).Message)
	assert.Equal(t, 1, h.store.BookingCount())
	assert.Equal(t, []string{"booking_created"}, h.audit.Actions())
	assert.Equal(t, 1, h.locker.Released)
}

func TestBookingSubmitMissingFields(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedUser(t, "client@example.com", "client")
	serviceID, _ := seedBookable(h)

	w := h.do(t, http.MethodPost, "/booking", token, url.Values{
		"service_id": {serviceID.String()},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill in all required fields.")
	assert.Equal(t, 0, h.store.BookingCount())
	assert.Equal(t, 0, h.locker.Acquired)
}

func TestBookingSubmitWhileInFlight(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedUser(t, "client@example.com", "client")
	serviceID, staffID := seedBookable(h)

	h.locker.Busy = true
	h.locker.Err = inflight.ErrInFlight

	w := h.do(t, http.MethodPost, "/booking", token, url.Values{
		"service_id":       {serviceID.String()},
		"employee_id":      {staffID.String()},
		"appointment_date": {"2026-11-03T14:30"},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Your booking is already being submitted.")
	assert.Equal(t, 0, h.store.BookingCount())
}

func TestSubmittedBookingAppearsOnDashboards(t *testing.T) {
	h := newHarness(t)
	_, clientToken := h.seedUser(t, "client@example.com", "client")
	staffID, staffToken := h.seedUser(t, "maria@example.com", "staff")
	_, adminToken := h.seedUser(t, "admin@example.com", "admin")
	serviceID := h.store.AddService(models.Service{
		Name:            "Facial",
		Description:     "Classic facial",
		Price:           40,
		DurationMinutes: 45,
		SpecialistID:    &staffID,
	})

	otherStaff := h.store.AddProfile("Other Staff", "", "staff")
	otherClient := h.store.AddProfile("Other Client", "0888", "client")
	h.store.AddBooking(models.Booking{
		ClientID:        otherClient,
		ServiceID:       serviceID,
		EmployeeID:      otherStaff,
		AppointmentDate: time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC),
		Status:          "confirmed",
	})

	w := h.do(t, http.MethodPost, "/booking", clientToken, url.Values{
		"service_id":       {serviceID.String()},
		"employee_id":      {staffID.String()},
		"appointment_date": {"2026-11-03T14:30"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	const when = "<td>03 Nov 2026 14:30</td>"
	const otherWhen = "<td>02 Nov 2026 09:00</td>"

	w = h.do(t, http.MethodGet, "/admin", staffToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, dashboard.StaffScheduleTitle)
	assert.Contains(t, body, when)
	assert.Contains(t, body, "<td>client</td>")
	assert.Contains(t, body, "<td>Facial</td>")
	assert.Contains(t, body, `<span class="badge bg-warning">pending</span>`)
	assert.NotContains(t, body, "Other Client")
	assert.NotContains(t, body, otherWhen)

	w = h.do(t, http.MethodGet, "/admin", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = w.Body.String()
	assert.Contains(t, body, dashboard.AdminScheduleTitle)
	assert.Contains(t, body, `<span class="badge bg-warning">pending</span>`)
	assert.Contains(t, body, `<span class="badge bg-success">confirmed</span>`)
	assert.Contains(t, body, "Other Client")

	first, second := strings.Index(body, otherWhen), strings.Index(body, when)
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second, "schedule ordered by appointment date")
}

// ======================================================
// Profile
// ======================================================

func TestProfileUpdate(t *testing.T) {
	h := newHarness(t)
	userID, token := h.seedUser(t, "ana@example.com", "client")

	w := h.do(t, http.MethodPost, "/profile", token, url.Values{
		"full_name": {"  Ana Petrova "},
		"phone":     {"+359 88 123 4567"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Profile updated successfully!")

	p, ok := h.store.Profile(userID)
	require.True(t, ok)
	assert.Equal(t, "Ana Petrova", p.FullName)
	assert.Equal(t, "+359 88 123 4567", p.Phone)
}

func TestProfileUpdateRequiresBothFields(t *testing.T) {
	h := newHarness(t)
	userID, token := h.seedUser(t, "ana@example.com", "client")

	w := h.do(t, http.MethodPost, "/profile", token, url.Values{
		"full_name": {"Ana Petrova"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill in all fields.")

	p, _ := h.store.Profile(userID)
	assert.Equal(t, "ana", p.FullName)
}

// ======================================================
// Dashboard
// ======================================================

func TestAdminDashboardAndStatusChange(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedUser(t, "admin@example.com", "admin")
	clientID := h.store.AddProfile("Client One", "", "client")
	serviceID, staffID := seedBookable(h)
	bookingID := h.store.AddBooking(models.Booking{
		ClientID:        clientID,
		ServiceID:       serviceID,
		EmployeeID:      staffID,
		AppointmentDate: time.Date(2026, 11, 3, 12, 30, 0, 0, time.UTC),
		Status:          "pending",
	})

	w := h.do(t, http.MethodGet, "/admin", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), dashboard.AdminScheduleTitle)
	assert.Contains(t, w.Body.String(), "Client One")

	w = h.do(t, http.MethodPost, "/admin/bookings/"+bookingID.String()+"/confirm", token, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Equal(t, "Booking confirmed.", flashFrom(t, w).Message)

	b, _ := h.store.Booking(bookingID)
	assert.Equal(t, "confirmed", b.Status)

	w = h.do(t, http.MethodPost, "/admin/bookings/"+bookingID.String()+"/confirm", token, nil)
	n := flashFrom(t, w)
	assert.Equal(t, viewmodel.NoticeDanger, n.Kind)
	assert.Equal(t, "This booking can no longer be changed that way.", n.Message)
}

func TestAdminAddsService(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedUser(t, "admin@example.com", "admin")
	staffID := h.store.AddProfile("Maria Ivanova", "", "staff")

	w := h.do(t, http.MethodPost, "/admin/services", token, url.Values{
		"name":             {"Pedicure"},
		"description":      {"Spa pedicure"},
		"price":            {"35.5"},
		"duration_minutes": {"50"},
		"specialist_id":    {staffID.String()},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "Service added successfully!", flashFrom(t, w).Message)
	assert.Equal(t, []string{"service_created"}, h.audit.Actions())
}

func TestAdminAddServiceInvalid(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedUser(t, "admin@example.com", "admin")

	w := h.do(t, http.MethodPost, "/admin/services", token, url.Values{
		"name":             {"Pedicure"},
		"description":      {"Spa pedicure"},
		"price":            {"cheap"},
		"duration_minutes": {"50"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `value="Pedicure"`)
	assert.Empty(t, h.audit.Actions())
}

func TestStaffCannotManageServices(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedUser(t, "staff@example.com", "staff")

	w := h.do(t, http.MethodPost, "/admin/services", token, url.Values{
		"name":             {"Pedicure"},
		"description":      {"Spa pedicure"},
		"price":            {"35"},
		"duration_minutes": {"50"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Equal(t, guard.AccessDeniedMessage, flashFrom(t, w).Message)
	assert.Empty(t, h.audit.Actions())
}

// ======================================================
// JSON
// ======================================================

func TestAuditLogsRequireAdmin(t *testing.T) {
	h := newHarness(t)
	_, clientToken := h.seedUser(t, "client@example.com", "client")
	_, adminToken := h.seedUser(t, "admin@example.com", "admin")
	h.reader.logs = []models.AuditLog{{Action: "booking_created", Entity: "booking"}}

	w := h.do(t, http.MethodGet, "/api/admin/audit-logs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(t, http.MethodGet, "/api/admin/audit-logs", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = h.do(t, http.MethodGet, "/api/admin/audit-logs?page=2&limit=500&from=2026-10-01&to=2026-10-31&action=booking_created", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data  []models.AuditLog `json:"data"`
		Page  int               `json:"page"`
		Limit int               `json:"limit"`
		Total int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, 50, body.Limit)

	assert.Equal(t, "booking_created", h.reader.got.Action)
	require.NotNil(t, h.reader.got.To)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), *h.reader.got.To)
}

func TestSessionCurrent(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedUser(t, "client@example.com", "client")

	w := h.do(t, http.MethodGet, "/api/session?page=booking.html", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var d guard.Decision
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, guard.OutcomeRedirectLogin, d.Outcome)
	assert.Equal(t, "/login", d.Redirect)

	w = h.do(t, http.MethodGet, "/api/session?page=booking", token, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, guard.OutcomeAllow, d.Outcome)
	assert.True(t, d.State.LoggedIn)
	assert.Equal(t, access.RoleClient, d.State.Role)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	h.do(t, http.MethodGet, "/booking", "", nil)

	w = h.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `studio_guard_decisions_total{outcome="redirect_login",page="booking"}`)
}
