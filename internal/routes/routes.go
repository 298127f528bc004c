package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/studio-booking/internal/domain/access"
	"github.com/BruksfildServices01/studio-booking/internal/guard"
	"github.com/BruksfildServices01/studio-booking/internal/handlers"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
)

// Deps carries the handlers built by the composition root.
type Deps struct {
	Guard   *guard.Guard
	Cookies middleware.Cookies
	Origins middleware.Origins
	Logger  zerolog.Logger

	App       *handlers.AppWebHandler
	Auth      *handlers.AuthHandler
	Booking   *handlers.BookingHandler
	Profile   *handlers.ProfileHandler
	Dashboard *handlers.DashboardHandler
	Session   *handlers.SessionHandler
	AuditLogs *handlers.AuditLogsHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORSMiddleware(d.Origins))
	r.Use(d.Cookies.BrowserID())

	page := func(p access.Page) gin.HandlerFunc {
		return d.Guard.Page(p, d.Cookies)
	}

	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", page(access.PageIndex), d.App.Index)
	r.GET("/services", page(access.PageServices), d.App.Services)
	r.GET("/gallery", page(access.PageGallery), d.App.Gallery)

	r.GET("/login", page(access.PageLogin), d.App.LoginPage)
	r.POST("/login", page(access.PageLogin), d.Auth.Login)
	r.POST("/register", page(access.PageLogin), d.Auth.Register)
	r.POST("/logout", d.Auth.Logout)

	r.GET("/booking", page(access.PageBooking), d.Booking.Show)
	r.POST("/booking", page(access.PageBooking), d.Booking.Submit)

	r.GET("/profile", page(access.PageProfile), d.Profile.Show)
	r.POST("/profile", page(access.PageProfile), d.Profile.Update)

	admin := r.Group("/admin", page(access.PageAdmin))
	{
		admin.GET("", d.Dashboard.Show)
		admin.POST("/services", d.Dashboard.AddService)
		admin.POST("/services/:id/delete", d.Dashboard.DeleteService)
		admin.POST("/bookings/:id/:action", d.Dashboard.ChangeStatus)
	}

	// ======================================================
	// API (JSON) + WEBSOCKET
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/session", d.Session.Current)
		api.GET("/admin/audit-logs", d.Guard.API(access.PageAdmin), d.AuditLogs.List)
	}

	r.GET("/ws/session", d.Session.Stream)
}
