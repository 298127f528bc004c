package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/BruksfildServices01/studio-booking/internal/audit"
	"github.com/BruksfildServices01/studio-booking/internal/auth"
	"github.com/BruksfildServices01/studio-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-booking/internal/db"
	"github.com/BruksfildServices01/studio-booking/internal/guard"
	"github.com/BruksfildServices01/studio-booking/internal/handlers"
	"github.com/BruksfildServices01/studio-booking/internal/inflight"
	infraRepo "github.com/BruksfildServices01/studio-booking/internal/infra/repository"
	"github.com/BruksfildServices01/studio-booking/internal/logging"
	"github.com/BruksfildServices01/studio-booking/internal/media"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
	"github.com/BruksfildServices01/studio-booking/internal/notify"
	"github.com/BruksfildServices01/studio-booking/internal/routes"
	"github.com/BruksfildServices01/studio-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/studio-booking/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/studio-booking/internal/usecase/catalog"
	ucDashboard "github.com/BruksfildServices01/studio-booking/internal/usecase/dashboard"
	ucProfile "github.com/BruksfildServices01/studio-booking/internal/usecase/profile"
	"github.com/BruksfildServices01/studio-booking/internal/validators"
	"github.com/BruksfildServices01/studio-booking/internal/web"
)

func main() {

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database setup failed")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable")
	}
	defer rdb.Close()

	loc := timezone.Location(cfg.Timezone)
	cookies := middleware.Cookies{Secure: cfg.SecureCookie}
	origins := middleware.ParseOrigins(cfg.CORSOrigins)

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	profileRepo := infraRepo.NewProfileGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)
	defer auditDispatcher.Close()

	hub := auth.NewHub(logger)
	authService := auth.NewService(userRepo, rdb, hub, cfg.JWTSecret, cfg.SessionTTL)

	locker := inflight.NewLocker(rdb, cfg.SubmitLease)

	var images ucCatalog.ImageStore
	if cfg.MediaEnabled() {
		images = media.FromConfig(cfg.Media)
	} else {
		logger.Info().Msg("media bucket not configured, service images disabled")
	}

	mailer := notify.New(cfg.SendGrid, logger)

	var resolver validators.Resolver
	if cfg.VerifyEmailDomain {
		resolver = net.DefaultResolver
	}

	policy, err := cfg.Policy()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid PROTECTED_PAGES")
	}

	g := guard.New(
		authService,
		guard.NewProfileRoles(profileRepo),
		policy,
		logger,
	)

	// ======================================================
	// USE CASES
	// ======================================================
	catalog := ucCatalog.New(serviceRepo, images, auditDispatcher, logger)
	profiles := ucProfile.New(profileRepo)
	bookingForm := ucBooking.NewLoadBookingForm(serviceRepo, profileRepo)
	createBooking := ucBooking.NewCreateBooking(
		bookingRepo,
		serviceRepo,
		profileRepo,
		locker,
		auditDispatcher,
		loc,
	)
	changeStatus := ucBooking.NewChangeStatus(bookingRepo, auditDispatcher)
	loadDashboard := ucDashboard.NewLoadDashboard(bookingRepo, profileRepo, catalog, loc)

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.HTMLRender = web.MustRenderer()

	routes.RegisterRoutes(r, routes.Deps{
		Guard:     g,
		Cookies:   cookies,
		Origins:   origins,
		Logger:    logger,
		App:       handlers.NewAppWebHandler(catalog, cookies, logger),
		Auth:      handlers.NewAuthHandler(authService, mailer, resolver, cookies, logger),
		Booking:   handlers.NewBookingHandler(bookingForm, createBooking, cookies, logger),
		Profile:   handlers.NewProfileHandler(profiles, cookies, logger),
		Dashboard: handlers.NewDashboardHandler(loadDashboard, catalog, changeStatus, cookies, logger),
		Session:   handlers.NewSessionHandler(g, authService, origins, logger),
		AuditLogs: handlers.NewAuditLogsHandler(auditLogger),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(r, "studio-booking"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("server stopped")
}
