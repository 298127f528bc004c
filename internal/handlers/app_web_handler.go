package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/studio-booking/internal/middleware"
	"github.com/BruksfildServices01/studio-booking/internal/usecase/catalog"
	"github.com/BruksfildServices01/studio-booking/internal/viewmodel"
)

// AppWebHandler serves the public pages.
type AppWebHandler struct {
	pageBase
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

func NewAppWebHandler(
	catalog *catalog.Catalog,
	cookies middleware.Cookies,
	logger zerolog.Logger,
) *AppWebHandler {
	return &AppWebHandler{
		pageBase: pageBase{cookies: cookies},
		catalog:  catalog,
		logger:   logger,
	}
}

func (h *AppWebHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", h.layout(c, "Home"))
}

func (h *AppWebHandler) Services(c *gin.Context) {
	page := viewmodel.CatalogPage{Layout: h.layout(c, "Services")}

	rows, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list services")
		page.Notice = viewmodel.Danger("Error loading services. Please try again.")
	}
	page.Services = rows

	c.HTML(http.StatusOK, "services", page)
}

func (h *AppWebHandler) Gallery(c *gin.Context) {
	page := viewmodel.GalleryPage{Layout: h.layout(c, "Gallery")}

	items, err := h.catalog.Gallery(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load gallery")
		page.Notice = viewmodel.Danger("Error loading gallery. Please try again.")
	}
	page.Items = items

	c.HTML(http.StatusOK, "gallery", page)
}

func (h *AppWebHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login", viewmodel.LoginPage{Layout: h.layout(c, "Login")})
}
