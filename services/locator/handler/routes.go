package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/scrapcycle/scrapcycle/internal/pkg/middleware"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/services/locator"
	httpHandler "github.com/scrapcycle/scrapcycle/services/locator/handler/http"
)

// Handler combines all handlers for the locator service
type Handler struct {
	locatorHTTP *httpHandler.LocatorHandler
	cfg         *models.Config
}

// NewHandler creates a new combined locator handler
func NewHandler(locatorGW locator.LocatorGW, cfg *models.Config) *Handler {
	return &Handler{
		locatorHTTP: httpHandler.NewLocatorHandler(locatorGW),
		cfg:         cfg,
	}
}

// RegisterRoutes registers the locator HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	group := e.Group("/locator", auth)
	group.POST("/business", h.locatorHTTP.LocateBusiness)
}
