package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/scrapcycle/scrapcycle/internal/pkg/middleware"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/services/pickup"
	httpHandler "github.com/scrapcycle/scrapcycle/services/pickup/handler/http"
)

// Handler combines all handlers for the pickup service
type Handler struct {
	pickupHTTP *httpHandler.PickupHandler
	cfg        *models.Config
}

// NewHandler creates a new combined pickup handler
func NewHandler(pickupUC pickup.PickupUC, cfg *models.Config) *Handler {
	return &Handler{
		pickupHTTP: httpHandler.NewPickupHandler(pickupUC),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all pickup HTTP routes. Every route requires an
// authenticated session; accept and status advances are scrapper-only.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	pickups := e.Group("/pickups", auth)
	pickups.POST("", h.pickupHTTP.CreatePickup, middleware.RequireRole(models.RoleUser))
	pickups.GET("", h.pickupHTTP.ListMyPickups)
	pickups.GET("/area", h.pickupHTTP.ListAreaPickups, middleware.RequireRole(models.RoleScrapper))
	pickups.GET("/:pickupID", h.pickupHTTP.GetPickup)
	pickups.POST("/:pickupID/accept", h.pickupHTTP.AcceptPickup, middleware.RequireRole(models.RoleScrapper))
	pickups.POST("/:pickupID/reject", h.pickupHTTP.RejectPickup, middleware.RequireRole(models.RoleScrapper))
	pickups.PATCH("/:pickupID/status", h.pickupHTTP.AdvancePickup, middleware.RequireRole(models.RoleScrapper))
}
