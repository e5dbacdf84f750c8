package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/scrapcycle/scrapcycle/internal/pkg/middleware"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	natspkg "github.com/scrapcycle/scrapcycle/internal/pkg/nats"
	"github.com/scrapcycle/scrapcycle/services/points"
	httpHandler "github.com/scrapcycle/scrapcycle/services/points/handler/http"
	natsHandler "github.com/scrapcycle/scrapcycle/services/points/handler/nats"
)

// Handler combines all handlers for the points service
type Handler struct {
	pointsHTTP *httpHandler.PointsHandler
	pointsNATS *natsHandler.PointsHandler
	cfg        *models.Config
}

// NewHandler creates a new combined points handler
func NewHandler(pointsUC points.PointsUC, natsClient *natspkg.Client, cfg *models.Config) *Handler {
	return &Handler{
		pointsHTTP: httpHandler.NewPointsHandler(pointsUC),
		pointsNATS: natsHandler.NewPointsHandler(pointsUC, natsClient),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all points HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	pointsGroup := e.Group("/points", auth)
	pointsGroup.GET("/balance", h.pointsHTTP.GetBalance)
	pointsGroup.GET("/history", h.pointsHTTP.GetHistory)
	pointsGroup.GET("/impact", h.pointsHTTP.GetImpact)
	pointsGroup.POST("/award", h.pointsHTTP.AwardPoints, middleware.RequireRole(models.RoleScrapper))

	rewardsGroup := e.Group("/rewards", auth)
	rewardsGroup.GET("", h.pointsHTTP.ListRewards)
	rewardsGroup.POST("/redeem", h.pointsHTTP.RedeemReward)
}

// InitNATSConsumers starts the pickup completion consumer
func (h *Handler) InitNATSConsumers() error {
	return h.pointsNATS.InitNATSConsumers()
}
