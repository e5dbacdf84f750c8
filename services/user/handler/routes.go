package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/scrapcycle/scrapcycle/internal/pkg/middleware"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/services/user"
	httpHandler "github.com/scrapcycle/scrapcycle/services/user/handler/http"
)

// Handler combines all handlers for the user service
type Handler struct {
	userHTTP *httpHandler.UserHandler
	cfg      *models.Config
}

// NewHandler creates a new combined user handler
func NewHandler(userUC user.UserUC, cfg *models.Config) *Handler {
	return &Handler{
		userHTTP: httpHandler.NewUserHandler(userUC),
		cfg:      cfg,
	}
}

// RegisterRoutes registers all user HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.userHTTP.Register)
	authGroup.POST("/login", h.userHTTP.Login)
	authGroup.POST("/otp/generate", h.userHTTP.GenerateOTP)
	authGroup.POST("/otp/verify", h.userHTTP.VerifyOTP)

	usersGroup := e.Group("/users", auth)
	usersGroup.GET("/me", h.userHTTP.GetProfile)
	usersGroup.PUT("/me", h.userHTTP.UpdateProfile)

	scrappersGroup := e.Group("/scrappers", auth)
	scrappersGroup.GET("", h.userHTTP.ListScrappers)
	scrappersGroup.GET("/nearby", h.userHTTP.ListNearbyScrappers)
	scrappersGroup.POST("/register", h.userHTTP.RegisterScrapper)
	scrappersGroup.PUT("/availability", h.userHTTP.SetAvailability, middleware.RequireRole(models.RoleScrapper))
	scrappersGroup.POST("/location", h.userHTTP.UpdateLocation, middleware.RequireRole(models.RoleScrapper))
}
