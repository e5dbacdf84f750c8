package http

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/scrapcycle/scrapcycle/internal/pkg/middleware"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/internal/utils"
	"github.com/scrapcycle/scrapcycle/services/user"
)

// UserHandler handles HTTP requests for account and auth operations
type UserHandler struct {
	userUC   user.UserUC
	validate *validator.Validate
}

// NewUserHandler creates a new user HTTP handler
func NewUserHandler(userUC user.UserUC) *UserHandler {
	return &UserHandler{
		userUC:   userUC,
		validate: validator.New(),
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	created, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created", created)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	auth, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Signed in", auth)
}

// GenerateOTP handles POST /auth/otp/generate. The code is delivered out
// of band and never included in the response.
func (h *UserHandler) GenerateOTP(c echo.Context) error {
	var req models.GenerateOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if _, err := h.userUC.GenerateOTP(c.Request().Context(), req.Email); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent", nil)
}

// VerifyOTP handles POST /auth/otp/verify
func (h *UserHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	auth, err := h.userUC.VerifyOTP(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Signed in", auth)
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), session.UserID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// UpdateProfile handles PUT /users/me
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UserProfile
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	updated, err := h.userUC.UpdateProfile(c.Request().Context(), session.UserID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", updated)
}

// RegisterScrapper handles POST /scrappers/register
func (h *UserHandler) RegisterScrapper(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RegisterScrapperRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	profile, err := h.userUC.RegisterScrapper(c.Request().Context(), session.UserID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Scrapper registered", profile)
}

// SetAvailability handles PUT /scrappers/availability
func (h *UserHandler) SetAvailability(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SetAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.userUC.SetAvailability(c.Request().Context(), session.UserID, req.Available); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", nil)
}

// UpdateLocation handles POST /scrappers/location
func (h *UserHandler) UpdateLocation(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.LocationPing
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.userUC.UpdateLocation(c.Request().Context(), session.UserID, &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// ListScrappers handles GET /scrappers?pincode=560034
func (h *UserHandler) ListScrappers(c echo.Context) error {
	profiles, err := h.userUC.ListScrappersByPincode(c.Request().Context(), c.QueryParam("pincode"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", profiles)
}

// ListNearbyScrappers handles GET /scrappers/nearby?lat=..&lng=..&radius_km=..
func (h *UserHandler) ListNearbyScrappers(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng must be a number")
	}
	radiusKm, err := strconv.ParseFloat(c.QueryParam("radius_km"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "radius_km must be a number")
	}

	profiles, err := h.userUC.ListScrappersNearby(c.Request().Context(), lat, lng, radiusKm)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", profiles)
}
