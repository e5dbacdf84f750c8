package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/scrapcycle/scrapcycle/internal/pkg/middleware"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/internal/utils"
	"github.com/scrapcycle/scrapcycle/services/pickup"
)

// PickupHandler handles HTTP requests for pickup operations
type PickupHandler struct {
	pickupUC pickup.PickupUC
	validate *validator.Validate
}

// NewPickupHandler creates a new pickup HTTP handler
func NewPickupHandler(pickupUC pickup.PickupUC) *PickupHandler {
	return &PickupHandler{
		pickupUC: pickupUC,
		validate: validator.New(),
	}
}

// CreatePickup handles POST /pickups
func (h *PickupHandler) CreatePickup(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreatePickupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.pickupUC.CreateRequest(c.Request().Context(), session, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Pickup request created", result)
}

// GetPickup handles GET /pickups/:pickupID
func (h *PickupHandler) GetPickup(c echo.Context) error {
	pickupID, err := uuid.Parse(c.Param("pickupID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid pickup ID")
	}

	result, err := h.pickupUC.GetRequest(c.Request().Context(), pickupID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMyPickups handles GET /pickups, returning the caller's own requests
func (h *PickupHandler) ListMyPickups(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.pickupUC.ListRequestsForUser(c.Request().Context(), session.UserID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAreaPickups handles GET /pickups/area. Scrappers poll this to see
// open requests for their pincode.
func (h *PickupHandler) ListAreaPickups(c echo.Context) error {
	pincode := c.QueryParam("pincode")
	status := models.PickupStatus(c.QueryParam("status"))

	result, err := h.pickupUC.ListRequestsForScrapper(c.Request().Context(), pincode, status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AcceptPickup handles POST /pickups/:pickupID/accept
func (h *PickupHandler) AcceptPickup(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	pickupID, err := uuid.Parse(c.Param("pickupID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid pickup ID")
	}

	result, err := h.pickupUC.AcceptRequest(c.Request().Context(), pickupID, session.UserID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pickup accepted", result)
}

// RejectPickup handles POST /pickups/:pickupID/reject
func (h *PickupHandler) RejectPickup(c echo.Context) error {
	pickupID, err := uuid.Parse(c.Param("pickupID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid pickup ID")
	}

	result, err := h.pickupUC.RejectRequest(c.Request().Context(), pickupID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pickup rejected", result)
}

// AdvancePickup handles PATCH /pickups/:pickupID/status
func (h *PickupHandler) AdvancePickup(c echo.Context) error {
	pickupID, err := uuid.Parse(c.Param("pickupID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid pickup ID")
	}

	var req models.AdvancePickupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.pickupUC.AdvanceStatus(c.Request().Context(), pickupID, req.Status, req.Price)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pickup status updated", result)
}
