package http

import (
	nethttp "net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/internal/utils"
	"github.com/scrapcycle/scrapcycle/services/locator"
)

// LocatorHandler handles business-location lookups
type LocatorHandler struct {
	locatorGW locator.LocatorGW
	validate  *validator.Validate
}

// NewLocatorHandler creates a new locator HTTP handler
func NewLocatorHandler(locatorGW locator.LocatorGW) *LocatorHandler {
	return &LocatorHandler{
		locatorGW: locatorGW,
		validate:  validator.New(),
	}
}

// LocateBusiness resolves a business web page into a named location
func (h *LocatorHandler) LocateBusiness(c echo.Context) error {
	var req models.LocateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	location, err := h.locatorGW.LocateBusiness(c.Request().Context(), req.URL)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Business located", location)
}
