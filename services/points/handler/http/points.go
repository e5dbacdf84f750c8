package http

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/scrapcycle/scrapcycle/internal/pkg/middleware"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/internal/utils"
	"github.com/scrapcycle/scrapcycle/services/points"
)

// PointsHandler handles HTTP requests for points operations
type PointsHandler struct {
	pointsUC points.PointsUC
	validate *validator.Validate
}

// NewPointsHandler creates a new points HTTP handler
func NewPointsHandler(pointsUC points.PointsUC) *PointsHandler {
	return &PointsHandler{
		pointsUC: pointsUC,
		validate: validator.New(),
	}
}

// BalanceResponse carries the derived points balance
type BalanceResponse struct {
	Balance int `json:"balance"`
}

// GetBalance handles GET /points/balance
func (h *PointsHandler) GetBalance(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	balance, err := h.pointsUC.Balance(c.Request().Context(), session.UserID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", BalanceResponse{Balance: balance})
}

// GetHistory handles GET /points/history
func (h *PointsHandler) GetHistory(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	entries, err := h.pointsUC.History(c.Request().Context(), session.UserID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", entries)
}

// GetImpact handles GET /points/impact?material=paper&kg=120
func (h *PointsHandler) GetImpact(c echo.Context) error {
	material := c.QueryParam("material")
	kg, err := strconv.ParseFloat(c.QueryParam("kg"), 64)
	if err != nil || kg < 0 {
		return utils.BadRequestResponse(c, "kg must be a non-negative number")
	}

	impact := h.pointsUC.ComputeImpact(material, kg)

	return utils.SuccessResponse(c, http.StatusOK, "", impact)
}

// AwardPoints handles POST /points/award, the backfill entry point. The
// regular award path is the pickup completion consumer.
func (h *PointsHandler) AwardPoints(c echo.Context) error {
	var req models.AwardPointsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	entry, err := h.pointsUC.AwardPoints(c.Request().Context(), req.UserID, req.PickupID, req.WeightKg)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Points awarded", entry)
}

// ListRewards handles GET /rewards
func (h *PointsHandler) ListRewards(c echo.Context) error {
	rewards, err := h.pointsUC.ListRewards(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", rewards)
}

// RedeemReward handles POST /rewards/redeem
func (h *PointsHandler) RedeemReward(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RedeemRewardRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	redemption, err := h.pointsUC.RedeemReward(c.Request().Context(), session.UserID, req.RewardID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Reward redeemed", redemption)
}
