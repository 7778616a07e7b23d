package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/valecard/valecard_backend/internal/core/ports/services"
	"github.com/valecard/valecard_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// rechargeHandler handles HTTP requests for employer-issued recharges.
type rechargeHandler struct {
	rechargeService portssvc.RechargeSvc
}

func newRechargeHandler(rs portssvc.RechargeSvc) *rechargeHandler {
	return &rechargeHandler{
		rechargeService: rs,
	}
}

// RegisterRechargeRoutes registers routes related to recharges.
func RegisterRechargeRoutes(rg *gin.RouterGroup, rechargeService portssvc.RechargeSvc) {
	h := newRechargeHandler(rechargeService)

	rg.POST("/recharges/:cardId", h.createRecharge)
}

// createRecharge godoc
// @Summary Recharge a card
// @Description Appends a recharge for a card held by an employee of the company identified by the API key
// @Tags recharges
// @Accept  json
// @Produce  json
// @Param   x-api-key header string true "Company API key"
// @Param   cardId path int true "Card ID"
// @Param   recharge body dto.CreateRechargeRequest true "Recharge amount"
// @Success 201 {object} dto.RechargeResponse
// @Failure 422 {object} map[string]string "Missing or malformed input"
// @Failure 404 {object} map[string]string "Company or card not found"
// @Failure 409 {object} map[string]string "Inactive or expired card"
// @Router /recharges/{cardId} [post]
func (h *rechargeHandler) createRecharge(c *gin.Context) {
	var req dto.CreateRechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	apiKey := c.GetHeader(apiKeyHeader)
	recharge, err := h.rechargeService.CreateRecharge(c.Request.Context(), apiKey, c.Param("cardId"), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	middlewareLogger(c).Info("Recharge accepted", slog.Int64("recharge_id", recharge.ID))
	c.JSON(http.StatusCreated, dto.ToRechargeResponse(recharge))
}
