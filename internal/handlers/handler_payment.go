package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/valecard/valecard_backend/internal/core/ports/services"
	"github.com/valecard/valecard_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests for point-of-sale payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvc
}

func newPaymentHandler(ps portssvc.PaymentSvc) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// RegisterPaymentRoutes registers routes related to payments.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvc) {
	h := newPaymentHandler(paymentService)

	rg.POST("/payments/:cardId", h.createPayment)
}

// createPayment godoc
// @Summary Pay a business with a card
// @Description Validates the card state, password and balance, then appends the payment
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   cardId path int true "Card ID"
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 422 {object} map[string]string "Missing or malformed input"
// @Failure 404 {object} map[string]string "Business or card not found"
// @Failure 401 {object} map[string]string "Type mismatch, invalid password or insufficient funds"
// @Failure 409 {object} map[string]string "Inactive, expired or blocked card"
// @Router /payments/{cardId} [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), c.Param("cardId"), req.Password, req.BusinessID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	middlewareLogger(c).Info("Payment accepted", slog.Int64("payment_id", payment.ID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}
