package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/valecard/valecard_backend/internal/core/ports/services"
	"github.com/valecard/valecard_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// cardHandler handles HTTP requests related to the card lifecycle.
type cardHandler struct {
	cardService portssvc.CardSvcFacade
}

// newCardHandler creates a new cardHandler.
func newCardHandler(cs portssvc.CardSvcFacade) *cardHandler {
	return &cardHandler{
		cardService: cs,
	}
}

// RegisterCardRoutes registers routes related to cards.
func RegisterCardRoutes(rg *gin.RouterGroup, cardService portssvc.CardSvcFacade) {
	h := newCardHandler(cardService)

	cards := rg.Group("/cards")
	{
		cards.POST("", h.createCard)
		cards.PUT("/activate/:id", h.activateCard)
		cards.PUT("/block/:id", h.blockCard)
		cards.PUT("/unblock/:id", h.unblockCard)
		cards.GET("/:id", h.getBalance)
	}
}

// createCard godoc
// @Summary Issue a new benefit card
// @Description Issues a card of the given type for an employee of the company identified by the API key
// @Tags cards
// @Accept  json
// @Produce  json
// @Param   x-api-key header string true "Company API key"
// @Param   card body dto.CreateCardRequest true "Card details"
// @Success 201 {object} dto.CardResponse
// @Failure 422 {object} map[string]string "Missing or malformed input"
// @Failure 404 {object} map[string]string "Company or employee not found"
// @Failure 409 {object} map[string]string "Card already registered"
// @Router /cards [post]
func (h *cardHandler) createCard(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	apiKey := c.GetHeader(apiKeyHeader)
	card, err := h.cardService.CreateCard(c.Request.Context(), apiKey, req.EmployeeID, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}

	middlewareLogger(c).Info("Card issued", slog.Int64("card_id", card.ID))
	c.JSON(http.StatusCreated, dto.ToCardResponse(card))
}

// activateCard godoc
// @Summary Activate a card
// @Description Sets the card password after verifying the security code; a card activates exactly once
// @Tags cards
// @Accept  json
// @Produce  json
// @Param   id path int true "Card ID"
// @Param   activation body dto.ActivateCardRequest true "Security code and password"
// @Success 200
// @Failure 422 {object} map[string]string "Missing or malformed input"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 401 {object} map[string]string "Invalid security code"
// @Failure 409 {object} map[string]string "Expired or already activated"
// @Router /cards/activate/{id} [put]
func (h *cardHandler) activateCard(c *gin.Context) {
	var req dto.ActivateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	if err := h.cardService.ActivateCard(c.Request.Context(), c.Param("id"), req.SecurityCode, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// blockCard godoc
// @Summary Block a card
// @Tags cards
// @Accept  json
// @Produce  json
// @Param   id path int true "Card ID"
// @Param   block body dto.BlockCardRequest true "Card password"
// @Success 200
// @Failure 422 {object} map[string]string "Missing or malformed input"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 401 {object} map[string]string "Invalid password"
// @Failure 409 {object} map[string]string "Expired or already blocked"
// @Router /cards/block/{id} [put]
func (h *cardHandler) blockCard(c *gin.Context) {
	var req dto.BlockCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	if err := h.cardService.BlockCard(c.Request.Context(), c.Param("id"), req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// unblockCard godoc
// @Summary Unblock a card
// @Tags cards
// @Accept  json
// @Produce  json
// @Param   id path int true "Card ID"
// @Param   unblock body dto.BlockCardRequest true "Card password"
// @Success 200
// @Failure 422 {object} map[string]string "Missing or malformed input"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 401 {object} map[string]string "Invalid password"
// @Failure 409 {object} map[string]string "Expired or already unblocked"
// @Router /cards/unblock/{id} [put]
func (h *cardHandler) unblockCard(c *gin.Context) {
	var req dto.BlockCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	if err := h.cardService.UnblockCard(c.Request.Context(), c.Param("id"), req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// getBalance godoc
// @Summary Get a card's balance and history
// @Tags cards
// @Produce  json
// @Param   id path int true "Card ID"
// @Success 200 {object} dto.CardStatementResponse
// @Failure 422 {object} map[string]string "Invalid card id"
// @Failure 404 {object} map[string]string "Card not found"
// @Router /cards/{id} [get]
func (h *cardHandler) getBalance(c *gin.Context) {
	statement, err := h.cardService.GetBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCardStatementResponse(statement))
}
