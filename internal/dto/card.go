package dto

import (
	"github.com/valecard/valecard_backend/internal/core/domain"
)

// CreateCardRequest defines the data needed to issue a new card. The issuing
// company comes from the x-api-key header, not the body.
type CreateCardRequest struct {
	EmployeeID int64  `json:"employeeId" binding:"required"`
	Type       string `json:"type" binding:"required,cardtype"`
}

// ActivateCardRequest defines the data needed to activate a card.
type ActivateCardRequest struct {
	SecurityCode string `json:"securityCode" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

// BlockCardRequest defines the data needed to block or unblock a card.
type BlockCardRequest struct {
	Password string `json:"password" binding:"required"`
}

// CardResponse defines the data returned for a card. Secrets (security code,
// password) are never part of any response.
type CardResponse struct {
	ID             int64           `json:"id"`
	EmployeeID     int64           `json:"employeeId"`
	Number         string          `json:"number"`
	CardholderName string          `json:"cardholderName"`
	ExpirationDate string          `json:"expirationDate"`
	IsVirtual      bool            `json:"isVirtual"`
	IsBlocked      bool            `json:"isBlocked"`
	Type           domain.CardType `json:"type"`
}

// ToCardResponse converts a domain.Card to a CardResponse DTO.
func ToCardResponse(card *domain.Card) CardResponse {
	return CardResponse{
		ID:             card.ID,
		EmployeeID:     card.EmployeeID,
		Number:         card.Number,
		CardholderName: card.CardholderName,
		ExpirationDate: card.ExpirationDate,
		IsVirtual:      card.IsVirtual,
		IsBlocked:      card.IsBlocked,
		Type:           card.Type,
	}
}
