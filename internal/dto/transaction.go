package dto

import (
	"github.com/valecard/valecard_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to pay a business with a card.
// The card comes from the URL path.
type CreatePaymentRequest struct {
	Password   string          `json:"password" binding:"required"`
	BusinessID int64           `json:"businessId" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// CreateRechargeRequest defines the data needed to recharge a card. The card
// comes from the URL path and the company from the x-api-key header.
type CreateRechargeRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	ID         int64           `json:"id"`
	CardID     int64           `json:"cardId"`
	BusinessID int64           `json:"businessId"`
	Amount     decimal.Decimal `json:"amount"`
}

// RechargeResponse defines the data returned for a recharge.
type RechargeResponse struct {
	ID     int64           `json:"id"`
	CardID int64           `json:"cardId"`
	Amount decimal.Decimal `json:"amount"`
}

// CardStatementResponse defines the data returned for a balance query.
type CardStatementResponse struct {
	Balance      decimal.Decimal    `json:"balance"`
	Transactions []PaymentResponse  `json:"transactions"`
	Recharges    []RechargeResponse `json:"recharges"`
}

// ToPaymentResponse converts a domain.Payment to a PaymentResponse DTO.
func ToPaymentResponse(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         payment.ID,
		CardID:     payment.CardID,
		BusinessID: payment.BusinessID,
		Amount:     payment.Amount,
	}
}

// ToRechargeResponse converts a domain.Recharge to a RechargeResponse DTO.
func ToRechargeResponse(recharge *domain.Recharge) RechargeResponse {
	return RechargeResponse{
		ID:     recharge.ID,
		CardID: recharge.CardID,
		Amount: recharge.Amount,
	}
}

// ToCardStatementResponse converts a domain.CardStatement to its DTO.
func ToCardStatementResponse(statement *domain.CardStatement) CardStatementResponse {
	transactions := make([]PaymentResponse, len(statement.Transactions))
	for i := range statement.Transactions {
		transactions[i] = ToPaymentResponse(&statement.Transactions[i])
	}
	recharges := make([]RechargeResponse, len(statement.Recharges))
	for i := range statement.Recharges {
		recharges[i] = ToRechargeResponse(&statement.Recharges[i])
	}
	return CardStatementResponse{
		Balance:      statement.Balance,
		Transactions: transactions,
		Recharges:    recharges,
	}
}
