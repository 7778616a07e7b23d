package services

import (
	"context"

	"github.com/valecard/valecard_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentSvc defines point-of-sale payment creation.
type PaymentSvc interface {
	// CreatePayment validates and appends a payment against a card.
	CreatePayment(ctx context.Context, cardID, password string, businessID int64, amount decimal.Decimal) (*domain.Payment, error)
}

// RechargeSvc defines employer-issued balance recharges.
type RechargeSvc interface {
	// CreateRecharge validates and appends a recharge for a card owned by an
	// employee of the company identified by apiKey.
	CreateRecharge(ctx context.Context, apiKey, cardID string, amount decimal.Decimal) (*domain.Recharge, error)
}

// BalanceSvc computes the derived balance of a card.
type BalanceSvc interface {
	// Balance folds the card's payment and recharge history into its balance.
	Balance(ctx context.Context, cardID int64) (*domain.CardStatement, error)
}

// TransactionSvcFacade combines all money-movement service interfaces.
type TransactionSvcFacade interface {
	PaymentSvc
	RechargeSvc
	BalanceSvc
}
