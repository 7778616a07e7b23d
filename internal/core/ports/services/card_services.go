package services

import (
	"context"

	"github.com/valecard/valecard_backend/internal/core/domain"
)

// CardLifecycleSvc defines the state transitions of a card.
type CardLifecycleSvc interface {
	// CreateCard issues a new card of the given type for the employee,
	// on behalf of the company identified by apiKey.
	CreateCard(ctx context.Context, apiKey string, employeeID int64, cardType string) (*domain.Card, error)

	// ActivateCard sets the card password after checking the security code.
	// A card is activated exactly once.
	ActivateCard(ctx context.Context, cardID, securityCode, password string) error

	// BlockCard marks the card as blocked after checking the password.
	BlockCard(ctx context.Context, cardID, password string) error

	// UnblockCard marks the card as unblocked after checking the password.
	UnblockCard(ctx context.Context, cardID, password string) error
}

// CardBalanceSvc defines the balance query surfaced on the card resource.
type CardBalanceSvc interface {
	// GetBalance returns the derived balance and the raw transaction history.
	GetBalance(ctx context.Context, cardID string) (*domain.CardStatement, error)
}

// CardSvcFacade combines all card-related service interfaces.
type CardSvcFacade interface {
	CardLifecycleSvc
	CardBalanceSvc
}
