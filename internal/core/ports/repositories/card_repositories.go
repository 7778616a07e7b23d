package repositories

import (
	"context"

	"github.com/valecard/valecard_backend/internal/core/domain"
)

// CardReader defines read operations for card data.
type CardReader interface {
	// FindCardByID retrieves a specific card by its unique identifier.
	FindCardByID(ctx context.Context, cardID int64) (*domain.Card, error)

	// FindCardByTypeAndEmployeeID retrieves the card of the given type held by
	// the given employee; at most one such card exists.
	FindCardByTypeAndEmployeeID(ctx context.Context, cardType domain.CardType, employeeID int64) (*domain.Card, error)
}

// CardWriter defines write operations for card data.
type CardWriter interface {
	// SaveCard persists a new card and returns it with its assigned ID.
	SaveCard(ctx context.Context, card domain.Card) (*domain.Card, error)

	// UpdateCard updates the mutable fields of an existing card (password,
	// blocked state).
	UpdateCard(ctx context.Context, card domain.Card) error
}

// CardRepository combines the card gateway contracts.
type CardRepository interface {
	CardReader
	CardWriter
}
