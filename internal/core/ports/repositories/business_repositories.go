package repositories

import (
	"context"

	"github.com/valecard/valecard_backend/internal/core/domain"
)

// BusinessReader defines read operations for business data.
type BusinessReader interface {
	// FindBusinessByID retrieves a specific business by its unique identifier.
	FindBusinessByID(ctx context.Context, businessID int64) (*domain.Business, error)
}

// BusinessRepository is the full gateway contract for businesses. Businesses
// are never written by this core.
type BusinessRepository interface {
	BusinessReader
}
