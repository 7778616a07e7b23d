package repositories

import (
	"context"

	"github.com/valecard/valecard_backend/internal/core/domain"
)

// CompanyReader defines read operations for company data.
type CompanyReader interface {
	// FindCompanyByAPIKey retrieves the company that owns the given API key.
	FindCompanyByAPIKey(ctx context.Context, apiKey string) (*domain.Company, error)
}

// CompanyRepository is the full gateway contract for companies. Companies are
// never written by this core.
type CompanyRepository interface {
	CompanyReader
}
