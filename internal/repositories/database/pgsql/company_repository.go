package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/valecard/valecard_backend/internal/apperrors"
	"github.com/valecard/valecard_backend/internal/core/domain"
	portsrepo "github.com/valecard/valecard_backend/internal/core/ports/repositories"
	"github.com/valecard/valecard_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCompanyRepository struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) portsrepo.CompanyRepository {
	return &PgxCompanyRepository{db: db}
}

// Ensure PgxCompanyRepository implements portsrepo.CompanyRepository
var _ portsrepo.CompanyRepository = (*PgxCompanyRepository)(nil)

func toDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		ID:     m.ID,
		Name:   m.Name,
		APIKey: m.APIKey,
	}
}

func (r *PgxCompanyRepository) FindCompanyByAPIKey(ctx context.Context, apiKey string) (*domain.Company, error) {
	query := `
		SELECT id, name, api_key
		FROM companies
		WHERE api_key = $1;
	`
	var modelCompany models.Company
	err := r.db.QueryRow(ctx, query, apiKey).Scan(
		&modelCompany.ID,
		&modelCompany.Name,
		&modelCompany.APIKey,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by API key: %w", err)
	}

	domainCompany := toDomainCompany(modelCompany)
	return &domainCompany, nil
}
