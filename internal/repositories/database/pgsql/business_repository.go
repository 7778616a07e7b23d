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

type PgxBusinessRepository struct {
	db *pgxpool.Pool
}

func NewBusinessRepository(db *pgxpool.Pool) portsrepo.BusinessRepository {
	return &PgxBusinessRepository{db: db}
}

// Ensure PgxBusinessRepository implements portsrepo.BusinessRepository
var _ portsrepo.BusinessRepository = (*PgxBusinessRepository)(nil)

func toDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		ID:   m.ID,
		Name: m.Name,
		Type: domain.CardType(m.Type),
	}
}

func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID int64) (*domain.Business, error) {
	query := `
		SELECT id, name, type
		FROM businesses
		WHERE id = $1;
	`
	var modelBusiness models.Business
	err := r.db.QueryRow(ctx, query, businessID).Scan(
		&modelBusiness.ID,
		&modelBusiness.Name,
		&modelBusiness.Type,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business by ID %d: %w", businessID, err)
	}

	domainBusiness := toDomainBusiness(modelBusiness)
	return &domainBusiness, nil
}
