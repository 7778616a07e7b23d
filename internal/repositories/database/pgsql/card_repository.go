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

type PgxCardRepository struct {
	db *pgxpool.Pool
}

func NewCardRepository(db *pgxpool.Pool) portsrepo.CardRepository {
	return &PgxCardRepository{db: db}
}

// Ensure PgxCardRepository implements portsrepo.CardRepository
var _ portsrepo.CardRepository = (*PgxCardRepository)(nil)

func toModelCard(d domain.Card) models.Card {
	return models.Card{
		ID:             d.ID,
		EmployeeID:     d.EmployeeID,
		Number:         d.Number,
		CardholderName: d.CardholderName,
		SecurityCode:   d.SecurityCode,
		ExpirationDate: d.ExpirationDate,
		Password:       d.Password,
		IsVirtual:      d.IsVirtual,
		IsBlocked:      d.IsBlocked,
		Type:           string(d.Type),
	}
}

func toDomainCard(m models.Card) domain.Card {
	return domain.Card{
		ID:             m.ID,
		EmployeeID:     m.EmployeeID,
		Number:         m.Number,
		CardholderName: m.CardholderName,
		SecurityCode:   m.SecurityCode,
		ExpirationDate: m.ExpirationDate,
		Password:       m.Password,
		IsVirtual:      m.IsVirtual,
		IsBlocked:      m.IsBlocked,
		Type:           domain.CardType(m.Type),
	}
}

func (r *PgxCardRepository) scanCard(row pgx.Row) (*domain.Card, error) {
	var modelCard models.Card
	err := row.Scan(
		&modelCard.ID,
		&modelCard.EmployeeID,
		&modelCard.Number,
		&modelCard.CardholderName,
		&modelCard.SecurityCode,
		&modelCard.ExpirationDate,
		&modelCard.Password,
		&modelCard.IsVirtual,
		&modelCard.IsBlocked,
		&modelCard.Type,
	)
	if err != nil {
		return nil, err
	}
	domainCard := toDomainCard(modelCard)
	return &domainCard, nil
}

const cardColumns = `id, employee_id, number, cardholder_name, security_code, expiration_date, password, is_virtual, is_blocked, type`

func (r *PgxCardRepository) FindCardByID(ctx context.Context, cardID int64) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1;`
	card, err := r.scanCard(r.db.QueryRow(ctx, query, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find card by ID %d: %w", cardID, err)
	}
	return card, nil
}

func (r *PgxCardRepository) FindCardByTypeAndEmployeeID(ctx context.Context, cardType domain.CardType, employeeID int64) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE type = $1 AND employee_id = $2;`
	card, err := r.scanCard(r.db.QueryRow(ctx, query, string(cardType), employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find card by type %s and employee %d: %w", cardType, employeeID, err)
	}
	return card, nil
}

func (r *PgxCardRepository) SaveCard(ctx context.Context, card domain.Card) (*domain.Card, error) {
	modelCard := toModelCard(card)
	query := `
		INSERT INTO cards (employee_id, number, cardholder_name, security_code, expiration_date, password, is_virtual, is_blocked, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		modelCard.EmployeeID,
		modelCard.Number,
		modelCard.CardholderName,
		modelCard.SecurityCode,
		modelCard.ExpirationDate,
		modelCard.Password,
		modelCard.IsVirtual,
		modelCard.IsBlocked,
		modelCard.Type,
	).Scan(&card.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save card: %w", err)
	}
	return &card, nil
}

func (r *PgxCardRepository) UpdateCard(ctx context.Context, card domain.Card) error {
	modelCard := toModelCard(card)
	query := `
		UPDATE cards
		SET password = $2, is_blocked = $3
		WHERE id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		modelCard.ID,
		modelCard.Password,
		modelCard.IsBlocked,
	)
	if err != nil {
		return fmt.Errorf("failed to update card %d: %w", card.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
