package pgsql

import (
	"context"
	"fmt"

	"github.com/valecard/valecard_backend/internal/core/domain"
	portsrepo "github.com/valecard/valecard_backend/internal/core/ports/repositories"
	"github.com/valecard/valecard_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{db: db}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepository
var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

func toDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		ID:         m.ID,
		CardID:     m.CardID,
		BusinessID: m.BusinessID,
		Amount:     m.Amount,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *PgxPaymentRepository) FindPaymentsByCardID(ctx context.Context, cardID int64) ([]domain.Payment, error) {
	query := `
		SELECT id, card_id, business_id, amount, created_at
		FROM payments
		WHERE card_id = $1
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for card %d: %w", cardID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(&m.ID, &m.CardID, &m.BusinessID, &m.Amount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, toDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment rows: %w", err)
	}
	return payments, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (card_id, business_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		payment.CardID,
		payment.BusinessID,
		payment.Amount,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}
	return &payment, nil
}
