package pgsql

import (
	"context"
	"fmt"

	"github.com/valecard/valecard_backend/internal/core/domain"
	portsrepo "github.com/valecard/valecard_backend/internal/core/ports/repositories"
	"github.com/valecard/valecard_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRechargeRepository struct {
	db *pgxpool.Pool
}

func NewRechargeRepository(db *pgxpool.Pool) portsrepo.RechargeRepository {
	return &PgxRechargeRepository{db: db}
}

// Ensure PgxRechargeRepository implements portsrepo.RechargeRepository
var _ portsrepo.RechargeRepository = (*PgxRechargeRepository)(nil)

func toDomainRecharge(m models.Recharge) domain.Recharge {
	return domain.Recharge{
		ID:        m.ID,
		CardID:    m.CardID,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

func (r *PgxRechargeRepository) FindRechargesByCardID(ctx context.Context, cardID int64) ([]domain.Recharge, error) {
	query := `
		SELECT id, card_id, amount, created_at
		FROM recharges
		WHERE card_id = $1
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recharges for card %d: %w", cardID, err)
	}
	defer rows.Close()

	recharges := []domain.Recharge{}
	for rows.Next() {
		var m models.Recharge
		if err := rows.Scan(&m.ID, &m.CardID, &m.Amount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recharge row: %w", err)
		}
		recharges = append(recharges, toDomainRecharge(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recharge rows: %w", err)
	}
	return recharges, nil
}

func (r *PgxRechargeRepository) SaveRecharge(ctx context.Context, recharge domain.Recharge) (*domain.Recharge, error) {
	query := `
		INSERT INTO recharges (card_id, amount)
		VALUES ($1, $2)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		recharge.CardID,
		recharge.Amount,
	).Scan(&recharge.ID, &recharge.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save recharge: %w", err)
	}
	return &recharge, nil
}
