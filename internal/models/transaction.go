package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the database row shape for the payments table.
type Payment struct {
	ID         int64           `db:"id"`
	CardID     int64           `db:"card_id"`
	BusinessID int64           `db:"business_id"`
	Amount     decimal.Decimal `db:"amount"`
	CreatedAt  time.Time       `db:"created_at"`
}

// Recharge is the database row shape for the recharges table.
type Recharge struct {
	ID        int64           `db:"id"`
	CardID    int64           `db:"card_id"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}
