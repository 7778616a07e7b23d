package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an append-only point-of-sale transaction against a card.
type Payment struct {
	ID         int64           `json:"id"`
	CardID     int64           `json:"cardId"`
	BusinessID int64           `json:"businessId"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Recharge is an append-only balance top-up issued by the employer.
type Recharge struct {
	ID        int64           `json:"id"`
	CardID    int64           `json:"cardId"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CardStatement is the derived view returned by balance queries: the folded
// balance together with the raw payment and recharge history.
type CardStatement struct {
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Payment       `json:"transactions"`
	Recharges    []Recharge      `json:"recharges"`
}
