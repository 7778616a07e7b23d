package repositories

import (
	"context"

	"github.com/valecard/valecard_backend/internal/core/domain"
)

// PaymentReader defines read operations for the payment ledger.
type PaymentReader interface {
	// FindPaymentsByCardID retrieves every payment recorded for a card.
	FindPaymentsByCardID(ctx context.Context, cardID int64) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for the payment ledger.
type PaymentWriter interface {
	// SavePayment appends a payment and returns it with its assigned ID.
	// Payments are never updated.
	SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
}

// PaymentRepository combines the payment gateway contracts.
type PaymentRepository interface {
	PaymentReader
	PaymentWriter
}

// RechargeReader defines read operations for the recharge ledger.
type RechargeReader interface {
	// FindRechargesByCardID retrieves every recharge recorded for a card.
	FindRechargesByCardID(ctx context.Context, cardID int64) ([]domain.Recharge, error)
}

// RechargeWriter defines write operations for the recharge ledger.
type RechargeWriter interface {
	// SaveRecharge appends a recharge and returns it with its assigned ID.
	// Recharges are never updated.
	SaveRecharge(ctx context.Context, recharge domain.Recharge) (*domain.Recharge, error)
}

// RechargeRepository combines the recharge gateway contracts.
type RechargeRepository interface {
	RechargeReader
	RechargeWriter
}
