package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/valecard/valecard_backend/internal/apperrors"
	"github.com/valecard/valecard_backend/internal/core/domain"
	portsrepo "github.com/valecard/valecard_backend/internal/core/ports/repositories"
	portssvc "github.com/valecard/valecard_backend/internal/core/ports/services"
	"github.com/valecard/valecard_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// TransactionService is the transaction engine: it validates and executes
// payment and recharge creation and computes the derived card balance.
type TransactionService struct {
	companyRepo  portsrepo.CompanyRepository
	employeeRepo portsrepo.EmployeeRepository
	cardRepo     portsrepo.CardRepository
	businessRepo portsrepo.BusinessRepository
	paymentRepo  portsrepo.PaymentRepository
	rechargeRepo portsrepo.RechargeRepository
	cipher       SecretCipher
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	companyRepo portsrepo.CompanyRepository,
	employeeRepo portsrepo.EmployeeRepository,
	cardRepo portsrepo.CardRepository,
	businessRepo portsrepo.BusinessRepository,
	paymentRepo portsrepo.PaymentRepository,
	rechargeRepo portsrepo.RechargeRepository,
	cipher SecretCipher,
) *TransactionService {
	return &TransactionService{
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
		cardRepo:     cardRepo,
		businessRepo: businessRepo,
		paymentRepo:  paymentRepo,
		rechargeRepo: rechargeRepo,
		cipher:       cipher,
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// CreatePayment appends a payment after the full check chain: business and
// card resolved, matching types, card active, unexpired and unblocked,
// password correct, sufficient balance.
//
// The password check rejects on mismatch, mirroring activation and block.
func (s *TransactionService) CreatePayment(ctx context.Context, cardID, password string, businessID int64, amount decimal.Decimal) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if cardID == "" || password == "" || businessID == 0 || amount.IsZero() {
		return nil, apperrors.NewUnprocessable("cardId, password, businessId and amount are required")
	}
	id, err := parseCardID(cardID)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, apperrors.NewUnprocessable("Invalid amount")
	}

	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, asNotFound(err, "Business not found")
	}

	card, err := s.cardRepo.FindCardByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "Card not found")
	}

	if business.Type != card.Type {
		return nil, apperrors.NewUnauthorized("Unauthorized card type")
	}
	if !card.IsActive() {
		return nil, apperrors.NewConflict("Card not active")
	}
	if card.IsExpired(time.Now()) {
		return nil, apperrors.NewConflict("Expired card")
	}
	if card.IsBlocked {
		return nil, apperrors.NewConflict("Blocked card")
	}

	storedPassword, err := s.cipher.Decrypt(*card.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt password for card %d: %w", id, err)
	}
	if storedPassword != password {
		return nil, apperrors.NewUnauthorized("Invalid password")
	}

	balance, err := s.foldBalance(ctx, id)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(amount) {
		return nil, apperrors.NewUnauthorized("Not sufficient funds")
	}

	payment := domain.Payment{
		CardID:     id,
		BusinessID: business.ID,
		Amount:     amount,
	}
	created, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		logger.Error("Failed to save payment", slog.String("error", err.Error()), slog.Int64("card_id", id))
		return nil, err
	}

	logger.Info("Payment created", slog.Int64("payment_id", created.ID), slog.Int64("card_id", id), slog.String("amount", amount.String()))
	return created, nil
}

// CreateRecharge appends a recharge after resolving the company by API key
// and verifying the card belongs to one of its employees. A card held by an
// employee of another company is reported as missing, not as forbidden.
func (s *TransactionService) CreateRecharge(ctx context.Context, apiKey, cardID string, amount decimal.Decimal) (*domain.Recharge, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if apiKey == "" || cardID == "" || amount.IsZero() {
		return nil, apperrors.NewUnprocessable("apiKey, cardId and amount are required")
	}
	id, err := parseCardID(cardID)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, apperrors.NewUnprocessable("Invalid amount")
	}

	company, err := s.companyRepo.FindCompanyByAPIKey(ctx, apiKey)
	if err != nil {
		return nil, asNotFound(err, "Company not found")
	}

	card, err := s.cardRepo.FindCardByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "Card not found")
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, card.EmployeeID)
	if err != nil {
		return nil, asNotFound(err, "Card not found")
	}
	if employee.CompanyID != company.ID {
		return nil, apperrors.NewNotFound("Card not found")
	}

	if !card.IsActive() {
		return nil, apperrors.NewConflict("Card not active")
	}
	if card.IsExpired(time.Now()) {
		return nil, apperrors.NewConflict("Expired card")
	}

	recharge := domain.Recharge{
		CardID: id,
		Amount: amount,
	}
	created, err := s.rechargeRepo.SaveRecharge(ctx, recharge)
	if err != nil {
		logger.Error("Failed to save recharge", slog.String("error", err.Error()), slog.Int64("card_id", id))
		return nil, err
	}

	logger.Info("Recharge created", slog.Int64("recharge_id", created.ID), slog.Int64("card_id", id), slog.String("amount", amount.String()))
	return created, nil
}

// Balance returns the card's derived balance together with its raw payment
// and recharge history.
func (s *TransactionService) Balance(ctx context.Context, cardID int64) (*domain.CardStatement, error) {
	if _, err := s.cardRepo.FindCardByID(ctx, cardID); err != nil {
		return nil, asNotFound(err, "Card not found")
	}

	payments, err := s.paymentRepo.FindPaymentsByCardID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for card %d: %w", cardID, err)
	}
	recharges, err := s.rechargeRepo.FindRechargesByCardID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recharges for card %d: %w", cardID, err)
	}

	if payments == nil {
		payments = []domain.Payment{}
	}
	if recharges == nil {
		recharges = []domain.Recharge{}
	}

	// Payment amounts are folded into the accumulator first, then recharge
	// amounts on top of the same accumulator. This reproduces the upstream
	// product's balance exactly; see DESIGN.md before changing the fold.
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	for _, r := range recharges {
		total = total.Add(r.Amount)
	}

	return &domain.CardStatement{
		Balance:      total,
		Transactions: payments,
		Recharges:    recharges,
	}, nil
}

func (s *TransactionService) foldBalance(ctx context.Context, cardID int64) (decimal.Decimal, error) {
	statement, err := s.Balance(ctx, cardID)
	if err != nil {
		return decimal.Zero, err
	}
	return statement.Balance, nil
}
