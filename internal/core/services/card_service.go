package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/valecard/valecard_backend/internal/apperrors"
	"github.com/valecard/valecard_backend/internal/core/domain"
	portsrepo "github.com/valecard/valecard_backend/internal/core/ports/repositories"
	portssvc "github.com/valecard/valecard_backend/internal/core/ports/services"
	"github.com/valecard/valecard_backend/internal/middleware"
	"github.com/valecard/valecard_backend/internal/utils"
)

// SecretCipher is the reversible cipher the engines use for card secrets.
type SecretCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

const cardNumberLength = 16

var (
	securityCodePattern = regexp.MustCompile(`^[0-9]{3}$`)
	passwordPattern     = regexp.MustCompile(`^[0-9]{4}$`)
)

// asNotFound converts a repository ErrNotFound into a message-carrying
// not-found error; any other failure passes through untouched.
func asNotFound(err error, message string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFound(message)
	}
	return err
}

func parseCardID(cardID string) (int64, error) {
	id, err := strconv.ParseInt(cardID, 10, 64)
	if err != nil {
		return 0, apperrors.NewUnprocessable("Invalid card id")
	}
	return id, nil
}

// CardService is the card lifecycle engine: it validates and executes the
// create, activate, block and unblock transitions.
type CardService struct {
	companyRepo  portsrepo.CompanyRepository
	employeeRepo portsrepo.EmployeeRepository
	cardRepo     portsrepo.CardRepository
	cipher       SecretCipher
	balanceSvc   portssvc.BalanceSvc
}

// NewCardService creates a new CardService. The balance service is the
// transaction engine's read path; the lifecycle engine delegates balance
// queries to it.
func NewCardService(
	companyRepo portsrepo.CompanyRepository,
	employeeRepo portsrepo.EmployeeRepository,
	cardRepo portsrepo.CardRepository,
	cipher SecretCipher,
	balanceSvc portssvc.BalanceSvc,
) *CardService {
	return &CardService{
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
		cardRepo:     cardRepo,
		cipher:       cipher,
		balanceSvc:   balanceSvc,
	}
}

var _ portssvc.CardSvcFacade = (*CardService)(nil)

// CreateCard issues a new card for the employee after the full check chain:
// company resolved by API key, employee owned by that company, no existing
// card of the same type. New cards are blocked and not activated.
func (s *CardService) CreateCard(ctx context.Context, apiKey string, employeeID int64, cardType string) (*domain.Card, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if apiKey == "" || employeeID == 0 || cardType == "" {
		return nil, apperrors.NewUnprocessable("apiKey, employeeId and cardType are required")
	}
	parsedType, ok := domain.ParseCardType(cardType)
	if !ok {
		return nil, apperrors.NewUnprocessable("Invalid card type")
	}

	company, err := s.companyRepo.FindCompanyByAPIKey(ctx, apiKey)
	if err != nil {
		return nil, asNotFound(err, "Company not found")
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, asNotFound(err, "Employee not found")
	}
	if employee.CompanyID != company.ID {
		return nil, apperrors.NewNotFound("Employee not found")
	}

	_, err = s.cardRepo.FindCardByTypeAndEmployeeID(ctx, parsedType, employee.ID)
	if err == nil {
		return nil, apperrors.NewConflict("Card already registered")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	number, err := utils.GenerateCardNumber(cardNumberLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate card number: %w", err)
	}
	securityCode, err := utils.GenerateSecurityCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate security code: %w", err)
	}
	encryptedCode, err := s.cipher.Encrypt(securityCode)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt security code: %w", err)
	}

	card := domain.Card{
		EmployeeID:     employee.ID,
		Number:         number,
		CardholderName: utils.MaskCardholderName(employee.FullName),
		SecurityCode:   encryptedCode,
		ExpirationDate: utils.GenerateExpirationDate(time.Now()),
		IsVirtual:      true,
		IsBlocked:      true,
		Type:           parsedType,
	}

	created, err := s.cardRepo.SaveCard(ctx, card)
	if err != nil {
		logger.Error("Failed to save card in repository", slog.String("error", err.Error()), slog.Int64("employee_id", employee.ID))
		return nil, err
	}

	logger.Info("Card created", slog.Int64("card_id", created.ID), slog.String("card_type", string(created.Type)))
	return created, nil
}

// ActivateCard stores the encrypted card password after checking the security
// code. Activation happens exactly once; the blocked flag is left untouched.
func (s *CardService) ActivateCard(ctx context.Context, cardID, securityCode, password string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if cardID == "" || securityCode == "" || password == "" {
		return apperrors.NewUnprocessable("cardId, securityCode and password are required")
	}
	id, err := parseCardID(cardID)
	if err != nil {
		return err
	}
	if !passwordPattern.MatchString(password) {
		return apperrors.NewUnprocessable("Password must be a 4 digit number")
	}
	if !securityCodePattern.MatchString(securityCode) {
		return apperrors.NewUnprocessable("Security code must be a 3 digit number")
	}

	card, err := s.cardRepo.FindCardByID(ctx, id)
	if err != nil {
		return asNotFound(err, "Card not found")
	}

	storedCode, err := s.cipher.Decrypt(card.SecurityCode)
	if err != nil {
		return fmt.Errorf("failed to decrypt security code for card %d: %w", id, err)
	}
	if storedCode != securityCode {
		return apperrors.NewUnauthorized("Invalid security code")
	}

	if card.IsExpired(time.Now()) {
		return apperrors.NewConflict("Expired card")
	}
	if card.IsActive() {
		return apperrors.NewConflict("Card already activated")
	}

	encrypted, err := s.cipher.Encrypt(password)
	if err != nil {
		return fmt.Errorf("failed to encrypt password: %w", err)
	}
	card.Password = &encrypted

	if err := s.cardRepo.UpdateCard(ctx, *card); err != nil {
		logger.Error("Failed to update card on activation", slog.String("error", err.Error()), slog.Int64("card_id", id))
		return err
	}

	logger.Info("Card activated", slog.Int64("card_id", id))
	return nil
}

// BlockCard marks the card as blocked after checking the password.
func (s *CardService) BlockCard(ctx context.Context, cardID, password string) error {
	return s.setBlocked(ctx, cardID, password, true)
}

// UnblockCard marks the card as unblocked after checking the password.
func (s *CardService) UnblockCard(ctx context.Context, cardID, password string) error {
	return s.setBlocked(ctx, cardID, password, false)
}

func (s *CardService) setBlocked(ctx context.Context, cardID, password string, blocked bool) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if cardID == "" || password == "" {
		return apperrors.NewUnprocessable("cardId and password are required")
	}
	id, err := parseCardID(cardID)
	if err != nil {
		return err
	}
	if !passwordPattern.MatchString(password) {
		return apperrors.NewUnprocessable("Password must be a 4 digit number")
	}

	card, err := s.cardRepo.FindCardByID(ctx, id)
	if err != nil {
		return asNotFound(err, "Card not found")
	}

	if !card.IsActive() {
		return apperrors.NewUnauthorized("Invalid password")
	}
	storedPassword, err := s.cipher.Decrypt(*card.Password)
	if err != nil {
		return fmt.Errorf("failed to decrypt password for card %d: %w", id, err)
	}
	if storedPassword != password {
		return apperrors.NewUnauthorized("Invalid password")
	}

	if card.IsExpired(time.Now()) {
		return apperrors.NewConflict("Expired card")
	}
	if card.IsBlocked == blocked {
		if blocked {
			return apperrors.NewConflict("Card already blocked")
		}
		return apperrors.NewConflict("Card already unblocked")
	}

	card.IsBlocked = blocked
	if err := s.cardRepo.UpdateCard(ctx, *card); err != nil {
		logger.Error("Failed to update card blocked state", slog.String("error", err.Error()), slog.Int64("card_id", id))
		return err
	}

	logger.Info("Card blocked state changed", slog.Int64("card_id", id), slog.Bool("is_blocked", blocked))
	return nil
}

// GetBalance validates the card id and delegates to the transaction engine's
// balance computation.
func (s *CardService) GetBalance(ctx context.Context, cardID string) (*domain.CardStatement, error) {
	if cardID == "" {
		return nil, apperrors.NewUnprocessable("cardId is required")
	}
	id, err := parseCardID(cardID)
	if err != nil {
		return nil, err
	}
	return s.balanceSvc.Balance(ctx, id)
}
