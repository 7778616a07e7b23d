package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/valecard/valecard_backend/internal/apperrors"
	"github.com/valecard/valecard_backend/internal/core/domain"
	portssvc "github.com/valecard/valecard_backend/internal/core/ports/services"
	"github.com/valecard/valecard_backend/internal/core/services"
	"github.com/valecard/valecard_backend/internal/platform/crypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockCompanyRepo  *MockCompanyRepository
	mockEmployeeRepo *MockEmployeeRepository
	mockCardRepo     *MockCardRepository
	mockBusinessRepo *MockBusinessRepository
	mockPaymentRepo  *MockPaymentRepository
	mockRechargeRepo *MockRechargeRepository
	cipher           *crypto.Cipher
	service          portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockCardRepo = new(MockCardRepository)
	suite.mockBusinessRepo = new(MockBusinessRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockRechargeRepo = new(MockRechargeRepository)

	cipher, err := crypto.NewCipher(testCipherKey)
	suite.Require().NoError(err)
	suite.cipher = cipher

	suite.service = services.NewTransactionService(
		suite.mockCompanyRepo,
		suite.mockEmployeeRepo,
		suite.mockCardRepo,
		suite.mockBusinessRepo,
		suite.mockPaymentRepo,
		suite.mockRechargeRepo,
		suite.cipher,
	)
}

func (suite *TransactionServiceTestSuite) encrypt(plaintext string) string {
	encrypted, err := suite.cipher.Encrypt(plaintext)
	suite.Require().NoError(err)
	return encrypted
}

func (suite *TransactionServiceTestSuite) activeCard(id int64, password string, cardType domain.CardType) *domain.Card {
	encrypted := suite.encrypt(password)
	return &domain.Card{
		ID:             id,
		EmployeeID:     7,
		SecurityCode:   suite.encrypt("123"),
		ExpirationDate: time.Now().AddDate(5, 0, 0).Format("01/06"),
		Password:       &encrypted,
		IsVirtual:      true,
		IsBlocked:      false,
		Type:           cardType,
	}
}

func (suite *TransactionServiceTestSuite) expectHistory(cardID int64, payments []domain.Payment, recharges []domain.Recharge) {
	ctx := context.Background()
	suite.mockPaymentRepo.On("FindPaymentsByCardID", ctx, cardID).Return(payments, nil).Once()
	suite.mockRechargeRepo.On("FindRechargesByCardID", ctx, cardID).Return(recharges, nil).Once()
}

// --- CreatePayment ---

func (suite *TransactionServiceTestSuite) TestCreatePayment_Success() {
	ctx := context.Background()
	card := suite.activeCard(5, "1234", domain.Groceries)
	business := &domain.Business{ID: 3, Name: "Mercado", Type: domain.Groceries}
	amount := decimal.NewFromInt(20)

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, int64(3)).Return(business, nil).Once()
	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(card, nil).Twice()
	suite.expectHistory(5, nil, []domain.Recharge{{ID: 1, CardID: 5, Amount: decimal.NewFromInt(100)}})
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.CardID == 5 && p.BusinessID == 3 && p.Amount.Equal(amount)
	})).Return(&domain.Payment{ID: 9, CardID: 5, BusinessID: 3, Amount: amount}, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, "5", "1234", 3, amount)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(int64(9), payment.ID)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreatePayment_MissingInput() {
	ctx := context.Background()

	_, err := suite.service.CreatePayment(ctx, "", "1234", 3, decimal.NewFromInt(10))
	suite.Require().ErrorIs(err, apperrors.ErrUnprocessable)
	suite.EqualError(err, "cardId, password, businessId and amount are required")

	_, err = suite.service.CreatePayment(ctx, "5", "1234", 0, decimal.NewFromInt(10))
	suite.Require().ErrorIs(err, apperrors.ErrUnprocessable)

	_, err = suite.service.CreatePayment(ctx, "5", "1234", 3, decimal.Zero)
	suite.Require().ErrorIs(err, apperrors.ErrUnprocessable)
}

func (suite *TransactionServiceTestSuite) TestCreatePayment_NegativeAmount() {
	ctx := context.Background()

	_, err := suite.service.CreatePayment(ctx, "5", "1234", 3, decimal.NewFromInt(-10))

	suite.Require().ErrorIs(err, apperrors.ErrUnprocessable)
	suite.EqualError(err, "Invalid amount")
}

func (suite *TransactionServiceTestSuite) TestCreatePayment_BusinessNotFound() {
	ctx := context.Background()

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, int64(3)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePayment(ctx, "5", "1234", 3, decimal.NewFromInt(10))

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.EqualError(err, "Business not found")
}

func (suite *TransactionServiceTestSuite) TestCreatePayment_CardNotFound() {
	ctx := context.Background()
	business := &domain.Business{ID: 3, Type: domain.Groceries}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, int64(3)).Return(business, nil).Once()
	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePayment(ctx, "5", "1234", 3, decimal.NewFromInt(10))

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.EqualError(err, "Card not found")
}

func (suite *TransactionServiceTestSuite) TestCreatePayment_TypeMismatch() {
	ctx := context.Background()
	card := suite.activeCard(5, "1234", domain.Groceries)
	business := &domain.Business{ID: 3, Type: domain.Restaurant}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, int64(3)).Return(business, nil).Once()
	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(card, nil).Once()

	_, err := suite.service.CreatePayment(ctx, "5", "1234", 3, decimal.NewFromInt(10))

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	suite.EqualError(err, "Unauthorized card type")
}

func (suite *TransactionServiceTestSuite) TestCreatePayment_CardNotActive() {
	ctx := context.Background()
	card := suite.activeCard(5, "1234", domain.Groceries)
	card.Password = nil
	business := &domain.Business{ID: 3, Type: domain.Groceries}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, int64(3)).Return(business, nil).Once()
	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(card, nil).Once()

	_, err := suite.service.CreatePayment(ctx, "5", "1234", 3, decimal.NewFromInt(10))

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.EqualError(err, "Card not active")
}

func (suite *TransactionServiceTestSuite) TestCreatePayment_ExpiredCard() {
	ctx := context.Background()
	card := suite.activeCard(5, "1234", domain.Groceries)
	card.ExpirationDate = "01/20"
	business := &domain.Business{ID: 3, Type: domain.Groceries}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, int64(3)).Return(business, nil).Once()
	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(card, nil).Once()

	_, err := suite.service.CreatePayment(ctx, "5", "1234", 3, decimal.NewFromInt(10))

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.EqualError(err, "Expired card")
}

func (suite *TransactionServiceTestSuite) TestCreatePayment_BlockedCard() {
	ctx := context.Background()
	card := suite.activeCard(5, "1234", domain.Groceries)
	card.IsBlocked = true
	business := &domain.Business{ID: 3, Type: domain.Groceries}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, int64(3)).Return(business, nil).Once()
	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(card, nil).Once()

	_, err := suite.service.CreatePayment(ctx, "5", "1234", 3, decimal.NewFromInt(10))

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.EqualError(err, "Blocked card")
}

func (suite *TransactionServiceTestSuite) TestCreatePayment_WrongPassword() {
	ctx := context.Background()
	card := suite.activeCard(5, "1234", domain.Groceries)
	business := &domain.Business{ID: 3, Type: domain.Groceries}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, int64(3)).Return(business, nil).Once()
	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(card, nil).Once()

	_, err := suite.service.CreatePayment(ctx, "5", "9999", 3, decimal.NewFromInt(10))

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	suite.EqualError(err, "Invalid password")
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreatePayment_NotSufficientFunds() {
	ctx := context.Background()
	card := suite.activeCard(5, "1234", domain.Groceries)
	business := &domain.Business{ID: 3, Type: domain.Groceries}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, int64(3)).Return(business, nil).Once()
	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(card, nil).Twice()
	suite.expectHistory(5, nil, []domain.Recharge{{ID: 1, CardID: 5, Amount: decimal.NewFromInt(30)}})

	_, err := suite.service.CreatePayment(ctx, "5", "1234", 3, decimal.NewFromInt(50))

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	suite.EqualError(err, "Not sufficient funds")
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

// --- CreateRecharge ---

func (suite *TransactionServiceTestSuite) TestCreateRecharge_Success() {
	ctx := context.Background()
	company := &domain.Company{ID: 1, APIKey: "K1"}
	employee := &domain.Employee{ID: 7, CompanyID: 1}
	card := suite.activeCard(5, "1234", domain.Groceries)
	amount := decimal.NewFromInt(200)

	suite.mockCompanyRepo.On("FindCompanyByAPIKey", ctx, "K1").Return(company, nil).Once()
	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(card, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(7)).Return(employee, nil).Once()
	suite.mockRechargeRepo.On("SaveRecharge", ctx, mock.MatchedBy(func(r domain.Recharge) bool {
		return r.CardID == 5 && r.Amount.Equal(amount)
	})).Return(&domain.Recharge{ID: 11, CardID: 5, Amount: amount}, nil).Once()

	recharge, err := suite.service.CreateRecharge(ctx, "K1", "5", amount)

	suite.Require().NoError(err)
	suite.Require().NotNil(recharge)
	suite.Equal(int64(11), recharge.ID)
	suite.mockRechargeRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateRecharge_MissingInput() {
	ctx := context.Background()

	_, err := suite.service.CreateRecharge(ctx, "", "5", decimal.NewFromInt(10))
	suite.Require().ErrorIs(err, apperrors.ErrUnprocessable)
	suite.EqualError(err, "apiKey, cardId and amount are required")

	_, err = suite.service.CreateRecharge(ctx, "K1", "5", decimal.Zero)
	suite.Require().ErrorIs(err, apperrors.ErrUnprocessable)
}

func (suite *TransactionServiceTestSuite) TestCreateRecharge_CompanyNotFound() {
	ctx := context.Background()

	suite.mockCompanyRepo.On("FindCompanyByAPIKey", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateRecharge(ctx, "missing", "5", decimal.NewFromInt(10))

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.EqualError(err, "Company not found")
}

func (suite *TransactionServiceTestSuite) TestCreateRecharge_CardOfAnotherCompany() {
	ctx := context.Background()
	company := &domain.Company{ID: 1, APIKey: "K1"}
	employee := &domain.Employee{ID: 7, CompanyID: 2}
	card := suite.activeCard(5, "1234", domain.Groceries)

	suite.mockCompanyRepo.On("FindCompanyByAPIKey", ctx, "K1").Return(company, nil).Once()
	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(card, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(7)).Return(employee, nil).Once()

	_, err := suite.service.CreateRecharge(ctx, "K1", "5", decimal.NewFromInt(10))

	// Cross-company cards are reported as missing, not as forbidden.
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.EqualError(err, "Card not found")
	suite.mockRechargeRepo.AssertNotCalled(suite.T(), "SaveRecharge", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateRecharge_CardNotActive() {
	ctx := context.Background()
	company := &domain.Company{ID: 1, APIKey: "K1"}
	employee := &domain.Employee{ID: 7, CompanyID: 1}
	card := suite.activeCard(5, "1234", domain.Groceries)
	card.Password = nil

	suite.mockCompanyRepo.On("FindCompanyByAPIKey", ctx, "K1").Return(company, nil).Once()
	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(card, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(7)).Return(employee, nil).Once()

	_, err := suite.service.CreateRecharge(ctx, "K1", "5", decimal.NewFromInt(10))

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.EqualError(err, "Card not active")
}

func (suite *TransactionServiceTestSuite) TestCreateRecharge_ExpiredCard() {
	ctx := context.Background()
	company := &domain.Company{ID: 1, APIKey: "K1"}
	employee := &domain.Employee{ID: 7, CompanyID: 1}
	card := suite.activeCard(5, "1234", domain.Groceries)
	card.ExpirationDate = "01/20"

	suite.mockCompanyRepo.On("FindCompanyByAPIKey", ctx, "K1").Return(company, nil).Once()
	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(card, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(7)).Return(employee, nil).Once()

	_, err := suite.service.CreateRecharge(ctx, "K1", "5", decimal.NewFromInt(10))

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.EqualError(err, "Expired card")
}

// --- Balance ---

func (suite *TransactionServiceTestSuite) TestBalance_FoldsPaymentsAndRecharges() {
	ctx := context.Background()
	card := suite.activeCard(5, "1234", domain.Groceries)
	payments := []domain.Payment{
		{ID: 1, CardID: 5, Amount: decimal.NewFromInt(10)},
		{ID: 2, CardID: 5, Amount: decimal.NewFromInt(5)},
	}
	recharges := []domain.Recharge{
		{ID: 1, CardID: 5, Amount: decimal.NewFromInt(100)},
	}

	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(card, nil).Once()
	suite.expectHistory(5, payments, recharges)

	statement, err := suite.service.Balance(ctx, 5)

	suite.Require().NoError(err)
	suite.Require().NotNil(statement)
	suite.True(statement.Balance.Equal(decimal.NewFromInt(115)), "balance = %s", statement.Balance)
	suite.Len(statement.Transactions, 2)
	suite.Len(statement.Recharges, 1)
}

func (suite *TransactionServiceTestSuite) TestBalance_EmptyHistory() {
	ctx := context.Background()
	card := suite.activeCard(5, "1234", domain.Groceries)

	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(card, nil).Once()
	suite.expectHistory(5, nil, nil)

	statement, err := suite.service.Balance(ctx, 5)

	suite.Require().NoError(err)
	suite.True(statement.Balance.IsZero())
	suite.NotNil(statement.Transactions)
	suite.NotNil(statement.Recharges)
	suite.Empty(statement.Transactions)
	suite.Empty(statement.Recharges)
}

func (suite *TransactionServiceTestSuite) TestBalance_CardNotFound() {
	ctx := context.Background()

	suite.mockCardRepo.On("FindCardByID", ctx, int64(5)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Balance(ctx, 5)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.EqualError(err, "Card not found")
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
