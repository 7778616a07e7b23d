package services_test

import (
	"context"

	"github.com/valecard/valecard_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByAPIKey(ctx context.Context, apiKey string) (*domain.Company, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// --- Mock CardRepository ---
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) FindCardByID(ctx context.Context, cardID int64) (*domain.Card, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardRepository) FindCardByTypeAndEmployeeID(ctx context.Context, cardType domain.CardType, employeeID int64) (*domain.Card, error) {
	args := m.Called(ctx, cardType, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardRepository) SaveCard(ctx context.Context, card domain.Card) (*domain.Card, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardRepository) UpdateCard(ctx context.Context, card domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

// --- Mock BusinessRepository ---
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID int64) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentsByCardID(ctx context.Context, cardID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

// --- Mock RechargeRepository ---
type MockRechargeRepository struct {
	mock.Mock
}

func (m *MockRechargeRepository) FindRechargesByCardID(ctx context.Context, cardID int64) ([]domain.Recharge, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recharge), args.Error(1)
}

func (m *MockRechargeRepository) SaveRecharge(ctx context.Context, recharge domain.Recharge) (*domain.Recharge, error) {
	args := m.Called(ctx, recharge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recharge), args.Error(1)
}

// --- Mock BalanceSvc ---
type MockBalanceSvc struct {
	mock.Mock
}

func (m *MockBalanceSvc) Balance(ctx context.Context, cardID int64) (*domain.CardStatement, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardStatement), args.Error(1)
}
