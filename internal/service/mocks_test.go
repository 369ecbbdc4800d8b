package service_test

import (
	"context"

	"banking-backoffice/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockBillRepo
type MockBillRepo struct {
	mock.Mock
}

func (m *MockBillRepo) Create(ctx context.Context, bill *domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}
func (m *MockBillRepo) GetByID(ctx context.Context, id int64) (*domain.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}
func (m *MockBillRepo) ListByAccount(ctx context.Context, accountID int64) ([]domain.Bill, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]domain.Bill), args.Error(1)
}
func (m *MockBillRepo) ListByStatus(ctx context.Context, status domain.BillStatus) ([]domain.Bill, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Bill), args.Error(1)
}
func (m *MockBillRepo) Update(ctx context.Context, bill *domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}
func (m *MockBillRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAccountRepo
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockAccountRepo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountRepo) List(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) Update(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockAccountRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockDepositRepo
type MockDepositRepo struct {
	mock.Mock
}

func (m *MockDepositRepo) Create(ctx context.Context, deposit *domain.Deposit) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}
func (m *MockDepositRepo) GetByID(ctx context.Context, id int64) (*domain.Deposit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}
func (m *MockDepositRepo) ListByAccount(ctx context.Context, accountID int64) ([]domain.Deposit, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]domain.Deposit), args.Error(1)
}
func (m *MockDepositRepo) Update(ctx context.Context, deposit *domain.Deposit) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}
func (m *MockDepositRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWithdrawalRepo
type MockWithdrawalRepo struct {
	mock.Mock
}

func (m *MockWithdrawalRepo) Create(ctx context.Context, withdrawal *domain.Withdrawal) error {
	args := m.Called(ctx, withdrawal)
	return args.Error(0)
}
func (m *MockWithdrawalRepo) GetByID(ctx context.Context, id int64) (*domain.Withdrawal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}
func (m *MockWithdrawalRepo) ListByAccount(ctx context.Context, accountID int64) ([]domain.Withdrawal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]domain.Withdrawal), args.Error(1)
}
func (m *MockWithdrawalRepo) Update(ctx context.Context, withdrawal *domain.Withdrawal) error {
	args := m.Called(ctx, withdrawal)
	return args.Error(0)
}
func (m *MockWithdrawalRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// stubTxRunner runs the unit of work directly on the caller's context.
type stubTxRunner struct{}

func (stubTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
