package service

import (
	"context"

	"banking-backoffice/internal/domain"
)

type BillService interface {
	GetBillsForAccount(ctx context.Context, accountID int64) ([]domain.Bill, error)
	GetBill(ctx context.Context, billID int64) (*domain.Bill, error)
	GetBillsForCustomer(ctx context.Context, customerID int64) ([]domain.Bill, error)
	CreateBill(ctx context.Context, accountID int64, req *domain.BillCreationRequest) (*domain.Bill, error)
	UpdateBill(ctx context.Context, billID int64, updated *domain.Bill) (*domain.Bill, error)
	DeleteBill(ctx context.Context, billID int64) error
}

type AccountService interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)
	ListAccountsForCustomer(ctx context.Context, customerID int64) ([]domain.Account, error)
	CreateAccount(ctx context.Context, customerID int64, account *domain.Account) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID int64, account *domain.Account) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}

type DepositService interface {
	GetDepositsForAccount(ctx context.Context, accountID int64) ([]domain.Deposit, error)
	GetDeposit(ctx context.Context, depositID int64) (*domain.Deposit, error)
	CreateDeposit(ctx context.Context, accountID int64, req *domain.DepositCreationRequest) (*domain.Deposit, error)
	UpdateDeposit(ctx context.Context, depositID int64, updated *domain.Deposit) (*domain.Deposit, error)
	DeleteDeposit(ctx context.Context, depositID int64) error
	ProcessDeposit(ctx context.Context, depositID int64) (*domain.Deposit, error)
}

type WithdrawalService interface {
	GetWithdrawalsForAccount(ctx context.Context, accountID int64) ([]domain.Withdrawal, error)
	GetWithdrawal(ctx context.Context, withdrawalID int64) (*domain.Withdrawal, error)
	CreateWithdrawal(ctx context.Context, accountID int64, req *domain.WithdrawalCreationRequest) (*domain.Withdrawal, error)
	UpdateWithdrawal(ctx context.Context, withdrawalID int64, updated *domain.Withdrawal) (*domain.Withdrawal, error)
	DeleteWithdrawal(ctx context.Context, withdrawalID int64) error
	ProcessWithdrawal(ctx context.Context, withdrawalID int64) (*domain.Withdrawal, error)
}
