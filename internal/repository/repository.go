package repository

import (
	"context"

	"banking-backoffice/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]domain.Account, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id int64) error
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) error
	GetByID(ctx context.Context, id int64) (*domain.Bill, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Bill, error)
	ListByStatus(ctx context.Context, status domain.BillStatus) ([]domain.Bill, error)
	Update(ctx context.Context, bill *domain.Bill) error
	Delete(ctx context.Context, id int64) error
}

type DepositRepository interface {
	Create(ctx context.Context, deposit *domain.Deposit) error
	GetByID(ctx context.Context, id int64) (*domain.Deposit, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Deposit, error)
	Update(ctx context.Context, deposit *domain.Deposit) error
	Delete(ctx context.Context, id int64) error
}

type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *domain.Withdrawal) error
	GetByID(ctx context.Context, id int64) (*domain.Withdrawal, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Withdrawal, error)
	Update(ctx context.Context, withdrawal *domain.Withdrawal) error
	Delete(ctx context.Context, id int64) error
}

// TxRunner runs fn inside a single database transaction. Repository calls made
// with the context passed to fn share that transaction, so every mutating
// service operation sees its existence checks and final write as one atomic
// unit of work.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
