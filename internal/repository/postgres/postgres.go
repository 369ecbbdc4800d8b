package postgres

import (
	"context"
	"database/sql"

	"banking-backoffice/internal/repository"

	_ "github.com/lib/pq"
)

// dbtx is the subset of *sql.DB and *sql.Tx the repositories use.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// conn returns the transaction bound to ctx when one is present, otherwise
// the shared connection pool.
func conn(ctx context.Context, db *sql.DB) dbtx {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

type Store struct {
	db *sql.DB
	repository.AccountRepository
	repository.CustomerRepository
	repository.BillRepository
	repository.DepositRepository
	repository.WithdrawalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		AccountRepository:    NewAccountRepository(db),
		CustomerRepository:   NewCustomerRepository(db),
		BillRepository:       NewBillRepository(db),
		DepositRepository:    NewDepositRepository(db),
		WithdrawalRepository: NewWithdrawalRepository(db),
	}
}

// RunInTx opens a transaction, binds it to the context handed to fn and
// commits when fn succeeds. A context already carrying a transaction is
// reused so nested units of work do not deadlock on the pool.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	return tx.Commit()
}
