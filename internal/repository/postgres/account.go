package postgres

import (
	"context"
	"database/sql"
	"errors"

	"banking-backoffice/internal/apperr"
	"banking-backoffice/internal/domain"
	"banking-backoffice/internal/logger"
	"banking-backoffice/internal/repository"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	logger.EnterMethod("accountRepository.Create", "customerID", account.CustomerID)

	query := `
		INSERT INTO accounts (type, nickname, rewards, balance, customer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := conn(ctx, r.db).QueryRowContext(ctx, query,
		account.Type, account.Nickname, account.Rewards, account.Balance, account.CustomerID,
	).Scan(&account.ID)

	if err != nil {
		logger.ExitMethodWithError("accountRepository.Create", err, "customerID", account.CustomerID)
		return err
	}

	logger.ExitMethod("accountRepository.Create", "accountID", account.ID)
	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	logger.EnterMethod("accountRepository.GetByID", "accountID", id)

	query := `
		SELECT id, type, nickname, rewards, balance, customer_id
		FROM accounts WHERE id = $1
	`

	account := &domain.Account{}
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.Type, &account.Nickname, &account.Rewards,
		&account.Balance, &account.CustomerID,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = apperr.NotFoundf("Account with Id (%d) not found.", id)
		}
		logger.ExitMethodWithError("accountRepository.GetByID", err, "accountID", id)
		return nil, err
	}

	logger.ExitMethod("accountRepository.GetByID", "accountID", id)
	return account, nil
}

func (r *accountRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		logger.ExitMethodWithError("accountRepository.Exists", err, "accountID", id)
		return false, err
	}
	return exists, nil
}

func (r *accountRepository) List(ctx context.Context) ([]domain.Account, error) {
	logger.EnterMethod("accountRepository.List")

	query := `
		SELECT id, type, nickname, rewards, balance, customer_id
		FROM accounts
		ORDER BY id
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		logger.ExitMethodWithError("accountRepository.List", err)
		return nil, err
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var a domain.Account
		err := rows.Scan(&a.ID, &a.Type, &a.Nickname, &a.Rewards, &a.Balance, &a.CustomerID)
		if err != nil {
			logger.ExitMethodWithError("accountRepository.List", err)
			return nil, err
		}
		accounts = append(accounts, a)
	}

	logger.ExitMethod("accountRepository.List", "count", len(accounts))
	return accounts, nil
}

func (r *accountRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error) {
	logger.EnterMethod("accountRepository.ListByCustomer", "customerID", customerID)

	query := `
		SELECT id, type, nickname, rewards, balance, customer_id
		FROM accounts WHERE customer_id = $1
		ORDER BY id
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, customerID)
	if err != nil {
		logger.ExitMethodWithError("accountRepository.ListByCustomer", err, "customerID", customerID)
		return nil, err
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var a domain.Account
		err := rows.Scan(&a.ID, &a.Type, &a.Nickname, &a.Rewards, &a.Balance, &a.CustomerID)
		if err != nil {
			logger.ExitMethodWithError("accountRepository.ListByCustomer", err, "customerID", customerID)
			return nil, err
		}
		accounts = append(accounts, a)
	}

	logger.ExitMethod("accountRepository.ListByCustomer", "customerID", customerID, "count", len(accounts))
	return accounts, nil
}

func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	logger.EnterMethod("accountRepository.Update", "accountID", account.ID)

	query := `
		UPDATE accounts SET type = $1, nickname = $2, rewards = $3, balance = $4
		WHERE id = $5
	`

	_, err := conn(ctx, r.db).ExecContext(ctx, query,
		account.Type, account.Nickname, account.Rewards, account.Balance, account.ID,
	)

	if err != nil {
		logger.ExitMethodWithError("accountRepository.Update", err, "accountID", account.ID)
		return err
	}

	logger.ExitMethod("accountRepository.Update", "accountID", account.ID)
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	logger.EnterMethod("accountRepository.Delete", "accountID", id)

	_, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		logger.ExitMethodWithError("accountRepository.Delete", err, "accountID", id)
		return err
	}

	logger.ExitMethod("accountRepository.Delete", "accountID", id)
	return nil
}
