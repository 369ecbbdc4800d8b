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

type depositRepository struct {
	db *sql.DB
}

func NewDepositRepository(db *sql.DB) repository.DepositRepository {
	return &depositRepository{db: db}
}

func (r *depositRepository) Create(ctx context.Context, deposit *domain.Deposit) error {
	logger.EnterMethod("depositRepository.Create", "payeeID", deposit.PayeeID)

	query := `
		INSERT INTO deposits (type, transaction_date, status, payee_id, medium, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := conn(ctx, r.db).QueryRowContext(ctx, query,
		deposit.Type, deposit.TransactionDate, deposit.Status, deposit.PayeeID,
		deposit.Medium, deposit.Amount, deposit.Description,
	).Scan(&deposit.ID)

	if err != nil {
		logger.ExitMethodWithError("depositRepository.Create", err, "payeeID", deposit.PayeeID)
		return err
	}

	logger.ExitMethod("depositRepository.Create", "depositID", deposit.ID)
	return nil
}

func (r *depositRepository) GetByID(ctx context.Context, id int64) (*domain.Deposit, error) {
	logger.EnterMethod("depositRepository.GetByID", "depositID", id)

	query := `
		SELECT id, type, transaction_date, status, payee_id, medium, amount, description
		FROM deposits WHERE id = $1
	`

	deposit := &domain.Deposit{}
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&deposit.ID, &deposit.Type, &deposit.TransactionDate, &deposit.Status,
		&deposit.PayeeID, &deposit.Medium, &deposit.Amount, &deposit.Description,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = apperr.NotFoundf("Deposit with Id (%d) not found.", id)
		}
		logger.ExitMethodWithError("depositRepository.GetByID", err, "depositID", id)
		return nil, err
	}

	logger.ExitMethod("depositRepository.GetByID", "depositID", id)
	return deposit, nil
}

func (r *depositRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.Deposit, error) {
	logger.EnterMethod("depositRepository.ListByAccount", "accountID", accountID)

	query := `
		SELECT id, type, transaction_date, status, payee_id, medium, amount, description
		FROM deposits WHERE payee_id = $1
		ORDER BY id
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, accountID)
	if err != nil {
		logger.ExitMethodWithError("depositRepository.ListByAccount", err, "accountID", accountID)
		return nil, err
	}
	defer rows.Close()

	deposits := []domain.Deposit{}
	for rows.Next() {
		var d domain.Deposit
		err := rows.Scan(&d.ID, &d.Type, &d.TransactionDate, &d.Status, &d.PayeeID, &d.Medium, &d.Amount, &d.Description)
		if err != nil {
			logger.ExitMethodWithError("depositRepository.ListByAccount", err, "accountID", accountID)
			return nil, err
		}
		deposits = append(deposits, d)
	}

	logger.ExitMethod("depositRepository.ListByAccount", "accountID", accountID, "count", len(deposits))
	return deposits, nil
}

func (r *depositRepository) Update(ctx context.Context, deposit *domain.Deposit) error {
	logger.EnterMethod("depositRepository.Update", "depositID", deposit.ID)

	query := `
		UPDATE deposits SET status = $1, medium = $2, amount = $3, description = $4
		WHERE id = $5
	`

	_, err := conn(ctx, r.db).ExecContext(ctx, query,
		deposit.Status, deposit.Medium, deposit.Amount, deposit.Description, deposit.ID,
	)

	if err != nil {
		logger.ExitMethodWithError("depositRepository.Update", err, "depositID", deposit.ID)
		return err
	}

	logger.ExitMethod("depositRepository.Update", "depositID", deposit.ID)
	return nil
}

func (r *depositRepository) Delete(ctx context.Context, id int64) error {
	logger.EnterMethod("depositRepository.Delete", "depositID", id)

	_, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM deposits WHERE id = $1`, id)
	if err != nil {
		logger.ExitMethodWithError("depositRepository.Delete", err, "depositID", id)
		return err
	}

	logger.ExitMethod("depositRepository.Delete", "depositID", id)
	return nil
}
