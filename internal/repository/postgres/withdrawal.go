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

type withdrawalRepository struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) repository.WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

func (r *withdrawalRepository) Create(ctx context.Context, withdrawal *domain.Withdrawal) error {
	logger.EnterMethod("withdrawalRepository.Create", "payerID", withdrawal.PayerID)

	query := `
		INSERT INTO withdrawals (type, transaction_date, status, payer_id, medium, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := conn(ctx, r.db).QueryRowContext(ctx, query,
		withdrawal.Type, withdrawal.TransactionDate, withdrawal.Status, withdrawal.PayerID,
		withdrawal.Medium, withdrawal.Amount, withdrawal.Description,
	).Scan(&withdrawal.ID)

	if err != nil {
		logger.ExitMethodWithError("withdrawalRepository.Create", err, "payerID", withdrawal.PayerID)
		return err
	}

	logger.ExitMethod("withdrawalRepository.Create", "withdrawalID", withdrawal.ID)
	return nil
}

func (r *withdrawalRepository) GetByID(ctx context.Context, id int64) (*domain.Withdrawal, error) {
	logger.EnterMethod("withdrawalRepository.GetByID", "withdrawalID", id)

	query := `
		SELECT id, type, transaction_date, status, payer_id, medium, amount, description
		FROM withdrawals WHERE id = $1
	`

	withdrawal := &domain.Withdrawal{}
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&withdrawal.ID, &withdrawal.Type, &withdrawal.TransactionDate, &withdrawal.Status,
		&withdrawal.PayerID, &withdrawal.Medium, &withdrawal.Amount, &withdrawal.Description,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = apperr.NotFoundf("Withdrawal with Id (%d) not found.", id)
		}
		logger.ExitMethodWithError("withdrawalRepository.GetByID", err, "withdrawalID", id)
		return nil, err
	}

	logger.ExitMethod("withdrawalRepository.GetByID", "withdrawalID", id)
	return withdrawal, nil
}

func (r *withdrawalRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.Withdrawal, error) {
	logger.EnterMethod("withdrawalRepository.ListByAccount", "accountID", accountID)

	query := `
		SELECT id, type, transaction_date, status, payer_id, medium, amount, description
		FROM withdrawals WHERE payer_id = $1
		ORDER BY id
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, accountID)
	if err != nil {
		logger.ExitMethodWithError("withdrawalRepository.ListByAccount", err, "accountID", accountID)
		return nil, err
	}
	defer rows.Close()

	withdrawals := []domain.Withdrawal{}
	for rows.Next() {
		var w domain.Withdrawal
		err := rows.Scan(&w.ID, &w.Type, &w.TransactionDate, &w.Status, &w.PayerID, &w.Medium, &w.Amount, &w.Description)
		if err != nil {
			logger.ExitMethodWithError("withdrawalRepository.ListByAccount", err, "accountID", accountID)
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}

	logger.ExitMethod("withdrawalRepository.ListByAccount", "accountID", accountID, "count", len(withdrawals))
	return withdrawals, nil
}

func (r *withdrawalRepository) Update(ctx context.Context, withdrawal *domain.Withdrawal) error {
	logger.EnterMethod("withdrawalRepository.Update", "withdrawalID", withdrawal.ID)

	query := `
		UPDATE withdrawals SET status = $1, medium = $2, amount = $3, description = $4
		WHERE id = $5
	`

	_, err := conn(ctx, r.db).ExecContext(ctx, query,
		withdrawal.Status, withdrawal.Medium, withdrawal.Amount, withdrawal.Description, withdrawal.ID,
	)

	if err != nil {
		logger.ExitMethodWithError("withdrawalRepository.Update", err, "withdrawalID", withdrawal.ID)
		return err
	}

	logger.ExitMethod("withdrawalRepository.Update", "withdrawalID", withdrawal.ID)
	return nil
}

func (r *withdrawalRepository) Delete(ctx context.Context, id int64) error {
	logger.EnterMethod("withdrawalRepository.Delete", "withdrawalID", id)

	_, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM withdrawals WHERE id = $1`, id)
	if err != nil {
		logger.ExitMethodWithError("withdrawalRepository.Delete", err, "withdrawalID", id)
		return err
	}

	logger.ExitMethod("withdrawalRepository.Delete", "withdrawalID", id)
	return nil
}
