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

type billRepository struct {
	db *sql.DB
}

func NewBillRepository(db *sql.DB) repository.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *domain.Bill) error {
	logger.EnterMethod("billRepository.Create", "accountID", bill.AccountID, "status", bill.Status)

	query := `
		INSERT INTO bills (
			status, payee, nickname, creation_date, payment_date,
			recurring_date, upcoming_payment_date, payment_amount, account_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := conn(ctx, r.db).QueryRowContext(ctx, query,
		bill.Status, bill.Payee, bill.Nickname, bill.CreationDate, bill.PaymentDate,
		bill.RecurringDate, bill.UpcomingPaymentDate, bill.PaymentAmount, bill.AccountID,
	).Scan(&bill.ID)

	if err != nil {
		logger.ExitMethodWithError("billRepository.Create", err, "accountID", bill.AccountID)
		return err
	}

	logger.ExitMethod("billRepository.Create", "billID", bill.ID)
	return nil
}

func (r *billRepository) GetByID(ctx context.Context, id int64) (*domain.Bill, error) {
	logger.EnterMethod("billRepository.GetByID", "billID", id)

	query := `
		SELECT id, status, payee, nickname, creation_date, payment_date,
		       recurring_date, upcoming_payment_date, payment_amount, account_id
		FROM bills WHERE id = $1
	`

	bill := &domain.Bill{}
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&bill.ID, &bill.Status, &bill.Payee, &bill.Nickname, &bill.CreationDate, &bill.PaymentDate,
		&bill.RecurringDate, &bill.UpcomingPaymentDate, &bill.PaymentAmount, &bill.AccountID,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = apperr.NotFoundf("Bill with Id (%d) not found.", id)
		}
		logger.ExitMethodWithError("billRepository.GetByID", err, "billID", id)
		return nil, err
	}

	logger.ExitMethod("billRepository.GetByID", "billID", id)
	return bill, nil
}

func (r *billRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.Bill, error) {
	logger.EnterMethod("billRepository.ListByAccount", "accountID", accountID)

	query := `
		SELECT id, status, payee, nickname, creation_date, payment_date,
		       recurring_date, upcoming_payment_date, payment_amount, account_id
		FROM bills WHERE account_id = $1
		ORDER BY id
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, accountID)
	if err != nil {
		logger.ExitMethodWithError("billRepository.ListByAccount", err, "accountID", accountID)
		return nil, err
	}
	defer rows.Close()

	bills := []domain.Bill{}
	for rows.Next() {
		var b domain.Bill
		err := rows.Scan(
			&b.ID, &b.Status, &b.Payee, &b.Nickname, &b.CreationDate, &b.PaymentDate,
			&b.RecurringDate, &b.UpcomingPaymentDate, &b.PaymentAmount, &b.AccountID,
		)
		if err != nil {
			logger.ExitMethodWithError("billRepository.ListByAccount", err, "accountID", accountID)
			return nil, err
		}
		bills = append(bills, b)
	}

	logger.ExitMethod("billRepository.ListByAccount", "accountID", accountID, "count", len(bills))
	return bills, nil
}

func (r *billRepository) ListByStatus(ctx context.Context, status domain.BillStatus) ([]domain.Bill, error) {
	logger.EnterMethod("billRepository.ListByStatus", "status", status)

	query := `
		SELECT id, status, payee, nickname, creation_date, payment_date,
		       recurring_date, upcoming_payment_date, payment_amount, account_id
		FROM bills WHERE status = $1
		ORDER BY id
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, status)
	if err != nil {
		logger.ExitMethodWithError("billRepository.ListByStatus", err, "status", status)
		return nil, err
	}
	defer rows.Close()

	bills := []domain.Bill{}
	for rows.Next() {
		var b domain.Bill
		err := rows.Scan(
			&b.ID, &b.Status, &b.Payee, &b.Nickname, &b.CreationDate, &b.PaymentDate,
			&b.RecurringDate, &b.UpcomingPaymentDate, &b.PaymentAmount, &b.AccountID,
		)
		if err != nil {
			logger.ExitMethodWithError("billRepository.ListByStatus", err, "status", status)
			return nil, err
		}
		bills = append(bills, b)
	}

	logger.ExitMethod("billRepository.ListByStatus", "status", status, "count", len(bills))
	return bills, nil
}

func (r *billRepository) Update(ctx context.Context, bill *domain.Bill) error {
	logger.EnterMethod("billRepository.Update", "billID", bill.ID, "status", bill.Status)

	query := `
		UPDATE bills SET
			status = $1,
			payment_date = $2,
			recurring_date = $3,
			upcoming_payment_date = $4,
			payment_amount = $5
		WHERE id = $6
	`

	_, err := conn(ctx, r.db).ExecContext(ctx, query,
		bill.Status, bill.PaymentDate, bill.RecurringDate, bill.UpcomingPaymentDate,
		bill.PaymentAmount, bill.ID,
	)

	if err != nil {
		logger.ExitMethodWithError("billRepository.Update", err, "billID", bill.ID)
		return err
	}

	logger.ExitMethod("billRepository.Update", "billID", bill.ID)
	return nil
}

func (r *billRepository) Delete(ctx context.Context, id int64) error {
	logger.EnterMethod("billRepository.Delete", "billID", id)

	_, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		logger.ExitMethodWithError("billRepository.Delete", err, "billID", id)
		return err
	}

	logger.ExitMethod("billRepository.Delete", "billID", id)
	return nil
}
