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

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	logger.EnterMethod("customerRepository.GetByID", "customerID", id)

	query := `SELECT id, first_name, last_name FROM customers WHERE id = $1`

	customer := &domain.Customer{}
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&customer.ID, &customer.FirstName, &customer.LastName,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = apperr.NotFoundf("Customer with Id (%d) not found.", id)
		}
		logger.ExitMethodWithError("customerRepository.GetByID", err, "customerID", id)
		return nil, err
	}

	logger.ExitMethod("customerRepository.GetByID", "customerID", id)
	return customer, nil
}

func (r *customerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		logger.ExitMethodWithError("customerRepository.Exists", err, "customerID", id)
		return false, err
	}
	return exists, nil
}
