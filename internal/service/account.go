package service

import (
	"context"

	"banking-backoffice/internal/apperr"
	"banking-backoffice/internal/domain"
	"banking-backoffice/internal/logger"
	"banking-backoffice/internal/repository"
)

type accountService struct {
	accountRepo  repository.AccountRepository
	customerRepo repository.CustomerRepository
	tx           repository.TxRunner
}

func NewAccountService(
	accountRepo repository.AccountRepository,
	customerRepo repository.CustomerRepository,
	tx repository.TxRunner,
) AccountService {
	return &accountService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		tx:           tx,
	}
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	logger.EnterMethod("accountService.ListAccounts")

	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		logger.ExitMethodWithError("accountService.ListAccounts", err)
		return nil, err
	}

	logger.ExitMethod("accountService.ListAccounts", "count", len(accounts))
	return accounts, nil
}

func (s *accountService) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	logger.EnterMethod("accountService.GetAccount", "accountID", accountID)

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		logger.ExitMethodWithError("accountService.GetAccount", err, "accountID", accountID)
		return nil, err
	}

	logger.ExitMethod("accountService.GetAccount", "accountID", accountID)
	return account, nil
}

func (s *accountService) ListAccountsForCustomer(ctx context.Context, customerID int64) ([]domain.Account, error) {
	logger.EnterMethod("accountService.ListAccountsForCustomer", "customerID", customerID)

	exists, err := s.customerRepo.Exists(ctx, customerID)
	if err != nil {
		logger.ExitMethodWithError("accountService.ListAccountsForCustomer", err, "customerID", customerID)
		return nil, err
	}
	if !exists {
		err := apperr.NotFoundf("Customer with Id (%d) not found.", customerID)
		logger.ExitMethodWithError("accountService.ListAccountsForCustomer", err, "customerID", customerID)
		return nil, err
	}

	accounts, err := s.accountRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		logger.ExitMethodWithError("accountService.ListAccountsForCustomer", err, "customerID", customerID)
		return nil, err
	}

	logger.ExitMethod("accountService.ListAccountsForCustomer", "customerID", customerID, "count", len(accounts))
	return accounts, nil
}

func (s *accountService) CreateAccount(ctx context.Context, customerID int64, account *domain.Account) (*domain.Account, error) {
	logger.EnterMethod("accountService.CreateAccount", "customerID", customerID)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		exists, err := s.customerRepo.Exists(ctx, customerID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFoundf("Customer with Id (%d) not found.", customerID)
		}

		account.CustomerID = customerID
		return s.accountRepo.Create(ctx, account)
	})

	if err != nil {
		logger.ExitMethodWithError("accountService.CreateAccount", err, "customerID", customerID)
		return nil, err
	}

	logger.ExitMethod("accountService.CreateAccount", "accountID", account.ID)
	return account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, account *domain.Account) (*domain.Account, error) {
	logger.EnterMethod("accountService.UpdateAccount", "accountID", accountID)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return err
		}

		// The owning customer is not client-mutable.
		account.ID = accountID
		account.CustomerID = existing.CustomerID
		return s.accountRepo.Update(ctx, account)
	})

	if err != nil {
		logger.ExitMethodWithError("accountService.UpdateAccount", err, "accountID", accountID)
		return nil, err
	}

	logger.ExitMethod("accountService.UpdateAccount", "accountID", accountID)
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	logger.EnterMethod("accountService.DeleteAccount", "accountID", accountID)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
			return err
		}
		return s.accountRepo.Delete(ctx, accountID)
	})

	if err != nil {
		logger.ExitMethodWithError("accountService.DeleteAccount", err, "accountID", accountID)
		return err
	}

	logger.ExitMethod("accountService.DeleteAccount", "accountID", accountID)
	return nil
}
