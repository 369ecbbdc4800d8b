package service

import (
	"context"

	"banking-backoffice/internal/apperr"
	"banking-backoffice/internal/domain"
	"banking-backoffice/internal/logger"
	"banking-backoffice/internal/repository"
	"banking-backoffice/internal/utils"
)

type depositService struct {
	depositRepo repository.DepositRepository
	accountRepo repository.AccountRepository
	tx          repository.TxRunner
}

func NewDepositService(
	depositRepo repository.DepositRepository,
	accountRepo repository.AccountRepository,
	tx repository.TxRunner,
) DepositService {
	return &depositService{
		depositRepo: depositRepo,
		accountRepo: accountRepo,
		tx:          tx,
	}
}

func (s *depositService) GetDepositsForAccount(ctx context.Context, accountID int64) ([]domain.Deposit, error) {
	logger.EnterMethod("depositService.GetDepositsForAccount", "accountID", accountID)

	if err := s.verifyAccountExists(ctx, accountID); err != nil {
		logger.ExitMethodWithError("depositService.GetDepositsForAccount", err, "accountID", accountID)
		return nil, err
	}

	deposits, err := s.depositRepo.ListByAccount(ctx, accountID)
	if err != nil {
		logger.ExitMethodWithError("depositService.GetDepositsForAccount", err, "accountID", accountID)
		return nil, err
	}

	logger.ExitMethod("depositService.GetDepositsForAccount", "accountID", accountID, "count", len(deposits))
	return deposits, nil
}

func (s *depositService) GetDeposit(ctx context.Context, depositID int64) (*domain.Deposit, error) {
	logger.EnterMethod("depositService.GetDeposit", "depositID", depositID)

	deposit, err := s.depositRepo.GetByID(ctx, depositID)
	if err != nil {
		logger.ExitMethodWithError("depositService.GetDeposit", err, "depositID", depositID)
		return nil, err
	}

	logger.ExitMethod("depositService.GetDeposit", "depositID", depositID)
	return deposit, nil
}

func (s *depositService) CreateDeposit(ctx context.Context, accountID int64, req *domain.DepositCreationRequest) (*domain.Deposit, error) {
	logger.EnterMethod("depositService.CreateDeposit", "accountID", accountID)

	var created *domain.Deposit
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.verifyAccountExists(ctx, accountID); err != nil {
			return err
		}

		deposit := &domain.Deposit{
			Type:            domain.TransactionTypeDeposit,
			TransactionDate: utils.Today().String(),
			Status:          domain.TransactionStatusPending,
			PayeeID:         accountID,
			Medium:          req.Medium,
			Amount:          req.Amount,
			Description:     req.Description,
		}
		if err := s.depositRepo.Create(ctx, deposit); err != nil {
			return err
		}
		created = deposit
		return nil
	})

	if err != nil {
		logger.ExitMethodWithError("depositService.CreateDeposit", err, "accountID", accountID)
		return nil, err
	}

	logger.ExitMethod("depositService.CreateDeposit", "depositID", created.ID)
	return created, nil
}

func (s *depositService) UpdateDeposit(ctx context.Context, depositID int64, updated *domain.Deposit) (*domain.Deposit, error) {
	logger.EnterMethod("depositService.UpdateDeposit", "depositID", depositID)

	var saved *domain.Deposit
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		original, err := s.depositRepo.GetByID(ctx, depositID)
		if err != nil {
			return err
		}

		if updated.ID != depositID {
			return apperr.Conflictf("Updated depositId must match previous depositId.")
		}
		if original.Status != domain.TransactionStatusPending {
			return apperr.InvalidInputf("Can not update deposit with status (%s).", original.Status)
		}

		// Association and bookkeeping fields are not client-mutable.
		updated.Type = original.Type
		updated.TransactionDate = original.TransactionDate
		updated.PayeeID = original.PayeeID
		updated.Status = original.Status

		if err := s.depositRepo.Update(ctx, updated); err != nil {
			return err
		}
		saved = updated
		return nil
	})

	if err != nil {
		logger.ExitMethodWithError("depositService.UpdateDeposit", err, "depositID", depositID)
		return nil, err
	}

	logger.ExitMethod("depositService.UpdateDeposit", "depositID", depositID)
	return saved, nil
}

func (s *depositService) DeleteDeposit(ctx context.Context, depositID int64) error {
	logger.EnterMethod("depositService.DeleteDeposit", "depositID", depositID)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.depositRepo.GetByID(ctx, depositID); err != nil {
			return err
		}
		return s.depositRepo.Delete(ctx, depositID)
	})

	if err != nil {
		logger.ExitMethodWithError("depositService.DeleteDeposit", err, "depositID", depositID)
		return err
	}

	logger.ExitMethod("depositService.DeleteDeposit", "depositID", depositID)
	return nil
}

func (s *depositService) ProcessDeposit(ctx context.Context, depositID int64) (*domain.Deposit, error) {
	logger.EnterMethod("depositService.ProcessDeposit", "depositID", depositID)

	var processed *domain.Deposit
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		deposit, err := s.depositRepo.GetByID(ctx, depositID)
		if err != nil {
			return err
		}
		if deposit.Status != domain.TransactionStatusPending {
			return apperr.Conflictf("Deposit with Id (%d) has already been processed.", depositID)
		}

		deposit.Status = domain.TransactionStatusCompleted
		if err := s.depositRepo.Update(ctx, deposit); err != nil {
			return err
		}
		processed = deposit
		return nil
	})

	if err != nil {
		logger.ExitMethodWithError("depositService.ProcessDeposit", err, "depositID", depositID)
		return nil, err
	}

	logger.ExitMethod("depositService.ProcessDeposit", "depositID", depositID)
	return processed, nil
}

func (s *depositService) verifyAccountExists(ctx context.Context, accountID int64) error {
	exists, err := s.accountRepo.Exists(ctx, accountID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundf("Account with Id (%d) not found.", accountID)
	}
	return nil
}
