package service

import (
	"context"

	"banking-backoffice/internal/apperr"
	"banking-backoffice/internal/domain"
	"banking-backoffice/internal/logger"
	"banking-backoffice/internal/repository"
	"banking-backoffice/internal/utils"
)

type withdrawalService struct {
	withdrawalRepo repository.WithdrawalRepository
	accountRepo    repository.AccountRepository
	tx             repository.TxRunner
}

func NewWithdrawalService(
	withdrawalRepo repository.WithdrawalRepository,
	accountRepo repository.AccountRepository,
	tx repository.TxRunner,
) WithdrawalService {
	return &withdrawalService{
		withdrawalRepo: withdrawalRepo,
		accountRepo:    accountRepo,
		tx:             tx,
	}
}

func (s *withdrawalService) GetWithdrawalsForAccount(ctx context.Context, accountID int64) ([]domain.Withdrawal, error) {
	logger.EnterMethod("withdrawalService.GetWithdrawalsForAccount", "accountID", accountID)

	if err := s.verifyAccountExists(ctx, accountID); err != nil {
		logger.ExitMethodWithError("withdrawalService.GetWithdrawalsForAccount", err, "accountID", accountID)
		return nil, err
	}

	withdrawals, err := s.withdrawalRepo.ListByAccount(ctx, accountID)
	if err != nil {
		logger.ExitMethodWithError("withdrawalService.GetWithdrawalsForAccount", err, "accountID", accountID)
		return nil, err
	}

	logger.ExitMethod("withdrawalService.GetWithdrawalsForAccount", "accountID", accountID, "count", len(withdrawals))
	return withdrawals, nil
}

func (s *withdrawalService) GetWithdrawal(ctx context.Context, withdrawalID int64) (*domain.Withdrawal, error) {
	logger.EnterMethod("withdrawalService.GetWithdrawal", "withdrawalID", withdrawalID)

	withdrawal, err := s.withdrawalRepo.GetByID(ctx, withdrawalID)
	if err != nil {
		logger.ExitMethodWithError("withdrawalService.GetWithdrawal", err, "withdrawalID", withdrawalID)
		return nil, err
	}

	logger.ExitMethod("withdrawalService.GetWithdrawal", "withdrawalID", withdrawalID)
	return withdrawal, nil
}

func (s *withdrawalService) CreateWithdrawal(ctx context.Context, accountID int64, req *domain.WithdrawalCreationRequest) (*domain.Withdrawal, error) {
	logger.EnterMethod("withdrawalService.CreateWithdrawal", "accountID", accountID)

	var created *domain.Withdrawal
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.verifyAccountExists(ctx, accountID); err != nil {
			return err
		}

		withdrawal := &domain.Withdrawal{
			Type:            domain.TransactionTypeWithdrawal,
			TransactionDate: utils.Today().String(),
			Status:          domain.TransactionStatusPending,
			PayerID:         accountID,
			Medium:          req.Medium,
			Amount:          req.Amount,
			Description:     req.Description,
		}
		if err := s.withdrawalRepo.Create(ctx, withdrawal); err != nil {
			return err
		}
		created = withdrawal
		return nil
	})

	if err != nil {
		logger.ExitMethodWithError("withdrawalService.CreateWithdrawal", err, "accountID", accountID)
		return nil, err
	}

	logger.ExitMethod("withdrawalService.CreateWithdrawal", "withdrawalID", created.ID)
	return created, nil
}

func (s *withdrawalService) UpdateWithdrawal(ctx context.Context, withdrawalID int64, updated *domain.Withdrawal) (*domain.Withdrawal, error) {
	logger.EnterMethod("withdrawalService.UpdateWithdrawal", "withdrawalID", withdrawalID)

	var saved *domain.Withdrawal
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		original, err := s.withdrawalRepo.GetByID(ctx, withdrawalID)
		if err != nil {
			return err
		}

		if updated.ID != withdrawalID {
			return apperr.Conflictf("Updated withdrawalId must match previous withdrawalId.")
		}
		if original.Status != domain.TransactionStatusPending {
			return apperr.InvalidInputf("Can not update withdrawal with status (%s).", original.Status)
		}

		// Association and bookkeeping fields are not client-mutable.
		updated.Type = original.Type
		updated.TransactionDate = original.TransactionDate
		updated.PayerID = original.PayerID
		updated.Status = original.Status

		if err := s.withdrawalRepo.Update(ctx, updated); err != nil {
			return err
		}
		saved = updated
		return nil
	})

	if err != nil {
		logger.ExitMethodWithError("withdrawalService.UpdateWithdrawal", err, "withdrawalID", withdrawalID)
		return nil, err
	}

	logger.ExitMethod("withdrawalService.UpdateWithdrawal", "withdrawalID", withdrawalID)
	return saved, nil
}

func (s *withdrawalService) DeleteWithdrawal(ctx context.Context, withdrawalID int64) error {
	logger.EnterMethod("withdrawalService.DeleteWithdrawal", "withdrawalID", withdrawalID)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.withdrawalRepo.GetByID(ctx, withdrawalID); err != nil {
			return err
		}
		return s.withdrawalRepo.Delete(ctx, withdrawalID)
	})

	if err != nil {
		logger.ExitMethodWithError("withdrawalService.DeleteWithdrawal", err, "withdrawalID", withdrawalID)
		return err
	}

	logger.ExitMethod("withdrawalService.DeleteWithdrawal", "withdrawalID", withdrawalID)
	return nil
}

func (s *withdrawalService) ProcessWithdrawal(ctx context.Context, withdrawalID int64) (*domain.Withdrawal, error) {
	logger.EnterMethod("withdrawalService.ProcessWithdrawal", "withdrawalID", withdrawalID)

	var processed *domain.Withdrawal
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		withdrawal, err := s.withdrawalRepo.GetByID(ctx, withdrawalID)
		if err != nil {
			return err
		}
		if withdrawal.Status != domain.TransactionStatusPending {
			return apperr.Conflictf("Withdrawal with Id (%d) has already been processed.", withdrawalID)
		}

		withdrawal.Status = domain.TransactionStatusCompleted
		if err := s.withdrawalRepo.Update(ctx, withdrawal); err != nil {
			return err
		}
		processed = withdrawal
		return nil
	})

	if err != nil {
		logger.ExitMethodWithError("withdrawalService.ProcessWithdrawal", err, "withdrawalID", withdrawalID)
		return nil, err
	}

	logger.ExitMethod("withdrawalService.ProcessWithdrawal", "withdrawalID", withdrawalID)
	return processed, nil
}

func (s *withdrawalService) verifyAccountExists(ctx context.Context, accountID int64) error {
	exists, err := s.accountRepo.Exists(ctx, accountID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundf("Account with Id (%d) not found.", accountID)
	}
	return nil
}
