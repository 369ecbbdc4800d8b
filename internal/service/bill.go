package service

import (
	"context"

	"banking-backoffice/internal/apperr"
	"banking-backoffice/internal/domain"
	"banking-backoffice/internal/logger"
	"banking-backoffice/internal/repository"
	"banking-backoffice/internal/utils"
)

type billService struct {
	billRepo     repository.BillRepository
	accountRepo  repository.AccountRepository
	customerRepo repository.CustomerRepository
	tx           repository.TxRunner
}

func NewBillService(
	billRepo repository.BillRepository,
	accountRepo repository.AccountRepository,
	customerRepo repository.CustomerRepository,
	tx repository.TxRunner,
) BillService {
	return &billService{
		billRepo:     billRepo,
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		tx:           tx,
	}
}

func (s *billService) GetBillsForAccount(ctx context.Context, accountID int64) ([]domain.Bill, error) {
	logger.EnterMethod("billService.GetBillsForAccount", "accountID", accountID)

	if err := s.verifyAccountExists(ctx, accountID); err != nil {
		logger.ExitMethodWithError("billService.GetBillsForAccount", err, "accountID", accountID)
		return nil, err
	}

	bills, err := s.billRepo.ListByAccount(ctx, accountID)
	if err != nil {
		logger.ExitMethodWithError("billService.GetBillsForAccount", err, "accountID", accountID)
		return nil, err
	}

	logger.ExitMethod("billService.GetBillsForAccount", "accountID", accountID, "count", len(bills))
	return bills, nil
}

func (s *billService) GetBill(ctx context.Context, billID int64) (*domain.Bill, error) {
	logger.EnterMethod("billService.GetBill", "billID", billID)

	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		logger.ExitMethodWithError("billService.GetBill", err, "billID", billID)
		return nil, err
	}

	logger.ExitMethod("billService.GetBill", "billID", billID)
	return bill, nil
}

func (s *billService) GetBillsForCustomer(ctx context.Context, customerID int64) ([]domain.Bill, error) {
	logger.EnterMethod("billService.GetBillsForCustomer", "customerID", customerID)

	if err := s.verifyCustomerExists(ctx, customerID); err != nil {
		logger.ExitMethodWithError("billService.GetBillsForCustomer", err, "customerID", customerID)
		return nil, err
	}

	accounts, err := s.accountRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		logger.ExitMethodWithError("billService.GetBillsForCustomer", err, "customerID", customerID)
		return nil, err
	}

	allBills := []domain.Bill{}
	for _, account := range accounts {
		bills, err := s.billRepo.ListByAccount(ctx, account.ID)
		if err != nil {
			logger.ExitMethodWithError("billService.GetBillsForCustomer", err, "customerID", customerID, "accountID", account.ID)
			return nil, err
		}
		allBills = append(allBills, bills...)
	}

	logger.ExitMethod("billService.GetBillsForCustomer", "customerID", customerID, "count", len(allBills))
	return allBills, nil
}

func (s *billService) CreateBill(ctx context.Context, accountID int64, req *domain.BillCreationRequest) (*domain.Bill, error) {
	logger.EnterMethod("billService.CreateBill", "accountID", accountID, "status", req.Status)

	var created *domain.Bill
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.verifyAccountExists(ctx, accountID); err != nil {
			return err
		}
		if err := validateBillCreation(accountID, req); err != nil {
			return err
		}

		today := utils.Today()
		bill := &domain.Bill{
			Status:        req.Status,
			Payee:         req.Payee,
			Nickname:      req.Nickname,
			CreationDate:  today.String(),
			PaymentDate:   domain.PaymentDateAwaiting,
			PaymentAmount: req.PaymentAmount,
			AccountID:     accountID,
		}
		if req.Status == domain.BillStatusRecurring {
			bill.RecurringDate = req.RecurringDate
			upcoming := utils.NextPaymentDate(int(*req.RecurringDate), today).String()
			bill.UpcomingPaymentDate = &upcoming
		}

		if err := s.billRepo.Create(ctx, bill); err != nil {
			return err
		}
		created = bill
		return nil
	})

	if err != nil {
		logger.ExitMethodWithError("billService.CreateBill", err, "accountID", accountID)
		return nil, err
	}

	logger.Info("Created the bill and added it to the account", "billID", created.ID, "accountID", accountID)
	logger.ExitMethod("billService.CreateBill", "billID", created.ID)
	return created, nil
}

func (s *billService) UpdateBill(ctx context.Context, billID int64, updated *domain.Bill) (*domain.Bill, error) {
	logger.EnterMethod("billService.UpdateBill", "billID", billID, "status", updated.Status)

	var saved *domain.Bill
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		original, err := s.billRepo.GetByID(ctx, billID)
		if err != nil {
			return err
		}

		warnings, err := validateBillUpdate(billID, original, updated)
		if err != nil {
			return err
		}
		for _, warning := range warnings {
			logger.Warn(warning, "billID", billID)
		}

		if err := s.applyDerivedFields(updated); err != nil {
			return err
		}

		if err := s.billRepo.Update(ctx, updated); err != nil {
			return err
		}
		saved = updated
		return nil
	})

	if err != nil {
		logger.ExitMethodWithError("billService.UpdateBill", err, "billID", billID)
		return nil, err
	}

	logger.Info("Accepted Bill modification", "billID", billID)
	logger.ExitMethod("billService.UpdateBill", "billID", billID)
	return saved, nil
}

// applyDerivedFields rewrites the system-owned fields of a validated update:
// the next payment date for recurring bills, the cancellation messages for
// canceled ones. Client-supplied values for these fields are never trusted.
func (s *billService) applyDerivedFields(bill *domain.Bill) error {
	switch bill.Status {
	case domain.BillStatusRecurring:
		creationDate, err := utils.ParseDate(bill.CreationDate)
		if err != nil {
			return apperr.InvalidInputf("Can not parse bill creation date (%s).", bill.CreationDate)
		}
		upcoming := utils.NextPaymentDate(int(*bill.RecurringDate), creationDate).String()
		bill.UpcomingPaymentDate = &upcoming

	case domain.BillStatusCanceled:
		upcoming := domain.UpcomingPaymentCanceled
		bill.UpcomingPaymentDate = &upcoming
		if bill.PaymentDate != domain.PaymentDateAwaiting {
			bill.PaymentDate = domain.PaymentDateCanceledRefund
		} else {
			bill.PaymentDate = domain.PaymentDateCanceledNone
		}
	}
	return nil
}

func (s *billService) DeleteBill(ctx context.Context, billID int64) error {
	logger.EnterMethod("billService.DeleteBill", "billID", billID)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.billRepo.GetByID(ctx, billID); err != nil {
			return err
		}
		return s.billRepo.Delete(ctx, billID)
	})

	if err != nil {
		logger.ExitMethodWithError("billService.DeleteBill", err, "billID", billID)
		return err
	}

	logger.Info("Bill deleted successfully", "billID", billID)
	logger.ExitMethod("billService.DeleteBill", "billID", billID)
	return nil
}

func (s *billService) verifyAccountExists(ctx context.Context, accountID int64) error {
	exists, err := s.accountRepo.Exists(ctx, accountID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundf("Account with Id (%d) not found.", accountID)
	}
	return nil
}

func (s *billService) verifyCustomerExists(ctx context.Context, customerID int64) error {
	exists, err := s.customerRepo.Exists(ctx, customerID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundf("Customer with Id (%d) not found.", customerID)
	}
	return nil
}
