package service

import (
	"banking-backoffice/internal/apperr"
	"banking-backoffice/internal/domain"
)

// validateBillCreation enforces the business preconditions for creating a
// bill. The caller has already verified the account exists; the remaining
// rules run in order and the first failure wins.
func validateBillCreation(accountID int64, req *domain.BillCreationRequest) error {
	if !req.Status.ValidForCreation() {
		return apperr.Conflictf("Bill status type (%s) is not valid for this operation.", req.Status)
	}

	if req.AccountID != accountID {
		return apperr.Conflictf("AccountId must match BillCreation Request's accountId.")
	}

	if req.Status == domain.BillStatusRecurring && req.RecurringDate == nil {
		return apperr.Conflictf("Reccuring date can not be null for Bill status (%s).", req.Status)
	}

	return nil
}

// validateBillUpdate enforces the immutability and transition rules for
// replacing a stored bill. It returns non-fatal warnings alongside success;
// the caller decides how to surface them. Warnings cover client-supplied
// values the system overwrites anyway, so they never reject the update.
func validateBillUpdate(billID int64, original, updated *domain.Bill) ([]string, error) {
	if updated.ID != billID {
		return nil, apperr.Conflictf("Updated billId must match previous billId.")
	}

	if !original.Status.Editable() {
		return nil, apperr.InvalidInputf("Can not update bill with status (%s).", updated.Status)
	}

	if updated.Nickname != original.Nickname {
		return nil, apperr.Conflictf("Updated nickname must match previous bill nickname.")
	}

	if updated.Payee != original.Payee {
		return nil, apperr.InvalidInputf("Can not update bill with different payee from original payee.")
	}

	if updated.CreationDate != original.CreationDate {
		return nil, apperr.Conflictf("Updated creation date must match previous bill creation date.")
	}

	if updated.PaymentDate != original.PaymentDate {
		return nil, apperr.Conflictf("Updated payment date must match previous bill payment date.")
	}

	if updated.Status == domain.BillStatusRecurring && updated.RecurringDate == nil {
		return nil, apperr.InvalidInputf("Can not update bill to recurring without specified recurring date.")
	}

	var warnings []string
	if (updated.Status == domain.BillStatusCanceled || updated.Status == domain.BillStatusCompleted) &&
		updated.UpcomingPaymentDate != nil {
		warnings = append(warnings, "Status for updated bill is either canceled or completed, and upcoming payment date is not null. This field should be left null for this action, and will be overwritten by the system.")
	}
	if recurringDateChanged(original.RecurringDate, updated.RecurringDate) && updated.UpcomingPaymentDate != nil {
		warnings = append(warnings, "Recurring date is different in updated bill compared to original, and upcoming payment date is not null. This field should be left null for this action, and will be overwritten by the system.")
	}

	return warnings, nil
}

func recurringDateChanged(original, updated *int32) bool {
	switch {
	case original == nil && updated == nil:
		return false
	case original == nil || updated == nil:
		return true
	default:
		return *original != *updated
	}
}
