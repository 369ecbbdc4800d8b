package jobs

import (
	"context"

	"banking-backoffice/internal/domain"
	"banking-backoffice/internal/logger"
	"banking-backoffice/internal/utils"
)

// RefreshUpcomingPaymentDates rolls forward the upcoming payment date of every
// recurring bill whose scheduled date has already passed.
func (jr *JobRunner) RefreshUpcomingPaymentDates() {
	jr.runWithRecovery("RefreshUpcomingPaymentDates", func() {
		ctx := context.Background()

		bills, err := jr.store.BillRepository.ListByStatus(ctx, domain.BillStatusRecurring)
		if err != nil {
			logger.Error("Failed to list recurring bills", "error", err)
			return
		}

		today := utils.Today()
		refreshed := 0
		for i := range bills {
			bill := &bills[i]
			if bill.RecurringDate == nil {
				logger.Warn("Recurring bill has no recurring date, skipping", "bill_id", bill.ID)
				continue
			}

			if bill.UpcomingPaymentDate != nil {
				upcoming, err := utils.ParseDate(*bill.UpcomingPaymentDate)
				if err == nil && !upcoming.Before(today) {
					continue
				}
			}

			next := utils.NextOccurrence(int(*bill.RecurringDate), today).String()
			bill.UpcomingPaymentDate = &next
			if err := jr.store.BillRepository.Update(ctx, bill); err != nil {
				logger.Error("Failed to refresh upcoming payment date",
					"bill_id", bill.ID,
					"error", err)
				continue
			}
			refreshed++
		}

		logger.Info("Refreshed upcoming payment dates", "total", len(bills), "refreshed", refreshed)
	})
}
