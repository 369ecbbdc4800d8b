package domain

type BillStatus string

const (
	BillStatusPending   BillStatus = "PENDING"
	BillStatusRecurring BillStatus = "RECURRING"
	BillStatusCanceled  BillStatus = "CANCELED"
	BillStatusCompleted BillStatus = "COMPLETED"
)

// Payment date messages the system writes into bills. PaymentDateAwaiting is
// the unpaid sentinel; the remaining values are produced by cancellation.
const (
	PaymentDateAwaiting       = "Awaiting payment."
	PaymentDateCanceledRefund = "Canceled bill. Already payed and requires refund."
	PaymentDateCanceledNone   = "Canceled bill. No payment needed"
	UpcomingPaymentCanceled   = "Cancelled Bill. No upcoming payment."
)

// Valid reports whether s is one of the known bill statuses.
func (s BillStatus) Valid() bool {
	switch s {
	case BillStatusPending, BillStatusRecurring, BillStatusCanceled, BillStatusCompleted:
		return true
	}
	return false
}

// ValidForCreation reports whether a new bill may be created in this status.
func (s BillStatus) ValidForCreation() bool {
	return s == BillStatusPending || s == BillStatusRecurring
}

// Editable reports whether a bill currently in this status may still be
// updated. Canceled and completed bills are terminal.
func (s BillStatus) Editable() bool {
	return s == BillStatusPending || s == BillStatusRecurring
}

// Bill is a scheduled or one-time payment obligation tied to an Account.
// CreationDate, PaymentDate and UpcomingPaymentDate are stored as
// yyyy-mm-dd strings; the two payment fields may instead hold one of the
// sentinel messages above.
type Bill struct {
	ID                  int64      `json:"id" validate:"required"`
	Status              BillStatus `json:"status" validate:"required"`
	Payee               string     `json:"payee" validate:"required"`
	Nickname            string     `json:"nickname" validate:"required,min=3,max=20"`
	CreationDate        string     `json:"creation_date" validate:"required"`
	PaymentDate         string     `json:"payment_date" validate:"required"`
	RecurringDate       *int32     `json:"recurring_date,omitempty" validate:"omitempty,min=1,max=31"`
	UpcomingPaymentDate *string    `json:"upcoming_payment_date,omitempty"`
	PaymentAmount       float64    `json:"payment_amount" validate:"required,gt=0"`
	AccountID           int64      `json:"account_id" validate:"required"`
}

// BillCreationRequest is the client payload for creating a new bill.
type BillCreationRequest struct {
	Status        BillStatus `json:"status" validate:"required"`
	Payee         string     `json:"payee" validate:"required"`
	Nickname      string     `json:"nickname" validate:"required,min=3,max=20"`
	RecurringDate *int32     `json:"recurring_date,omitempty" validate:"omitempty,min=1,max=31"`
	PaymentAmount float64    `json:"payment_amount" validate:"required,gt=0"`
	AccountID     int64      `json:"account_id" validate:"required"`
}
