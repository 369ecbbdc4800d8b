package domain

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCanceled  TransactionStatus = "CANCELED"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
)

type TransactionMedium string

const (
	TransactionMediumBalance TransactionMedium = "BALANCE"
	TransactionMediumRewards TransactionMedium = "REWARDS"
)

// Deposit is money moving into an account. PayeeID is the receiving account.
type Deposit struct {
	ID              int64             `json:"id" validate:"required"`
	Type            TransactionType   `json:"type"`
	TransactionDate string            `json:"transaction_date"`
	Status          TransactionStatus `json:"status"`
	PayeeID         int64             `json:"payee_id"`
	Medium          TransactionMedium `json:"medium" validate:"required,oneof=BALANCE REWARDS"`
	Amount          float64           `json:"amount" validate:"required,gt=0"`
	Description     string            `json:"description"`
}

// Withdrawal is money moving out of an account. PayerID is the paying account.
type Withdrawal struct {
	ID              int64             `json:"id" validate:"required"`
	Type            TransactionType   `json:"type"`
	TransactionDate string            `json:"transaction_date"`
	Status          TransactionStatus `json:"status"`
	PayerID         int64             `json:"payer_id"`
	Medium          TransactionMedium `json:"medium" validate:"required,oneof=BALANCE REWARDS"`
	Amount          float64           `json:"amount" validate:"required,gt=0"`
	Description     string            `json:"description"`
}

// DepositCreationRequest is the client payload for creating a deposit.
type DepositCreationRequest struct {
	Medium      TransactionMedium `json:"medium" validate:"required,oneof=BALANCE REWARDS"`
	Amount      float64           `json:"amount" validate:"required,gt=0"`
	Description string            `json:"description"`
}

// WithdrawalCreationRequest is the client payload for creating a withdrawal.
type WithdrawalCreationRequest struct {
	Medium      TransactionMedium `json:"medium" validate:"required,oneof=BALANCE REWARDS"`
	Amount      float64           `json:"amount" validate:"required,gt=0"`
	Description string            `json:"description"`
}
