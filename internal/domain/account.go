package domain

type AccountType string

const (
	AccountTypeChecking AccountType = "CHECKING"
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypeCredit   AccountType = "CREDIT"
)

// Account is a customer-owned account bills and transactions attach to.
type Account struct {
	ID         int64       `json:"id"`
	Type       AccountType `json:"type" validate:"required,oneof=CHECKING SAVINGS CREDIT"`
	Nickname   string      `json:"nickname" validate:"required,min=3,max=20"`
	Rewards    int32       `json:"rewards" validate:"min=0"`
	Balance    float64     `json:"balance" validate:"min=0"`
	CustomerID int64       `json:"customer_id"`
}
