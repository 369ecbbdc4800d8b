package domain

// Customer owns accounts. The API only reads customers; creation and profile
// management belong to a separate onboarding system.
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
