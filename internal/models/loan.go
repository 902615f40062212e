package models

// Loan statuses. Only active loans participate in repayment planning.
const (
	LoanActive    = "active"
	LoanClosed    = "closed"
	LoanDefaulted = "defaulted"
)

// Loan represents a loan record, read-only to the engine
type Loan struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	LoanType          string  `json:"loan_type"`
	PrincipalAmount   float64 `json:"principal_amount"`
	OutstandingAmount float64 `json:"outstanding_amount"`
	InterestRate      float64 `json:"interest_rate"` // annual, percent
	TenureMonths      int     `json:"tenure_months"`
	EMIAmount         float64 `json:"emi_amount"`
	Status            string  `json:"status"`
}
