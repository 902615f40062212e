package models

// FinancialSnapshot is the normalized metrics object computed from raw
// ledger data. It is ephemeral: built fresh per request, never persisted.
// SavingsRate and EMIToIncomeRatio are percentages; both are guarded
// against zero income and can never be NaN or infinite.
type FinancialSnapshot struct {
	MonthlyIncome           float64 `json:"monthly_income"`
	MonthlyExpenses         float64 `json:"monthly_expenses"`
	MonthlySurplus          float64 `json:"monthly_surplus"`
	SavingsRate             float64 `json:"savings_rate"`
	EmergencyFundMonths     float64 `json:"emergency_fund_months"`
	TotalDebt               float64 `json:"total_debt"`
	MonthlyEMI              float64 `json:"monthly_emi"`
	EMIToIncomeRatio        float64 `json:"emi_to_income_ratio"`
	IdleCash                float64 `json:"idle_cash"`
	TotalInvestments        float64 `json:"total_investments"`
	ConsistentSavingsMonths int     `json:"consistent_savings_months"`
}

// LedgerInput bundles the raw records a snapshot is built from
type LedgerInput struct {
	Transactions   []Transaction  `json:"transactions"`
	Loans          []Loan         `json:"loans"`
	Holdings       []Holding      `json:"holdings"`
	SavingsHistory []SavingsMonth `json:"savings_history"`
}
