package models

// Transaction types recognized by the engine. Any other value is ignored
// during aggregation.
const (
	TxnIncome  = "income"
	TxnExpense = "expense"
)

// Transaction represents a single ledger entry
type Transaction struct {
	ID       int64   `json:"id"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Date     string  `json:"date"` // Format: YYYY-MM-DD
}

// SavingsMonth is one entry of the trailing savings-history series
type SavingsMonth struct {
	Month       string  `json:"month"` // Format: YYYY-MM
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Transferred float64 `json:"transferred"` // amount moved to savings/investments
}

// Holding represents an investment holding, read-only to the engine
type Holding struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	HoldingType  string  `json:"holding_type"`
	CurrentValue float64 `json:"current_value"`
}
