package models

// Vehicle types
const (
	VehicleEquity    = "equity"
	VehicleDebt      = "debt"
	VehicleHybrid    = "hybrid"
	VehicleTaxSaving = "tax_saving"
)

// Risk levels
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

// InvestmentSuggestion is one catalog archetype matched to the user.
// Catalog entries are immutable reference data; the engine never mutates
// them, it only filters and orders copies.
type InvestmentSuggestion struct {
	ID           string   `json:"id" toml:"id"`
	Name         string   `json:"name" toml:"name"`
	Type         string   `json:"type" toml:"type"`
	RiskLevel    string   `json:"risk_level" toml:"risk_level"`
	MinAmount    float64  `json:"min_amount" toml:"min_amount"`
	LockInMonths int      `json:"lock_in_months" toml:"lock_in_months"`
	TaxBenefit   bool     `json:"tax_benefit" toml:"tax_benefit"`
	TaxSection   string   `json:"tax_section,omitempty" toml:"tax_section"`
	ReturnTier   int      `json:"return_tier" toml:"return_tier"` // 1 (lowest expected return) .. 3
	SuitableFor  []string `json:"suitable_for" toml:"suitable_for"`
	Rationale    string   `json:"rationale,omitempty" toml:"-"`
}
