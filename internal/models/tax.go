package models

// Tax regimes
const (
	RegimeOld = "old"
	RegimeNew = "new"
)

// IncomeInput is the income breakdown for tax computation
type IncomeInput struct {
	Salary            float64 `json:"salary"`
	Rental            float64 `json:"rental"`
	Business          float64 `json:"business"`
	CapitalGainsShort float64 `json:"capital_gains_short"`
	CapitalGainsLong  float64 `json:"capital_gains_long"`
	Other             float64 `json:"other"`
}

// Gross returns total income across all sources
func (in IncomeInput) Gross() float64 {
	return in.Salary + in.Rental + in.Business + in.CapitalGainsShort + in.CapitalGainsLong + in.Other
}

// DeductionInput is the set of claimed deductions by section
type DeductionInput struct {
	Section80C       float64 `json:"section_80c"`
	Section80D       float64 `json:"section_80d"`
	Section80G       float64 `json:"section_80g"`
	Section80E       float64 `json:"section_80e"`
	Section80CCD1B   float64 `json:"section_80ccd_1b"`
	HomeLoanInterest float64 `json:"home_loan_interest"`
}

// SlabBreakdown is the tax contribution of a single bracket
type SlabBreakdown struct {
	Slab         string  `json:"slab"`
	IncomeInSlab float64 `json:"income_in_slab"`
	Rate         float64 `json:"rate"` // percent
	Tax          float64 `json:"tax"`
}

// TaxEstimate is the complete liability computation under one regime.
// It is never mutated after creation.
type TaxEstimate struct {
	Regime          string          `json:"regime"`
	GrossIncome     float64         `json:"gross_income"`
	TotalDeductions float64         `json:"total_deductions"`
	TaxableIncome   float64         `json:"taxable_income"`
	SlabBreakdown   []SlabBreakdown `json:"slab_breakdown"`
	Rebate87A       float64         `json:"rebate_87a"`
	Surcharge       float64         `json:"surcharge"`
	TaxBeforeCess   float64         `json:"tax_before_cess"`
	Cess            float64         `json:"cess"`
	TotalTax        float64         `json:"total_tax"`
	EffectiveRate   float64         `json:"effective_rate"` // percent of gross
}

// TaxComparison pairs the two regime estimates with a recommendation
type TaxComparison struct {
	OldRegime   TaxEstimate `json:"old_regime"`
	NewRegime   TaxEstimate `json:"new_regime"`
	Recommended string      `json:"recommended"`
	Savings     float64     `json:"savings"`
	Explanation string      `json:"explanation"`
}

// ITRRecommendation names the tax form a filer should use and why
type ITRRecommendation struct {
	Form        string `json:"form"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
}

// DeductionGap reports unused room under one deduction section
type DeductionGap struct {
	Section          string   `json:"section"`
	Current          float64  `json:"current"`
	Limit            float64  `json:"limit"`
	Gap              float64  `json:"gap"`
	Options          []string `json:"options"`
	PotentialSavings float64  `json:"potential_savings"`
}
