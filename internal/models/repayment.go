package models

// RepaymentPlanStep is one simulated extra-payment event. Steps are
// consumed top-to-bottom by the caller.
type RepaymentPlanStep struct {
	Step              int     `json:"step"`
	LoanID            int64   `json:"loan_id"`
	LoanName          string  `json:"loan_name"`
	SuggestedPayment  float64 `json:"suggested_payment"`
	InterestSaved     float64 `json:"interest_saved"`
	MonthsSaved       int     `json:"months_saved"`
	NewOutstanding    float64 `json:"new_outstanding"`
	RecommendedAction string  `json:"recommended_action"`
	Explanation       string  `json:"explanation"`
	NonAmortizing     bool    `json:"non_amortizing,omitempty"`
}

// RepaymentPlan is the full avalanche plan for one invocation
type RepaymentPlan struct {
	Steps              []RepaymentPlanStep `json:"steps"`
	Summary            string              `json:"summary"`
	TotalInterestSaved float64             `json:"total_interest_saved"`
}
