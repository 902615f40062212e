package rules

// Readiness rule thresholds and weights. The scorer adds the weight of
// every passed rule, so weights must total 100.
const (
	EmergencyFundMinMonths = 6.0
	EMIToIncomeMaxPercent  = 40.0
	SavingsRateMinPercent  = 15.0

	WeightEmergencyFund = 30
	WeightEMIRatio      = 25
	WeightSavingsRate   = 25
	WeightNoDefaults    = 20

	// Score tier boundaries
	ScoreReadyThreshold   = 70
	ScoreCautionThreshold = 40

	// Blocker severity by rule weight
	SeverityHighWeight   = 25
	SeverityMediumWeight = 15
)

// Aggressive-suggestion gate (matcher): READY users additionally need
// this much cushion before aggressive vehicles are offered.
const (
	AggressiveMinFundMonths  = 6.0
	AggressiveMinSavingsRate = 20.0
	MaxSuggestions           = 5
)

// Repayment planner: annual rates above this are flagged for priority
// payoff rather than investing the surplus.
const HighInterestThreshold = 12.0
