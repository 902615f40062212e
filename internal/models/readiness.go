package models

// Readiness status tiers
const (
	StatusReady    = "READY"
	StatusCaution  = "CAUTION"
	StatusNotReady = "NOT_READY"
)

// Blocker severities
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// ReadinessBlocker describes one failed readiness rule
type ReadinessBlocker struct {
	Rule        string  `json:"rule"`
	Description string  `json:"description"`
	Current     float64 `json:"current"`
	Threshold   float64 `json:"threshold"`
	Severity    string  `json:"severity"`
	Message     string  `json:"message"`
}

// ReadinessResult is the outcome of the investment readiness evaluation
type ReadinessResult struct {
	Status          string             `json:"status"`
	Score           int                `json:"score"`
	Blockers        []ReadinessBlocker `json:"blockers"`
	Recommendations []string           `json:"recommendations"`
}
