package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/finwise/advisor/internal/models"
	"github.com/finwise/advisor/internal/rules"
)

// readinessRule is one weighted gate. Declaration order in readinessRules
// is the final blocker tiebreaker, so the order below is a contract.
type readinessRule struct {
	id             string
	description    string
	weight         int
	threshold      float64
	current        func(snap models.FinancialSnapshot, loans []models.Loan) float64
	passed         func(current, threshold float64) bool
	message        func(current float64) string
	recommendation string
}

var readinessRules = []readinessRule{
	{
		id:          "R1",
		description: "Emergency Fund Coverage",
		weight:      rules.WeightEmergencyFund,
		threshold:   rules.EmergencyFundMinMonths,
		current: func(s models.FinancialSnapshot, _ []models.Loan) float64 {
			return s.EmergencyFundMonths
		},
		passed: func(c, t float64) bool { return c >= t },
		message: func(c float64) string {
			return fmt.Sprintf("Emergency fund covers %.1f months of expenses (target: %.0f months).", c, rules.EmergencyFundMinMonths)
		},
		recommendation: "Build an emergency fund covering 6 months of essential expenses before investing.",
	},
	{
		id:          "R2",
		description: "EMI-to-Income Ratio",
		weight:      rules.WeightEMIRatio,
		threshold:   rules.EMIToIncomeMaxPercent,
		current: func(s models.FinancialSnapshot, _ []models.Loan) float64 {
			return s.EMIToIncomeRatio
		},
		passed: func(c, t float64) bool { return c <= t },
		message: func(c float64) string {
			return fmt.Sprintf("EMI burden at %.1f%% of income (max: %.0f%%). Reduce debt first.", c, rules.EMIToIncomeMaxPercent)
		},
		recommendation: "Reduce EMI burden below 40% of income before taking on investment risk.",
	},
	{
		id:          "R3",
		description: "Savings Rate",
		weight:      rules.WeightSavingsRate,
		threshold:   rules.SavingsRateMinPercent,
		current: func(s models.FinancialSnapshot, _ []models.Loan) float64 {
			return s.SavingsRate
		},
		passed: func(c, t float64) bool { return c >= t },
		message: func(c float64) string {
			return fmt.Sprintf("Savings rate at %.1f%% (target: %.0f%%). Low investable surplus.", c, rules.SavingsRateMinPercent)
		},
		recommendation: "Increase savings rate by trimming discretionary spending; target at least 15% of income.",
	},
	{
		id:          "R4",
		description: "No Defaulted Loans",
		weight:      rules.WeightNoDefaults,
		threshold:   0,
		current: func(_ models.FinancialSnapshot, loans []models.Loan) float64 {
			n := 0
			for _, l := range loans {
				if l.Status == models.LoanDefaulted {
					n++
				}
			}
			return float64(n)
		},
		passed: func(c, t float64) bool { return c == 0 },
		message: func(c float64) string {
			return fmt.Sprintf("%.0f defaulted loan(s) on record. Regularize repayments before investing.", c)
		},
		recommendation: "Settle defaulted loans first; defaults undermine both credit access and investment capacity.",
	},
}

// ScoreReadiness evaluates the snapshot against the weighted rule set.
// The score is the sum of the weights of passed rules (0-100). Blockers
// are ordered by severity, then by relative shortfall descending, then
// by rule declaration order.
func ScoreReadiness(snap models.FinancialSnapshot, loans []models.Loan) models.ReadinessResult {
	score := 0
	var blockers []models.ReadinessBlocker
	shortfalls := make(map[string]float64)
	var recs []string

	for _, r := range readinessRules {
		current := r.current(snap, loans)
		if r.passed(current, r.threshold) {
			score += r.weight
			continue
		}
		blockers = append(blockers, models.ReadinessBlocker{
			Rule:        r.id,
			Description: r.description,
			Current:     current,
			Threshold:   r.threshold,
			Severity:    severityForWeight(r.weight),
			Message:     r.message(current),
		})
		shortfalls[r.id] = relativeShortfall(current, r.threshold)
		recs = append(recs, r.recommendation)
	}

	// Stable sort keeps declaration order as the final tiebreaker.
	sort.SliceStable(blockers, func(i, j int) bool {
		ri, rj := severityRank(blockers[i].Severity), severityRank(blockers[j].Severity)
		if ri != rj {
			return ri > rj
		}
		return shortfalls[blockers[i].Rule] > shortfalls[blockers[j].Rule]
	})

	status := statusForScore(score)
	if status == models.StatusReady {
		recs = append(recs, "Your finances are in good shape. Consider starting with low-risk options like PPF, index funds, or SIPs.")
	}

	return models.ReadinessResult{
		Status:          status,
		Score:           score,
		Blockers:        blockers,
		Recommendations: recs,
	}
}

// statusForScore maps a 0-100 score to a readiness tier.
func statusForScore(score int) string {
	switch {
	case score >= rules.ScoreReadyThreshold:
		return models.StatusReady
	case score >= rules.ScoreCautionThreshold:
		return models.StatusCaution
	default:
		return models.StatusNotReady
	}
}

func severityForWeight(weight int) string {
	switch {
	case weight >= rules.SeverityHighWeight:
		return models.SeverityHigh
	case weight >= rules.SeverityMediumWeight:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

func severityRank(severity string) int {
	switch severity {
	case models.SeverityHigh:
		return 3
	case models.SeverityMedium:
		return 2
	default:
		return 1
	}
}

// relativeShortfall measures how far a rule is from being met, relative
// to its threshold. A violated zero-threshold rule is maximally unmet.
func relativeShortfall(current, threshold float64) float64 {
	if threshold == 0 {
		return 1
	}
	return math.Abs(threshold-current) / threshold
}
