package engine

import (
	"fmt"
	"sort"

	"github.com/finwise/advisor/internal/models"
	"github.com/finwise/advisor/internal/rules"
)

// MatchOptions carries caller-supplied signals the snapshot cannot
// derive on its own.
type MatchOptions struct {
	// Used80C is the amount already claimed under section 80C this year.
	// Unused headroom promotes tax-advantaged vehicles in the ranking.
	Used80C float64
}

// section80CCap mirrors the statutory 80C limit in the default slab
// table; the matcher only needs it as a headroom signal.
const section80CCap = 150000.0

// MatchSuggestions filters the catalog to vehicles compatible with the
// user's risk tier and annualized surplus capacity, then ranks them.
// NOT_READY users get an empty list, never an error.
func MatchSuggestions(catalog *rules.Catalog, snap models.FinancialSnapshot, readiness models.ReadinessResult, opts MatchOptions) []models.InvestmentSuggestion {
	allowed := allowedRiskLevels(snap, readiness)
	if len(allowed) == 0 {
		return nil
	}

	capacity := snap.MonthlySurplus * 12
	hasHeadroom := opts.Used80C < section80CCap

	type ranked struct {
		entry    models.InvestmentSuggestion
		declared int
	}
	var matched []ranked
	for i, e := range catalog.Entries {
		if !allowed[e.RiskLevel] {
			continue
		}
		if e.MinAmount > capacity {
			continue
		}
		matched = append(matched, ranked{entry: e, declared: i})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i].entry, matched[j].entry
		if hasHeadroom && a.TaxBenefit != b.TaxBenefit {
			return a.TaxBenefit
		}
		if a.ReturnTier != b.ReturnTier {
			return a.ReturnTier > b.ReturnTier
		}
		return matched[i].declared < matched[j].declared
	})

	if len(matched) > rules.MaxSuggestions {
		matched = matched[:rules.MaxSuggestions]
	}

	out := make([]models.InvestmentSuggestion, 0, len(matched))
	for _, m := range matched {
		s := m.entry
		s.Rationale = rationaleFor(s, snap, hasHeadroom)
		out = append(out, s)
	}
	return out
}

// allowedRiskLevels derives the user's risk tier from readiness status
// and emergency-fund cushion. Aggressive vehicles require both a full
// emergency fund and a strong savings rate.
func allowedRiskLevels(snap models.FinancialSnapshot, readiness models.ReadinessResult) map[string]bool {
	switch readiness.Status {
	case models.StatusReady:
		allowed := map[string]bool{
			models.RiskConservative: true,
			models.RiskModerate:     true,
		}
		if snap.EmergencyFundMonths >= rules.AggressiveMinFundMonths && snap.SavingsRate >= rules.AggressiveMinSavingsRate {
			allowed[models.RiskAggressive] = true
		}
		return allowed
	case models.StatusCaution:
		return map[string]bool{models.RiskConservative: true}
	default:
		return nil
	}
}

func rationaleFor(s models.InvestmentSuggestion, snap models.FinancialSnapshot, hasHeadroom bool) string {
	if s.TaxBenefit && hasHeadroom {
		return fmt.Sprintf("Fits your %s risk profile and uses unused %s deduction headroom.", s.RiskLevel, s.TaxSection)
	}
	return fmt.Sprintf("Fits your %s risk profile within a monthly surplus of %.0f.", s.RiskLevel, snap.MonthlySurplus)
}
