package engine

import (
	"fmt"
	"sort"

	"github.com/finwise/advisor/internal/models"
	"github.com/finwise/advisor/internal/rules"
)

// EstimateTax computes liability under one regime: deductions, slab-wise
// tax, section 87A rebate, surcharge, then cess. The result is a value;
// it is never mutated after return.
func EstimateTax(table *rules.SlabTable, regime string, income models.IncomeInput, ded models.DeductionInput) models.TaxEstimate {
	var sched rules.RegimeSchedule
	if regime == models.RegimeOld {
		sched = table.Old
	} else {
		sched = table.New
	}

	gross := income.Gross()
	salaried := income.Salary > 0

	totalDeductions := 0.0
	if salaried {
		totalDeductions = sched.StandardDeduction
	}
	if regime == models.RegimeOld {
		// Old regime: sum eligible sections up to their statutory caps.
		// New regime allows only the standard deduction.
		totalDeductions += cappedDeduction(table, "80C", ded.Section80C)
		totalDeductions += cappedDeduction(table, "80D", ded.Section80D)
		totalDeductions += cappedDeduction(table, "80CCD(1B)", ded.Section80CCD1B)
		totalDeductions += cappedDeduction(table, "24(b)", ded.HomeLoanInterest)
		totalDeductions += cappedDeduction(table, "80E", ded.Section80E)
		totalDeductions += cappedDeduction(table, "80G", ded.Section80G)
	}

	taxable := gross - totalDeductions
	if taxable < 0 {
		taxable = 0
	}

	slabTax, breakdown := computeSlabTax(taxable, sched.Slabs)

	rebate := 0.0
	if taxable <= sched.RebateLimit {
		rebate = slabTax
		if rebate > sched.RebateMax {
			rebate = sched.RebateMax
		}
	}
	afterRebate := slabTax - rebate
	if afterRebate < 0 {
		afterRebate = 0
	}

	surcharge := 0.0
	for _, band := range table.Surcharge {
		if taxable > band.Above {
			surcharge = roundCurrency(afterRebate * band.Rate)
			break
		}
	}

	beforeCess := afterRebate + surcharge
	cess := roundCurrency(beforeCess * table.CessRate)
	total := roundCurrency(beforeCess + cess)

	return models.TaxEstimate{
		Regime:          regime,
		GrossIncome:     gross,
		TotalDeductions: totalDeductions,
		TaxableIncome:   taxable,
		SlabBreakdown:   breakdown,
		Rebate87A:       rebate,
		Surcharge:       surcharge,
		TaxBeforeCess:   roundCurrency(beforeCess),
		Cess:            cess,
		TotalTax:        total,
		EffectiveRate:   roundTo(safeDiv(total, gross)*100, 2),
	}
}

// computeSlabTax walks the progressive brackets: each slab taxes the
// income between its lower bound (previous slab's limit) and its upper
// bound at the slab rate.
func computeSlabTax(taxable float64, slabs []rules.Slab) (float64, []models.SlabBreakdown) {
	total := 0.0
	var breakdown []models.SlabBreakdown
	remaining := taxable
	prev := 0.0

	for _, s := range slabs {
		if remaining <= 0 {
			break
		}
		var inSlab float64
		var label string
		if s.UpTo == 0 {
			inSlab = remaining
			label = fmt.Sprintf("Above %.0f", prev)
		} else {
			inSlab = s.UpTo - prev
			if inSlab > remaining {
				inSlab = remaining
			}
			if prev == 0 {
				label = fmt.Sprintf("Up to %.0f", s.UpTo)
			} else {
				label = fmt.Sprintf("%.0f - %.0f", prev, s.UpTo)
			}
			prev = s.UpTo
		}

		tax := roundCurrency(inSlab * s.Rate)
		total += tax
		remaining -= inSlab
		breakdown = append(breakdown, models.SlabBreakdown{
			Slab:         label,
			IncomeInSlab: roundCurrency(inSlab),
			Rate:         s.Rate * 100,
			Tax:          tax,
		})
	}
	return roundCurrency(total), breakdown
}

func cappedDeduction(table *rules.SlabTable, section string, claimed float64) float64 {
	if claimed <= 0 {
		return 0
	}
	c, ok := table.CapFor(section)
	if !ok {
		return 0
	}
	if c.Limit > 0 && claimed > c.Limit {
		return c.Limit
	}
	return claimed
}

// CompareTaxRegimes produces both estimates and recommends the cheaper
// regime. A tie resolves to the new regime for simpler compliance.
func CompareTaxRegimes(table *rules.SlabTable, income models.IncomeInput, ded models.DeductionInput) models.TaxComparison {
	oldEst := EstimateTax(table, models.RegimeOld, income, ded)
	newEst := EstimateTax(table, models.RegimeNew, income, ded)

	recommended := recommendRegime(oldEst.TotalTax, newEst.TotalTax)
	savings := oldEst.TotalTax - newEst.TotalTax
	if savings < 0 {
		savings = -savings
	}

	var explanation string
	if recommended == models.RegimeOld {
		explanation = fmt.Sprintf("Old regime saves %.0f because deductions of %.0f reduce taxable income enough to beat the new regime's lower rates.",
			savings, oldEst.TotalDeductions)
	} else {
		explanation = fmt.Sprintf("New regime saves %.0f due to lower slab rates; deductions of %.0f do not offset the rate benefit.",
			savings, oldEst.TotalDeductions)
	}

	return models.TaxComparison{
		OldRegime:   oldEst,
		NewRegime:   newEst,
		Recommended: recommended,
		Savings:     roundCurrency(savings),
		Explanation: explanation,
	}
}

// recommendRegime picks the regime with strictly lower liability; the
// new regime wins ties.
func recommendRegime(oldTax, newTax float64) string {
	if oldTax < newTax {
		return models.RegimeOld
	}
	return models.RegimeNew
}

// RecommendITRForm walks a fixed-priority rule tree and returns the
// first matching form with the reason that triggered it.
func RecommendITRForm(table *rules.SlabTable, income models.IncomeInput) models.ITRRecommendation {
	gross := income.Gross()
	switch {
	case income.Business > 0:
		return models.ITRRecommendation{
			Form:        "ITR-3",
			Reason:      "Business or profession income present",
			Description: "ITR-3 covers individuals with income from business or profession.",
		}
	case income.CapitalGainsShort > 0 || income.CapitalGainsLong > 0:
		return models.ITRRecommendation{
			Form:        "ITR-2",
			Reason:      "Capital gains present",
			Description: "ITR-2 covers individuals with capital gains and no business income.",
		}
	case gross > table.HighIncomeITR:
		return models.ITRRecommendation{
			Form:        "ITR-2",
			Reason:      fmt.Sprintf("Total income above %.0f", table.HighIncomeITR),
			Description: "High-income filers fall outside the simplified ITR-1 scope.",
		}
	case income.Rental > table.RentalITRLimit:
		return models.ITRRecommendation{
			Form:        "ITR-2",
			Reason:      fmt.Sprintf("Rental income above %.0f", table.RentalITRLimit),
			Description: "Substantial house-property income requires ITR-2.",
		}
	default:
		return models.ITRRecommendation{
			Form:        "ITR-1",
			Reason:      "Salary and simple income sources only",
			Description: "ITR-1 (Sahaj) covers salaried individuals with basic income sources.",
		}
	}
}

// SuggestDeductions reports unused room under each capped old-regime
// section, with an estimated tax saving at the filer's marginal rate.
func SuggestDeductions(table *rules.SlabTable, income models.IncomeInput, ded models.DeductionInput) []models.DeductionGap {
	gross := income.Gross()

	var marginal float64
	switch {
	case gross > 1000000:
		marginal = 0.30
	case gross > 500000:
		marginal = 0.20
	default:
		marginal = 0.05
	}
	marginal *= 1 + table.CessRate

	claimed := map[string]float64{
		"80C":       ded.Section80C,
		"80D":       ded.Section80D,
		"80CCD(1B)": ded.Section80CCD1B,
		"24(b)":     ded.HomeLoanInterest,
	}

	var gaps []models.DeductionGap
	for _, c := range table.DeductionCaps {
		if c.Limit == 0 {
			continue // uncapped sections have no measurable gap
		}
		current, known := claimed[c.Section]
		if !known {
			continue
		}
		gap := c.Limit - current
		if gap <= 1000 {
			continue
		}
		gaps = append(gaps, models.DeductionGap{
			Section:          c.Section,
			Current:          current,
			Limit:            c.Limit,
			Gap:              gap,
			Options:          c.Options,
			PotentialSavings: roundCurrency(gap * marginal),
		})
	}

	// Largest potential saving first; table order breaks ties.
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].PotentialSavings > gaps[j].PotentialSavings
	})
	return gaps
}
