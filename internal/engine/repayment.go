package engine

import (
	"fmt"
	"sort"

	"github.com/finwise/advisor/internal/models"
	"github.com/finwise/advisor/internal/rules"
)

// PlanRepayment orders active loans by the avalanche rule (highest
// interest rate first, smaller balance breaking ties) and simulates
// allocating idle cash as lump extra principal payments. When the cash
// exceeds the top loan's balance the remainder cascades to the next
// loan; an explicit accumulator loop keeps termination obvious.
//
// Defaulted loans never enter the plan; they surface as a readiness
// blocker upstream instead.
func PlanRepayment(loans []models.Loan, idleCash float64) models.RepaymentPlan {
	active := make([]models.Loan, 0, len(loans))
	for _, l := range loans {
		if l.Status == models.LoanActive && l.OutstandingAmount > 0 {
			active = append(active, l)
		}
	}

	if len(active) == 0 {
		return models.RepaymentPlan{Summary: "No active loans to plan for. Any surplus can go toward savings or investments."}
	}
	if idleCash <= 0 {
		return models.RepaymentPlan{Summary: "No idle cash detected. Keep paying EMIs on schedule; extra payments need a surplus first."}
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].InterestRate != active[j].InterestRate {
			return active[i].InterestRate > active[j].InterestRate
		}
		// Equal rates: clear the smaller balance first to free its EMI.
		return active[i].OutstandingAmount < active[j].OutstandingAmount
	})

	var steps []models.RepaymentPlanStep
	var totalSaved float64
	remaining := idleCash

	for _, loan := range active {
		if remaining <= 0 {
			break
		}
		payment := remaining
		if payment > loan.OutstandingAmount {
			payment = loan.OutstandingAmount
		}

		baseline := ProjectPayoff(loan.OutstandingAmount, loan.InterestRate, loan.EMIAmount, 0)
		newOutstanding := loan.OutstandingAmount - payment

		var after Payoff
		if newOutstanding > 0 {
			after = ProjectPayoff(newOutstanding, loan.InterestRate, loan.EMIAmount, 0)
		}

		saved := baseline.TotalInterest - after.TotalInterest
		if saved < 0 {
			saved = 0
		}
		monthsSaved := baseline.Months - after.Months
		if monthsSaved < 0 {
			monthsSaved = 0
		}

		steps = append(steps, models.RepaymentPlanStep{
			Step:              len(steps) + 1,
			LoanID:            loan.ID,
			LoanName:          loan.Name,
			SuggestedPayment:  roundCurrency(payment),
			InterestSaved:     roundCurrency(saved),
			MonthsSaved:       monthsSaved,
			NewOutstanding:    roundCurrency(newOutstanding),
			RecommendedAction: actionFor(loan.InterestRate),
			Explanation:       explainStep(loan, payment, saved, monthsSaved, baseline),
			NonAmortizing:     baseline.NonAmortizing,
		})
		totalSaved += saved
		remaining -= payment
	}

	return models.RepaymentPlan{
		Steps:              steps,
		Summary:            summarize(steps, idleCash-remaining, totalSaved),
		TotalInterestSaved: roundCurrency(totalSaved),
	}
}

func actionFor(rate float64) string {
	if rate > rules.HighInterestThreshold {
		return "high priority payoff"
	}
	return "maintain EMI, consider investing surplus"
}

func explainStep(loan models.Loan, payment, saved float64, monthsSaved int, baseline Payoff) string {
	if baseline.NonAmortizing {
		return fmt.Sprintf("EMI on %s does not cover its monthly interest at %.1f%%; the loan will not amortize without a larger payment. Extra principal of %.0f is the fastest way out.",
			loan.Name, loan.InterestRate, payment)
	}
	if payment >= loan.OutstandingAmount {
		return fmt.Sprintf("Paying %.0f clears %s entirely, saving %.0f in interest and freeing its EMI of %.0f per month.",
			payment, loan.Name, saved, loan.EMIAmount)
	}
	return fmt.Sprintf("Extra payment of %.0f toward %s (%.1f%% interest) saves about %.0f in interest and shortens the payoff by %d months.",
		payment, loan.Name, loan.InterestRate, saved, monthsSaved)
}

func summarize(steps []models.RepaymentPlanStep, applied, totalSaved float64) string {
	if len(steps) == 1 {
		return fmt.Sprintf("Applying %.0f of idle cash to your highest-interest loan saves about %.0f in interest.", applied, totalSaved)
	}
	return fmt.Sprintf("Applying %.0f of idle cash across %d loans saves about %.0f in interest.", applied, len(steps), totalSaved)
}
