package engine

import "math"

// PayoffCeiling caps the payoff projection loop. An EMI that does not
// cover monthly interest would otherwise never amortize; hitting the
// ceiling marks the projection non-amortizing instead of looping.
const PayoffCeiling = 1200

// Payoff is the result of projecting a loan balance to zero.
type Payoff struct {
	Months        int     `json:"months"`
	TotalInterest float64 `json:"total_interest"`
	NonAmortizing bool    `json:"non_amortizing"`
}

// ComputeEMI returns the equal monthly installment for a loan, rounded
// to currency precision (2dp, half-up).
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1), r = annual/12/100
//
// A zero rate degenerates to an even principal split.
func ComputeEMI(principal, annualRatePercent float64, tenureMonths int) float64 {
	if tenureMonths <= 0 || principal <= 0 {
		return 0
	}
	if annualRatePercent == 0 {
		return roundCurrency(principal / float64(tenureMonths))
	}
	r := annualRatePercent / 12 / 100
	factor := math.Pow(1+r, float64(tenureMonths))
	return roundCurrency(principal * r * factor / (factor - 1))
}

// ProjectPayoff walks a loan month by month until the balance reaches
// zero: interest accrues on the outstanding balance, the rest of the
// payment retires principal. The final month clamps the balance to
// exactly 0. extraPayment is applied every month on top of the EMI.
func ProjectPayoff(outstanding, annualRatePercent, emi, extraPayment float64) Payoff {
	if outstanding <= 0 {
		return Payoff{}
	}
	r := annualRatePercent / 12 / 100
	payment := emi + extraPayment

	months := 0
	totalInterest := 0.0
	for outstanding > 0 && months < PayoffCeiling {
		interest := outstanding * r
		principalPaid := payment - interest
		if principalPaid <= 0 {
			return Payoff{Months: months, TotalInterest: roundCurrency(totalInterest), NonAmortizing: true}
		}
		totalInterest += interest
		outstanding -= principalPaid
		months++
		if outstanding <= 0 {
			outstanding = 0
		}
	}
	if outstanding > 0 {
		return Payoff{Months: months, TotalInterest: roundCurrency(totalInterest), NonAmortizing: true}
	}
	return Payoff{Months: months, TotalInterest: roundCurrency(totalInterest)}
}
