package engine

import (
	"sort"

	"github.com/finwise/advisor/internal/models"
)

// Categories that count as essential spending for emergency-fund
// coverage. Everything else is discretionary.
var essentialCategories = map[string]bool{
	"housing":   true,
	"rent":      true,
	"utilities": true,
	"groceries": true,
	"transport": true,
	"insurance": true,
	"medical":   true,
}

// Holding types liquid enough to serve as emergency savings.
var liquidHoldingTypes = map[string]bool{
	"savings":       true,
	"fixed_deposit": true,
	"liquid_fund":   true,
}

// emergencyFundCap is the sentinel for "fully covered" when essential
// spending is zero but liquid savings exist.
const emergencyFundCap = 99.0

// BuildSnapshot aggregates raw ledger records into a FinancialSnapshot.
// Missing inputs produce an all-zero snapshot, never an error.
//
// Monthly figures average over the number of distinct YYYY-MM values in
// the transaction window (minimum 1), so a multi-month window does not
// inflate the monthly income.
func BuildSnapshot(txns []models.Transaction, loans []models.Loan, holdings []models.Holding, history []models.SavingsMonth) models.FinancialSnapshot {
	var totalIncome, totalExpenses, essentialExpenses float64
	monthsSeen := make(map[string]bool)

	for _, t := range txns {
		if len(t.Date) >= 7 {
			monthsSeen[t.Date[:7]] = true
		}
		switch t.Type {
		case models.TxnIncome:
			totalIncome += t.Amount
		case models.TxnExpense:
			totalExpenses += t.Amount
			if essentialCategories[t.Category] {
				essentialExpenses += t.Amount
			}
		}
		// Unrecognized types are ignored, not an error.
	}

	months := float64(len(monthsSeen))
	if months < 1 {
		months = 1
	}

	monthlyIncome := totalIncome / months
	monthlyExpenses := totalExpenses / months
	monthlyEssential := essentialExpenses / months
	surplus := monthlyIncome - monthlyExpenses

	var totalDebt, monthlyEMI float64
	for _, l := range loans {
		if l.Status != models.LoanActive {
			continue
		}
		totalDebt += l.OutstandingAmount
		monthlyEMI += l.EMIAmount
	}

	var liquidSavings, totalInvestments float64
	for _, h := range holdings {
		totalInvestments += h.CurrentValue
		if liquidHoldingTypes[h.HoldingType] {
			liquidSavings += h.CurrentValue
		}
	}

	fundMonths := 0.0
	switch {
	case monthlyEssential > 0:
		fundMonths = liquidSavings / monthlyEssential
		if fundMonths > emergencyFundCap {
			fundMonths = emergencyFundCap
		}
	case liquidSavings > 0:
		// No essential spending on record but savings exist: treat as
		// fully covered.
		fundMonths = emergencyFundCap
	}

	idleCash, consistent := walkSavingsHistory(history)

	return models.FinancialSnapshot{
		MonthlyIncome:           roundCurrency(monthlyIncome),
		MonthlyExpenses:         roundCurrency(monthlyExpenses),
		MonthlySurplus:          roundCurrency(surplus),
		SavingsRate:             roundTo(safeDiv(surplus, monthlyIncome)*100, 2),
		EmergencyFundMonths:     roundTo(fundMonths, 1),
		TotalDebt:               roundCurrency(totalDebt),
		MonthlyEMI:              roundCurrency(monthlyEMI),
		EMIToIncomeRatio:        roundTo(safeDiv(monthlyEMI, monthlyIncome)*100, 2),
		IdleCash:                roundCurrency(idleCash),
		TotalInvestments:        roundCurrency(totalInvestments),
		ConsistentSavingsMonths: consistent,
	}
}

// walkSavingsHistory accumulates idle cash and counts consistent-saving
// months over the trailing series in chronological order. A deficit
// month contributes zero; it does not offset earlier surplus months.
func walkSavingsHistory(history []models.SavingsMonth) (idleCash float64, consistent int) {
	ordered := make([]models.SavingsMonth, len(history))
	copy(ordered, history)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Month < ordered[j].Month })

	for _, m := range ordered {
		surplus := m.Income - m.Expenses
		idle := surplus - m.Transferred
		if idle > 0 {
			idleCash += idle
		}
		if surplus > 0 && m.Transferred > 0 {
			consistent++
		}
	}
	return idleCash, consistent
}
