package service

import (
	"github.com/finwise/advisor/internal/engine"
	"github.com/finwise/advisor/internal/models"
	"github.com/finwise/advisor/internal/rules"
	"github.com/sirupsen/logrus"
)

// Service orchestrates the recommendation engine. It holds the loaded
// reference data and a logger; all computation is delegated to the
// engine package, which is pure and side-effect free.
type Service struct {
	log     *logrus.Logger
	catalog *rules.Catalog
	slabs   *rules.SlabTable
}

// NewService initializes a new service
func NewService(log *logrus.Logger, catalog *rules.Catalog, slabs *rules.SlabTable) *Service {
	return &Service{log: log, catalog: catalog, slabs: slabs}
}

// BuildSnapshot aggregates raw ledger records into a financial snapshot
func (s *Service) BuildSnapshot(ledger models.LedgerInput) models.FinancialSnapshot {
	snap := engine.BuildSnapshot(ledger.Transactions, ledger.Loans, ledger.Holdings, ledger.SavingsHistory)
	s.log.WithFields(logrus.Fields{
		"monthly_income":  snap.MonthlyIncome,
		"monthly_surplus": snap.MonthlySurplus,
		"idle_cash":       snap.IdleCash,
	}).Info("Snapshot built")
	return snap
}

// ScoreReadiness builds the snapshot and evaluates investment readiness
func (s *Service) ScoreReadiness(ledger models.LedgerInput) (models.FinancialSnapshot, models.ReadinessResult) {
	snap := engine.BuildSnapshot(ledger.Transactions, ledger.Loans, ledger.Holdings, ledger.SavingsHistory)
	result := engine.ScoreReadiness(snap, ledger.Loans)
	s.log.WithFields(logrus.Fields{
		"status":   result.Status,
		"score":    result.Score,
		"blockers": len(result.Blockers),
	}).Info("Readiness scored")
	return snap, result
}

// MatchSuggestions filters and ranks the investment catalog for a user
func (s *Service) MatchSuggestions(ledger models.LedgerInput, opts engine.MatchOptions) []models.InvestmentSuggestion {
	snap := engine.BuildSnapshot(ledger.Transactions, ledger.Loans, ledger.Holdings, ledger.SavingsHistory)
	readiness := engine.ScoreReadiness(snap, ledger.Loans)
	suggestions := engine.MatchSuggestions(s.catalog, snap, readiness, opts)
	s.log.WithFields(logrus.Fields{
		"status":      readiness.Status,
		"suggestions": len(suggestions),
	}).Info("Suggestions matched")
	return suggestions
}

// PlanRepayment simulates allocating idle cash across active loans
func (s *Service) PlanRepayment(loans []models.Loan, idleCash float64) models.RepaymentPlan {
	plan := engine.PlanRepayment(loans, idleCash)
	s.log.WithFields(logrus.Fields{
		"steps":          len(plan.Steps),
		"interest_saved": plan.TotalInterestSaved,
	}).Info("Repayment plan built")
	return plan
}

// CompareTaxRegimes estimates liability under both regimes
func (s *Service) CompareTaxRegimes(income models.IncomeInput, ded models.DeductionInput) models.TaxComparison {
	cmp := engine.CompareTaxRegimes(s.slabs, income, ded)
	s.log.WithFields(logrus.Fields{
		"recommended": cmp.Recommended,
		"savings":     cmp.Savings,
	}).Info("Tax regimes compared")
	return cmp
}

// RecommendITRForm picks the tax form matching the income profile
func (s *Service) RecommendITRForm(income models.IncomeInput) models.ITRRecommendation {
	rec := engine.RecommendITRForm(s.slabs, income)
	s.log.WithField("form", rec.Form).Info("ITR form recommended")
	return rec
}

// SuggestDeductions reports unused deduction headroom by section
func (s *Service) SuggestDeductions(income models.IncomeInput, ded models.DeductionInput) []models.DeductionGap {
	return engine.SuggestDeductions(s.slabs, income, ded)
}
