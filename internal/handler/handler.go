package handler

import (
	"encoding/json"
	"net/http"

	"github.com/finwise/advisor/internal/engine"
	"github.com/finwise/advisor/internal/models"
	"github.com/finwise/advisor/internal/service"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Snapshot builds a financial snapshot from raw ledger records
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	var ledger models.LedgerInput
	if !decode(w, r, &ledger) {
		return
	}
	if !validLoans(w, ledger.Loans) {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.BuildSnapshot(ledger))
}

type readinessResponse struct {
	Snapshot  models.FinancialSnapshot `json:"snapshot"`
	Readiness models.ReadinessResult   `json:"readiness"`
}

// Readiness scores investment readiness from raw ledger records
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	var ledger models.LedgerInput
	if !decode(w, r, &ledger) {
		return
	}
	if !validLoans(w, ledger.Loans) {
		return
	}
	snap, result := h.svc.ScoreReadiness(ledger)
	writeJSON(w, http.StatusOK, readinessResponse{Snapshot: snap, Readiness: result})
}

type suggestionsRequest struct {
	models.LedgerInput
	Used80C float64 `json:"used_80c"`
}

type suggestionsResponse struct {
	Suggestions []models.InvestmentSuggestion `json:"suggestions"`
}

// Suggestions matches investment vehicles to the user's profile
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionsRequest
	if !decode(w, r, &req) {
		return
	}
	if !validLoans(w, req.Loans) {
		return
	}
	out := h.svc.MatchSuggestions(req.LedgerInput, engine.MatchOptions{Used80C: req.Used80C})
	writeJSON(w, http.StatusOK, suggestionsResponse{Suggestions: out})
}

type repaymentRequest struct {
	Loans    []models.Loan `json:"loans"`
	IdleCash float64       `json:"idle_cash"`
}

// RepaymentPlan simulates allocating idle cash across active loans
func (h *Handler) RepaymentPlan(w http.ResponseWriter, r *http.Request) {
	var req repaymentRequest
	if !decode(w, r, &req) {
		return
	}
	if !validLoans(w, req.Loans) {
		return
	}
	if req.IdleCash < 0 {
		http.Error(w, "idle_cash cannot be negative", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.PlanRepayment(req.Loans, req.IdleCash))
}

type taxRequest struct {
	Income     models.IncomeInput    `json:"income"`
	Deductions models.DeductionInput `json:"deductions"`
}

// TaxEstimate compares liability under both regimes
func (h *Handler) TaxEstimate(w http.ResponseWriter, r *http.Request) {
	var req taxRequest
	if !decode(w, r, &req) {
		return
	}
	if !validIncome(w, req.Income) {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.CompareTaxRegimes(req.Income, req.Deductions))
}

// ITRForm recommends the tax form for an income profile
func (h *Handler) ITRForm(w http.ResponseWriter, r *http.Request) {
	var req taxRequest
	if !decode(w, r, &req) {
		return
	}
	if !validIncome(w, req.Income) {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.RecommendITRForm(req.Income))
}

type deductionGapsResponse struct {
	Suggestions []models.DeductionGap `json:"suggestions"`
}

// DeductionSuggestions reports unused deduction headroom by section
func (h *Handler) DeductionSuggestions(w http.ResponseWriter, r *http.Request) {
	var req taxRequest
	if !decode(w, r, &req) {
		return
	}
	if !validIncome(w, req.Income) {
		return
	}
	writeJSON(w, http.StatusOK, deductionGapsResponse{Suggestions: h.svc.SuggestDeductions(req.Income, req.Deductions)})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// validLoans rejects contract violations at the boundary; the engine
// assumes sanitized inputs.
func validLoans(w http.ResponseWriter, loans []models.Loan) bool {
	for _, l := range loans {
		if l.PrincipalAmount < 0 || l.OutstandingAmount < 0 || l.InterestRate < 0 || l.TenureMonths < 0 {
			http.Error(w, "loan records must not carry negative amounts, rates, or tenure", http.StatusBadRequest)
			return false
		}
		if l.OutstandingAmount > l.PrincipalAmount {
			http.Error(w, "loan outstanding amount cannot exceed principal", http.StatusBadRequest)
			return false
		}
	}
	return true
}

func validIncome(w http.ResponseWriter, in models.IncomeInput) bool {
	if in.Salary < 0 || in.Rental < 0 || in.Business < 0 || in.CapitalGainsShort < 0 || in.CapitalGainsLong < 0 || in.Other < 0 {
		http.Error(w, "income figures cannot be negative", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
