package engine

import (
	"testing"

	"github.com/finwise/advisor/internal/models"
	"github.com/finwise/advisor/internal/rules"
)

func readyResult() models.ReadinessResult {
	return models.ReadinessResult{Status: models.StatusReady, Score: 100}
}

func TestMatchSuggestions_NotReadyYieldsNothing(t *testing.T) {
	snap := models.FinancialSnapshot{MonthlySurplus: 50000, EmergencyFundMonths: 10, SavingsRate: 40}
	got := MatchSuggestions(rules.DefaultCatalog(), snap, models.ReadinessResult{Status: models.StatusNotReady}, MatchOptions{})
	if len(got) != 0 {
		t.Fatalf("NOT_READY must yield no suggestions, got %d", len(got))
	}
}

func TestMatchSuggestions_CautionConservativeOnly(t *testing.T) {
	snap := models.FinancialSnapshot{MonthlySurplus: 20000, EmergencyFundMonths: 3, SavingsRate: 12}
	got := MatchSuggestions(rules.DefaultCatalog(), snap, models.ReadinessResult{Status: models.StatusCaution}, MatchOptions{})
	if len(got) == 0 {
		t.Fatal("CAUTION with surplus should yield conservative suggestions")
	}
	for _, s := range got {
		if s.RiskLevel != models.RiskConservative {
			t.Fatalf("CAUTION returned %s entry %s", s.RiskLevel, s.ID)
		}
	}
}

func TestMatchSuggestions_AggressiveGate(t *testing.T) {
	// READY but emergency fund below 6 months: aggressive must never
	// appear, regardless of savings rate.
	snap := models.FinancialSnapshot{MonthlySurplus: 50000, EmergencyFundMonths: 5.9, SavingsRate: 40}
	got := MatchSuggestions(rules.DefaultCatalog(), snap, readyResult(), MatchOptions{})
	for _, s := range got {
		if s.RiskLevel == models.RiskAggressive {
			t.Fatalf("aggressive entry %s surfaced with %.1f fund months", s.ID, snap.EmergencyFundMonths)
		}
	}

	// Low savings rate also blocks aggressive.
	snap = models.FinancialSnapshot{MonthlySurplus: 50000, EmergencyFundMonths: 8, SavingsRate: 19}
	got = MatchSuggestions(rules.DefaultCatalog(), snap, readyResult(), MatchOptions{})
	for _, s := range got {
		if s.RiskLevel == models.RiskAggressive {
			t.Fatalf("aggressive entry %s surfaced with %.1f%% savings rate", s.ID, snap.SavingsRate)
		}
	}
}

func TestMatchSuggestions_AggressiveAllowedWithCushion(t *testing.T) {
	snap := models.FinancialSnapshot{MonthlySurplus: 50000, EmergencyFundMonths: 6, SavingsRate: 20}
	got := MatchSuggestions(rules.DefaultCatalog(), snap, readyResult(), MatchOptions{Used80C: 150000})
	found := false
	for _, s := range got {
		if s.RiskLevel == models.RiskAggressive {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an aggressive entry for a fully cushioned READY user")
	}
}

func TestMatchSuggestions_CapacityFilter(t *testing.T) {
	// Surplus of 300/month annualizes to 3600: only entries with
	// minAmount at or below that qualify.
	snap := models.FinancialSnapshot{MonthlySurplus: 300, EmergencyFundMonths: 8, SavingsRate: 25}
	got := MatchSuggestions(rules.DefaultCatalog(), snap, readyResult(), MatchOptions{})
	for _, s := range got {
		if s.MinAmount > 3600 {
			t.Fatalf("entry %s minAmount %v exceeds capacity 3600", s.ID, s.MinAmount)
		}
	}
}

func TestMatchSuggestions_TaxAdvantagedFirstWithHeadroom(t *testing.T) {
	snap := models.FinancialSnapshot{MonthlySurplus: 50000, EmergencyFundMonths: 8, SavingsRate: 30}
	got := MatchSuggestions(rules.DefaultCatalog(), snap, readyResult(), MatchOptions{Used80C: 0})
	if len(got) == 0 {
		t.Fatal("expected suggestions")
	}
	if !got[0].TaxBenefit {
		t.Fatalf("with 80C headroom the first suggestion should be tax-advantaged, got %s", got[0].ID)
	}
	// Within tax-advantaged entries the higher return tier ranks first.
	if got[0].ID != "elss" {
		t.Fatalf("first suggestion = %s, want elss (tax benefit, top return tier)", got[0].ID)
	}

	// With 80C exhausted, plain ranking by return tier applies.
	got = MatchSuggestions(rules.DefaultCatalog(), snap, readyResult(), MatchOptions{Used80C: 150000})
	if len(got) == 0 {
		t.Fatal("expected suggestions")
	}
	if got[0].ReturnTier != 3 {
		t.Fatalf("without headroom the top entry should be a tier-3 vehicle, got %s (tier %d)", got[0].ID, got[0].ReturnTier)
	}
}

func TestMatchSuggestions_Cap(t *testing.T) {
	snap := models.FinancialSnapshot{MonthlySurplus: 100000, EmergencyFundMonths: 12, SavingsRate: 40}
	got := MatchSuggestions(rules.DefaultCatalog(), snap, readyResult(), MatchOptions{})
	if len(got) > rules.MaxSuggestions {
		t.Fatalf("returned %d suggestions, cap is %d", len(got), rules.MaxSuggestions)
	}
}

func TestMatchSuggestions_NoCapacityYieldsEmptyNotError(t *testing.T) {
	snap := models.FinancialSnapshot{MonthlySurplus: 0, EmergencyFundMonths: 8, SavingsRate: 0}
	got := MatchSuggestions(rules.DefaultCatalog(), snap, readyResult(), MatchOptions{})
	if len(got) != 0 {
		t.Fatalf("zero surplus should match nothing, got %d", len(got))
	}
}
