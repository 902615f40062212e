package rules

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/finwise/advisor/internal/models"
)

// CatalogVersion identifies the built-in investment catalog revision.
const CatalogVersion = "2024.1"

// Catalog is the static set of investment vehicle archetypes the matcher
// selects from. Declaration order is the final ranking tiebreaker, so the
// order of entries is part of the contract.
type Catalog struct {
	Version string                        `toml:"version"`
	Entries []models.InvestmentSuggestion `toml:"entries"`
}

// DefaultCatalog returns the compiled-in catalog. Regulatory or product
// updates ship as a TOML override file instead of code changes.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Version: CatalogVersion,
		Entries: []models.InvestmentSuggestion{
			{
				ID: "ppf", Name: "Public Provident Fund",
				Type: models.VehicleTaxSaving, RiskLevel: models.RiskConservative,
				MinAmount: 500, LockInMonths: 180,
				TaxBenefit: true, TaxSection: "80C", ReturnTier: 1,
				SuitableFor: []string{"long_term", "tax_saving", "guaranteed_returns"},
			},
			{
				ID: "liquid_fund", Name: "Liquid Mutual Fund",
				Type: models.VehicleDebt, RiskLevel: models.RiskConservative,
				MinAmount: 1000, LockInMonths: 0,
				ReturnTier: 1,
				SuitableFor: []string{"emergency_fund", "short_term", "parking_surplus"},
			},
			{
				ID: "bank_fd", Name: "Bank Fixed Deposit",
				Type: models.VehicleDebt, RiskLevel: models.RiskConservative,
				MinAmount: 5000, LockInMonths: 12,
				ReturnTier: 1,
				SuitableFor: []string{"capital_protection", "short_term"},
			},
			{
				ID: "elss", Name: "ELSS Tax Saver Fund",
				Type: models.VehicleTaxSaving, RiskLevel: models.RiskModerate,
				MinAmount: 500, LockInMonths: 36,
				TaxBenefit: true, TaxSection: "80C", ReturnTier: 3,
				SuitableFor: []string{"tax_saving", "wealth_creation"},
			},
			{
				ID: "nps", Name: "National Pension System",
				Type: models.VehicleHybrid, RiskLevel: models.RiskModerate,
				MinAmount: 1000, LockInMonths: 240,
				TaxBenefit: true, TaxSection: "80CCD(1B)", ReturnTier: 2,
				SuitableFor: []string{"retirement", "tax_saving"},
			},
			{
				ID: "index_fund", Name: "Nifty 50 Index Fund",
				Type: models.VehicleEquity, RiskLevel: models.RiskModerate,
				MinAmount: 1000, LockInMonths: 0,
				ReturnTier: 3,
				SuitableFor: []string{"wealth_creation", "long_term", "first_time_equity"},
			},
			{
				ID: "balanced_fund", Name: "Balanced Advantage Fund",
				Type: models.VehicleHybrid, RiskLevel: models.RiskModerate,
				MinAmount: 1000, LockInMonths: 0,
				ReturnTier: 2,
				SuitableFor: []string{"medium_term", "moderate_growth"},
			},
			{
				ID: "small_cap_fund", Name: "Small Cap Fund",
				Type: models.VehicleEquity, RiskLevel: models.RiskAggressive,
				MinAmount: 1000, LockInMonths: 0,
				ReturnTier: 3,
				SuitableFor: []string{"high_growth", "long_term", "experienced"},
			},
		},
	}
}

// LoadCatalog returns the catalog, applying a TOML override file when
// path is non-empty. The override replaces the catalog wholesale.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	var c Catalog
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Entries) == 0 {
		return fmt.Errorf("catalog has no entries")
	}
	seen := make(map[string]bool, len(c.Entries))
	for _, e := range c.Entries {
		if e.ID == "" {
			return fmt.Errorf("catalog entry %q has empty id", e.Name)
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate catalog entry id %q", e.ID)
		}
		seen[e.ID] = true
		switch e.RiskLevel {
		case models.RiskConservative, models.RiskModerate, models.RiskAggressive:
		default:
			return fmt.Errorf("catalog entry %q has unknown risk level %q", e.ID, e.RiskLevel)
		}
		if e.MinAmount < 0 {
			return fmt.Errorf("catalog entry %q has negative min amount", e.ID)
		}
	}
	return nil
}
