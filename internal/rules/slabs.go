package rules

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// SlabTableVersion identifies the built-in slab schedule (FY 2024-25,
// Finance Act 2024).
const SlabTableVersion = "FY2024-25"

// Slab is one progressive bracket. UpTo == 0 means no upper bound.
type Slab struct {
	UpTo float64 `toml:"up_to"`
	Rate float64 `toml:"rate"` // fraction, e.g. 0.05
}

// RegimeSchedule holds everything needed to compute liability under one
// regime: slabs, the standard deduction for salaried filers, and the
// section 87A rebate parameters.
type RegimeSchedule struct {
	Slabs             []Slab  `toml:"slabs"`
	StandardDeduction float64 `toml:"standard_deduction"`
	RebateLimit       float64 `toml:"rebate_limit"`
	RebateMax         float64 `toml:"rebate_max"`
}

// SurchargeBand applies a surcharge rate above a taxable-income floor.
type SurchargeBand struct {
	Above float64 `toml:"above"`
	Rate  float64 `toml:"rate"`
}

// DeductionCap limits one section's claim under the old regime.
// Limit == 0 means uncapped.
type DeductionCap struct {
	Section string   `toml:"section"`
	Limit   float64  `toml:"limit"`
	Options []string `toml:"options"`
}

// SlabTable is the complete versioned tax schedule.
type SlabTable struct {
	Version        string          `toml:"version"`
	Old            RegimeSchedule  `toml:"old"`
	New            RegimeSchedule  `toml:"new"`
	CessRate       float64         `toml:"cess_rate"`
	Surcharge      []SurchargeBand `toml:"surcharge"`
	DeductionCaps  []DeductionCap  `toml:"deduction_caps"`
	HighIncomeITR  float64         `toml:"high_income_itr"`  // gross income above which ITR-2 applies
	RentalITRLimit float64         `toml:"rental_itr_limit"` // rental income above which ITR-2 applies
}

// DefaultSlabTable returns the compiled-in FY 2024-25 schedule.
func DefaultSlabTable() *SlabTable {
	return &SlabTable{
		Version: SlabTableVersion,
		Old: RegimeSchedule{
			Slabs: []Slab{
				{UpTo: 250000, Rate: 0},
				{UpTo: 500000, Rate: 0.05},
				{UpTo: 1000000, Rate: 0.20},
				{UpTo: 0, Rate: 0.30},
			},
			StandardDeduction: 50000,
			RebateLimit:       500000,
			RebateMax:         12500,
		},
		New: RegimeSchedule{
			Slabs: []Slab{
				{UpTo: 300000, Rate: 0},
				{UpTo: 700000, Rate: 0.05},
				{UpTo: 1000000, Rate: 0.10},
				{UpTo: 1200000, Rate: 0.15},
				{UpTo: 1500000, Rate: 0.20},
				{UpTo: 0, Rate: 0.30},
			},
			StandardDeduction: 75000,
			RebateLimit:       700000,
			RebateMax:         25000,
		},
		CessRate: 0.04,
		Surcharge: []SurchargeBand{
			{Above: 50000000, Rate: 0.37},
			{Above: 20000000, Rate: 0.25},
			{Above: 10000000, Rate: 0.15},
			{Above: 5000000, Rate: 0.10},
		},
		DeductionCaps: []DeductionCap{
			{Section: "80C", Limit: 150000, Options: []string{"PPF", "ELSS Mutual Funds", "Life Insurance Premium", "EPF", "5-Year FD"}},
			{Section: "80D", Limit: 100000, Options: []string{"Health Insurance", "Preventive Health Checkup"}},
			{Section: "80CCD(1B)", Limit: 50000, Options: []string{"National Pension System (NPS)"}},
			{Section: "24(b)", Limit: 200000, Options: []string{"Home Loan Interest"}},
			{Section: "80E", Limit: 0, Options: []string{"Education Loan Interest"}},
			{Section: "80G", Limit: 0, Options: []string{"Approved Charitable Donations"}},
		},
		HighIncomeITR:  5000000,
		RentalITRLimit: 250000,
	}
}

// LoadSlabTable returns the slab schedule, applying a TOML override file
// when path is non-empty.
func LoadSlabTable(path string) (*SlabTable, error) {
	if path == "" {
		return DefaultSlabTable(), nil
	}
	var t SlabTable
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("failed to load slab table from %s: %w", path, err)
	}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("invalid slab table in %s: %w", path, err)
	}
	return &t, nil
}

// CapFor returns the cap for a section and whether the section is known.
func (t *SlabTable) CapFor(section string) (DeductionCap, bool) {
	for _, c := range t.DeductionCaps {
		if c.Section == section {
			return c, true
		}
	}
	return DeductionCap{}, false
}

func (t *SlabTable) validate() error {
	for name, sched := range map[string]RegimeSchedule{"old": t.Old, "new": t.New} {
		if len(sched.Slabs) == 0 {
			return fmt.Errorf("%s regime has no slabs", name)
		}
		prev := 0.0
		for i, s := range sched.Slabs {
			if s.Rate < 0 {
				return fmt.Errorf("%s regime slab %d has negative rate", name, i)
			}
			unbounded := s.UpTo == 0
			if unbounded && i != len(sched.Slabs)-1 {
				return fmt.Errorf("%s regime has unbounded slab before the last position", name)
			}
			if !unbounded && s.UpTo <= prev {
				return fmt.Errorf("%s regime slab limits are not ascending", name)
			}
			prev = s.UpTo
		}
		if sched.Slabs[len(sched.Slabs)-1].UpTo != 0 {
			return fmt.Errorf("%s regime lacks a terminal unbounded slab", name)
		}
	}
	if t.CessRate < 0 {
		return fmt.Errorf("negative cess rate")
	}
	return nil
}
