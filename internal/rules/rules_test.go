package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultCatalog_Valid(t *testing.T) {
	c := DefaultCatalog()
	if err := c.validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	levels := map[string]bool{}
	for _, e := range c.Entries {
		levels[e.RiskLevel] = true
	}
	for _, want := range []string{"conservative", "moderate", "aggressive"} {
		if !levels[want] {
			t.Fatalf("default catalog covers no %s entry", want)
		}
	}
}

func TestLoadCatalog_EmptyPathUsesDefaults(t *testing.T) {
	c, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Version != CatalogVersion {
		t.Fatalf("version = %s, want %s", c.Version, CatalogVersion)
	}
}

func TestLoadCatalog_Override(t *testing.T) {
	path := writeFile(t, "catalog.toml", `
version = "2025.test"

[[entries]]
id = "gilt_fund"
name = "Gilt Fund"
type = "debt"
risk_level = "conservative"
min_amount = 1000.0
return_tier = 1
`)
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Version != "2025.test" || len(c.Entries) != 1 {
		t.Fatalf("override not applied: %+v", c)
	}
	if c.Entries[0].ID != "gilt_fund" {
		t.Fatalf("entry id = %s", c.Entries[0].ID)
	}
}

func TestLoadCatalog_RejectsBadRiskLevel(t *testing.T) {
	path := writeFile(t, "catalog.toml", `
[[entries]]
id = "x"
risk_level = "reckless"
`)
	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("expected validation error for unknown risk level")
	}
}

func TestLoadCatalog_RejectsDuplicateIDs(t *testing.T) {
	path := writeFile(t, "catalog.toml", `
[[entries]]
id = "ppf"
risk_level = "conservative"

[[entries]]
id = "ppf"
risk_level = "moderate"
`)
	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("expected validation error for duplicate ids")
	}
}

func TestDefaultSlabTable_Valid(t *testing.T) {
	if err := DefaultSlabTable().validate(); err != nil {
		t.Fatalf("default slab table invalid: %v", err)
	}
}

func TestLoadSlabTable_Override(t *testing.T) {
	path := writeFile(t, "slabs.toml", `
version = "FY2025-26"
cess_rate = 0.04

[old]
standard_deduction = 50000.0
rebate_limit = 500000.0
rebate_max = 12500.0
slabs = [
  { up_to = 250000.0, rate = 0.0 },
  { up_to = 500000.0, rate = 0.05 },
  { up_to = 0.0, rate = 0.3 },
]

[new]
standard_deduction = 75000.0
rebate_limit = 700000.0
rebate_max = 25000.0
slabs = [
  { up_to = 400000.0, rate = 0.0 },
  { up_to = 0.0, rate = 0.2 },
]
`)
	tbl, err := LoadSlabTable(path)
	if err != nil {
		t.Fatalf("LoadSlabTable: %v", err)
	}
	if tbl.Version != "FY2025-26" {
		t.Fatalf("version = %s", tbl.Version)
	}
	if len(tbl.New.Slabs) != 2 || tbl.New.Slabs[0].UpTo != 400000 {
		t.Fatalf("new slabs not applied: %+v", tbl.New.Slabs)
	}
}

func TestLoadSlabTable_RejectsDescendingSlabs(t *testing.T) {
	path := writeFile(t, "slabs.toml", `
[old]
slabs = [
  { up_to = 500000.0, rate = 0.05 },
  { up_to = 250000.0, rate = 0.0 },
  { up_to = 0.0, rate = 0.3 },
]

[new]
slabs = [
  { up_to = 300000.0, rate = 0.0 },
  { up_to = 0.0, rate = 0.3 },
]
`)
	if _, err := LoadSlabTable(path); err == nil {
		t.Fatal("expected validation error for descending slab limits")
	}
}

func TestLoadSlabTable_RejectsMissingTerminalSlab(t *testing.T) {
	path := writeFile(t, "slabs.toml", `
[old]
slabs = [
  { up_to = 250000.0, rate = 0.0 },
  { up_to = 500000.0, rate = 0.05 },
]

[new]
slabs = [
  { up_to = 0.0, rate = 0.3 },
]
`)
	if _, err := LoadSlabTable(path); err == nil {
		t.Fatal("expected validation error for missing unbounded terminal slab")
	}
}

func TestCapFor(t *testing.T) {
	tbl := DefaultSlabTable()
	c, ok := tbl.CapFor("80C")
	if !ok || c.Limit != 150000 {
		t.Fatalf("CapFor(80C) = %+v, %v", c, ok)
	}
	if _, ok := tbl.CapFor("80Z"); ok {
		t.Fatal("unknown section should not resolve")
	}
}
