package engine

import (
	"math"
	"testing"
)

func TestComputeEMI(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		tenure    int
		want      float64
	}{
		{"zero rate exact division", 100000, 0, 12, 8333.33},
		{"standard home loan", 500000, 8.5, 60, 10258.27},
		{"long tenure", 1000000, 9, 120, 12667.58},
		{"high rate personal loan", 200000, 15, 36, 6933.07},
		{"zero principal", 0, 10, 12, 0},
		{"zero tenure", 100000, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeEMI(tt.principal, tt.rate, tt.tenure)
			if got != tt.want {
				t.Fatalf("ComputeEMI(%v, %v, %d) = %v, want %v", tt.principal, tt.rate, tt.tenure, got, tt.want)
			}
		})
	}
}

func TestProjectPayoff(t *testing.T) {
	p := ProjectPayoff(100000, 15, 5000, 0)
	if p.NonAmortizing {
		t.Fatal("expected amortizing loan")
	}
	if p.Months != 24 {
		t.Fatalf("Months = %d, want 24", p.Months)
	}
	if math.Abs(p.TotalInterest-15794.68) > 0.05 {
		t.Fatalf("TotalInterest = %v, want ~15794.68", p.TotalInterest)
	}
}

func TestProjectPayoff_ExtraPaymentShortens(t *testing.T) {
	base := ProjectPayoff(100000, 15, 5000, 0)
	extra := ProjectPayoff(100000, 15, 5000, 1000)
	if extra.Months >= base.Months {
		t.Fatalf("extra payment did not shorten payoff: %d vs %d", extra.Months, base.Months)
	}
	if extra.TotalInterest >= base.TotalInterest {
		t.Fatalf("extra payment did not reduce interest: %v vs %v", extra.TotalInterest, base.TotalInterest)
	}
}

func TestProjectPayoff_NonAmortizing(t *testing.T) {
	// 24% annual on 100000 accrues 2000/month; a 1000 EMI never retires
	// principal.
	p := ProjectPayoff(100000, 24, 1000, 0)
	if !p.NonAmortizing {
		t.Fatal("expected non-amortizing result")
	}
	if p.Months != 0 {
		t.Fatalf("Months = %d, want 0", p.Months)
	}
}

func TestProjectPayoff_ZeroRate(t *testing.T) {
	p := ProjectPayoff(12000, 0, 1000, 0)
	if p.NonAmortizing {
		t.Fatal("expected amortizing loan")
	}
	if p.Months != 12 {
		t.Fatalf("Months = %d, want 12", p.Months)
	}
	if p.TotalInterest != 0 {
		t.Fatalf("TotalInterest = %v, want 0", p.TotalInterest)
	}
}

func TestProjectPayoff_ZeroOutstanding(t *testing.T) {
	p := ProjectPayoff(0, 10, 1000, 0)
	if p.Months != 0 || p.TotalInterest != 0 || p.NonAmortizing {
		t.Fatalf("unexpected payoff for settled loan: %+v", p)
	}
}
