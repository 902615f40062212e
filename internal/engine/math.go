package engine

import "github.com/shopspring/decimal"

// safeDiv returns a/b, or 0 when b is 0. Every ratio the engine surfaces
// goes through this guard so no NaN or Inf can ever leak out.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// roundCurrency rounds to 2 decimal places, half away from zero.
func roundCurrency(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// roundTo rounds to the given number of decimal places.
func roundTo(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
