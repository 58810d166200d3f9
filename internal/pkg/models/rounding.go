package models

import "github.com/shopspring/decimal"

// TotalOdds multiplies leg prices under the proto payout rule:
// the raw product is truncated to 3 decimal places, then rounded
// to 2 decimal places (half away from zero).
func TotalOdds(prices []float64) float64 {
	product := decimal.NewFromInt(1)
	for _, p := range prices {
		product = product.Mul(decimal.NewFromFloat(p))
	}
	total, _ := product.Truncate(3).Round(2).Float64()
	return total
}

// EstimatedPayout returns the stake multiplied by the total odds,
// rounded to the nearest whole unit.
func EstimatedPayout(stake int64, totalOdds float64) int64 {
	return decimal.NewFromInt(stake).
		Mul(decimal.NewFromFloat(totalOdds)).
		Round(0).
		IntPart()
}
