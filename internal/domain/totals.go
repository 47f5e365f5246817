package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// TotalsRow is one row of the daily totals view. WasteType is untrusted free
// text and TotalKg an untrusted numeric; both get normalized during aggregation.
type TotalsRow struct {
	LocationID string  `db:"location_id" json:"location_id"`
	Day        string  `db:"day" json:"day"`
	WasteType  string  `db:"waste_type" json:"waste_type"`
	TotalKg    float64 `db:"total_kg" json:"total_kg"`
}

// AggregatedTotals maps every requested waste type to its summed kilograms.
// The key set is dense: a type with no matching rows is present with 0.
type AggregatedTotals map[WasteType]float64

func (t AggregatedTotals) Sum(types []WasteType) float64 {
	var total float64
	for _, wt := range types {
		total += t[wt]
	}
	return total
}

type ComparisonResult struct {
	A         AggregatedTotals      `json:"a"`
	B         AggregatedTotals      `json:"b"`
	Diff      map[WasteType]float64 `json:"diff"`
	TotalA    float64               `json:"total_a"`
	TotalB    float64               `json:"total_b"`
	TotalDiff float64               `json:"total_diff"`
	// PctChange is nil when the A total is zero; there is no meaningful base
	// to compare against and the UI renders a dash instead of a number.
	PctChange *float64 `json:"pct_change"`
}

// PercentChange returns diff/base*100 rounded to one decimal, or nil when the
// base is zero or not finite.
func PercentChange(base, diff float64) *float64 {
	if base == 0 || math.IsNaN(base) || math.IsInf(base, 0) {
		return nil
	}
	pct := decimal.NewFromFloat(diff).
		Div(decimal.NewFromFloat(base)).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		InexactFloat64()
	return &pct
}
