package report

import (
	"math"
	"strings"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
)

// Aggregate folds totals rows into per-type sums. The result always contains
// every requested type, zero-valued when nothing matched, so comparison tables
// render a fixed row set. Rows whose normalized type is outside the requested
// list are skipped without error, and a non-finite kilogram value contributes
// zero. The fold is order-independent.
func Aggregate(rows []*domain.TotalsRow, wasteTypes []domain.WasteType) domain.AggregatedTotals {
	totals := make(domain.AggregatedTotals, len(wasteTypes))
	for _, wt := range wasteTypes {
		totals[wt] = 0
	}

	for _, row := range rows {
		wt := domain.WasteType(strings.ToUpper(strings.TrimSpace(row.WasteType)))
		if _, ok := totals[wt]; !ok {
			continue
		}
		totals[wt] += numericOrZero(row.TotalKg)
	}

	return totals
}

func numericOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
