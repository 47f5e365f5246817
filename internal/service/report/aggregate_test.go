package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
)

func TestAggregate(t *testing.T) {
	requested := []domain.WasteType{domain.WasteTypeBio, domain.WasteTypeMixed, domain.WasteTypeGlass}

	t.Run("every requested type is present even with no rows", func(t *testing.T) {
		totals := Aggregate(nil, requested)

		require.Len(t, totals, 3)
		for _, wt := range requested {
			assert.Zero(t, totals[wt])
		}
	})

	t.Run("sums per type", func(t *testing.T) {
		rows := []*domain.TotalsRow{
			{WasteType: "BIO", TotalKg: 2.5},
			{WasteType: "BIO", TotalKg: 1.5},
			{WasteType: "MIXED", TotalKg: 3},
		}

		totals := Aggregate(rows, requested)

		assert.Equal(t, 4.0, totals[domain.WasteTypeBio])
		assert.Equal(t, 3.0, totals[domain.WasteTypeMixed])
		assert.Equal(t, 0.0, totals[domain.WasteTypeGlass])
	})

	t.Run("normalizes row types before matching", func(t *testing.T) {
		rows := []*domain.TotalsRow{
			{WasteType: " bio ", TotalKg: 2},
			{WasteType: "Mixed", TotalKg: 1},
		}

		totals := Aggregate(rows, requested)

		assert.Equal(t, 2.0, totals[domain.WasteTypeBio])
		assert.Equal(t, 1.0, totals[domain.WasteTypeMixed])
	})

	t.Run("rows outside the requested set are skipped", func(t *testing.T) {
		rows := []*domain.TotalsRow{
			{WasteType: "PLASTIC", TotalKg: 9},
			{WasteType: "garbage-type", TotalKg: 9},
			{WasteType: "BIO", TotalKg: 1},
		}

		totals := Aggregate(rows, requested)

		require.Len(t, totals, 3)
		assert.Equal(t, 1.0, totals[domain.WasteTypeBio])
	})

	t.Run("non-finite kilograms contribute zero", func(t *testing.T) {
		rows := []*domain.TotalsRow{
			{WasteType: "BIO", TotalKg: math.NaN()},
			{WasteType: "BIO", TotalKg: math.Inf(1)},
			{WasteType: "BIO", TotalKg: 2},
		}

		totals := Aggregate(rows, requested)

		assert.Equal(t, 2.0, totals[domain.WasteTypeBio])
	})

	t.Run("order independent", func(t *testing.T) {
		rows := []*domain.TotalsRow{
			{WasteType: "MIXED", TotalKg: 3},
			{WasteType: "BIO", TotalKg: 1.5},
			{WasteType: "BIO", TotalKg: 2.5},
		}
		reversed := []*domain.TotalsRow{rows[2], rows[1], rows[0]}

		assert.Equal(t, Aggregate(rows, requested), Aggregate(reversed, requested))
	})
}
