package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTotalsQuery(t *testing.T) {
	sql, args, err := selectTotalsQuery(SelectTotalsOpts{
		LocationIDs: []string{"loc-1", "loc-2"},
		WasteTypes:  []string{"BIO", "MIXED"},
		DayFrom:     "2024-02-05",
		DayTo:       "2024-02-11",
	}).ToSql()

	require.NoError(t, err)
	assert.Contains(t, sql, "FROM vw_waste_totals_daily")
	assert.Contains(t, sql, "location_id IN")
	assert.Contains(t, sql, "waste_type IN")
	assert.Contains(t, sql, "day >= $")
	assert.Contains(t, sql, "day <= $")
	assert.Len(t, args, 6)
}
