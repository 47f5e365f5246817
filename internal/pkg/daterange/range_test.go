package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDayRange(t *testing.T) {
	r := BuildDayRange(time.Date(2024, time.February, 12, 15, 30, 0, 0, time.Local))

	assert.Equal(t, "2024-02-12", r.DayFrom)
	assert.Equal(t, "2024-02-12", r.DayTo)
	assert.Equal(t, "12.2.2024", r.Label)
	assert.Equal(t, time.Date(2024, time.February, 12, 0, 0, 0, 0, time.Local), r.FromTs)
	assert.Equal(t, 23, r.ToTs.Hour())
	assert.Equal(t, 59, r.ToTs.Minute())
}

func TestBuildIsoWeekRange(t *testing.T) {
	t.Run("week 1 of 2024 starts on January 1st", func(t *testing.T) {
		// Jan 4 2024 is a Thursday, so the Monday of week 1 is Jan 1.
		r := BuildIsoWeekRange(2024, 1)

		assert.Equal(t, "2024-01-01", r.DayFrom)
		assert.Equal(t, "2024-01-07", r.DayTo)
		assert.Equal(t, time.Monday, r.FromTs.Weekday())
	})

	t.Run("week 1 can begin in the previous year", func(t *testing.T) {
		// Jan 4 2021 is itself a Monday.
		r := BuildIsoWeekRange(2021, 1)
		assert.Equal(t, "2021-01-04", r.DayFrom)

		// 2026's week 1 starts in December 2025.
		r = BuildIsoWeekRange(2026, 1)
		assert.Equal(t, "2025-12-29", r.DayFrom)
	})

	t.Run("spans exactly seven days", func(t *testing.T) {
		r := BuildIsoWeekRange(2024, 7)

		from, err := time.ParseInLocation("2006-01-02", r.DayFrom, time.Local)
		require.NoError(t, err)
		to, err := time.ParseInLocation("2006-01-02", r.DayTo, time.Local)
		require.NoError(t, err)

		assert.Equal(t, 6, int(to.Sub(from).Hours()/24))
		assert.Equal(t, time.Monday, from.Weekday())
		assert.Equal(t, time.Sunday, to.Weekday())
	})
}

func TestBuildMonthRange(t *testing.T) {
	t.Run("leap february", func(t *testing.T) {
		r := BuildMonthRange(2024, 1)

		assert.Equal(t, "2024-02-01", r.DayFrom)
		assert.Equal(t, "2024-02-29", r.DayTo)
		assert.Equal(t, "helmikuu 2024", r.Label)
	})

	t.Run("december", func(t *testing.T) {
		r := BuildMonthRange(2023, 11)

		assert.Equal(t, "2023-12-01", r.DayFrom)
		assert.Equal(t, "2023-12-31", r.DayTo)
		assert.Equal(t, "joulukuu 2023", r.Label)
	})
}

func TestWeekRanges(t *testing.T) {
	// Wednesday in the middle of February 2024.
	reference := time.Date(2024, time.February, 14, 12, 0, 0, 0, time.Local)

	cur := CurrentWeekRange(reference)
	assert.Equal(t, "2024-02-12", cur.DayFrom)
	assert.Equal(t, "2024-02-18", cur.DayTo)
	assert.Equal(t, "12.2.2024 - 18.2.2024", cur.Label)

	prev := PreviousWeekRange(reference)
	assert.Equal(t, "2024-02-05", prev.DayFrom)
	assert.Equal(t, "2024-02-11", prev.DayTo)
}
