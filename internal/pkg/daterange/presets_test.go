package daterange

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPresets(t *testing.T) {
	reference := time.Date(2024, time.February, 14, 12, 0, 0, 0, time.Local)
	presets := ListPresets(reference)

	require.Len(t, presets, 3)
	assert.Equal(t, PresetPrevWeekVsThisWeek, presets[0].ID)
	assert.Equal(t, PresetPrevMonthVsThisMonth, presets[1].ID)
	assert.Equal(t, PresetCustom, presets[2].ID)

	t.Run("week preset", func(t *testing.T) {
		p := presets[0]
		assert.Equal(t, "2024-02-05", p.RangeA.DayFrom)
		assert.Equal(t, "2024-02-11", p.RangeA.DayTo)
		assert.Equal(t, "2024-02-12", p.RangeB.DayFrom)
		assert.Equal(t, "2024-02-18", p.RangeB.DayTo)
		assert.Equal(t, "A (5.2.2024 - 11.2.2024)", p.ALabel)
	})

	t.Run("month preset", func(t *testing.T) {
		p := presets[1]
		assert.Equal(t, "2024-01-01", p.RangeA.DayFrom)
		assert.Equal(t, "2024-01-31", p.RangeA.DayTo)
		assert.Equal(t, "2024-02-01", p.RangeB.DayFrom)
		assert.Equal(t, "2024-02-29", p.RangeB.DayTo)
	})

	t.Run("custom preset carries empty ranges", func(t *testing.T) {
		p := presets[2]
		assert.Empty(t, p.RangeA.DayFrom)
		assert.Empty(t, p.RangeB.DayTo)
	})
}

func TestGetPreset(t *testing.T) {
	reference := time.Date(2024, time.February, 14, 12, 0, 0, 0, time.Local)

	t.Run("known id", func(t *testing.T) {
		p := GetPreset(context.Background(), PresetPrevMonthVsThisMonth, reference)
		assert.Equal(t, PresetPrevMonthVsThisMonth, p.ID)
	})

	t.Run("unknown id falls back to the first preset", func(t *testing.T) {
		p := GetPreset(context.Background(), "deleted_preset", reference)
		assert.Equal(t, PresetPrevWeekVsThisWeek, p.ID)
	})
}
