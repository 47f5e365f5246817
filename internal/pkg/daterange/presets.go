package daterange

import (
	"context"
	"fmt"
	"time"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/logger"
)

type PresetID string

const (
	PresetPrevWeekVsThisWeek   PresetID = "prevWeek_vs_thisWeek"
	PresetPrevMonthVsThisMonth PresetID = "prevMonth_vs_thisMonth"
	PresetCustom               PresetID = "custom"
)

// PresetRange carries only the day bounds; presets never need instants.
type PresetRange struct {
	DayFrom string `json:"day_from"`
	DayTo   string `json:"day_to"`
}

type ComparePreset struct {
	ID     PresetID    `json:"id"`
	Title  string      `json:"title"`
	ALabel string      `json:"a_label"`
	BLabel string      `json:"b_label"`
	RangeA PresetRange `json:"range_a"`
	RangeB PresetRange `json:"range_b"`
}

func presetRange(r DateRange) PresetRange {
	return PresetRange{DayFrom: r.DayFrom, DayTo: r.DayTo}
}

// ListPresets generates the three fixed comparison presets from the reference
// date. The custom preset carries empty ranges; the client supplies its own.
func ListPresets(reference time.Time) []ComparePreset {
	prevWeek := PreviousWeekRange(reference)
	curWeek := CurrentWeekRange(reference)

	prevMonth := previousMonthRange(reference)
	curMonth := currentMonthRange(reference)

	return []ComparePreset{
		{
			ID:     PresetPrevWeekVsThisWeek,
			Title:  "Week: previous vs current",
			ALabel: fmt.Sprintf("A (%s)", prevWeek.Label),
			BLabel: fmt.Sprintf("B (%s)", curWeek.Label),
			RangeA: presetRange(prevWeek),
			RangeB: presetRange(curWeek),
		},
		{
			ID:     PresetPrevMonthVsThisMonth,
			Title:  "Month: previous vs current",
			ALabel: fmt.Sprintf("A (%s)", prevMonth.Label),
			BLabel: fmt.Sprintf("B (%s)", curMonth.Label),
			RangeA: presetRange(prevMonth),
			RangeB: presetRange(curMonth),
		},
		{
			ID:     PresetCustom,
			Title:  "Custom",
			ALabel: "A (custom)",
			BLabel: "B (custom)",
		},
	}
}

// GetPreset looks a preset up by id, falling back to the first preset for an
// unknown id. Callers holding a stale id still get a renderable screen.
func GetPreset(ctx context.Context, id PresetID, reference time.Time) ComparePreset {
	presets := ListPresets(reference)
	for _, p := range presets {
		if p.ID == id {
			return p
		}
	}
	logger.Debugf(ctx, "unknown compare preset %q, falling back to %q", id, presets[0].ID)
	return presets[0]
}
