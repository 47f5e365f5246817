package report

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/store"
)

// RangeBounds carries both day-string and instant bounds of one compared
// range. The instant bound wins when present.
type RangeBounds struct {
	DayFrom string
	DayTo   string
	FromTs  string
	ToTs    string
}

var dayStringRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dayString normalizes an RFC3339 instant to a local YYYY-MM-DD; day strings
// and anything unparseable pass through untouched.
func dayString(input string) string {
	if input == "" || dayStringRe.MatchString(input) {
		return input
	}
	t, err := time.Parse(time.RFC3339, input)
	if err != nil {
		return input
	}
	return t.Local().Format("2006-01-02")
}

func (b RangeBounds) bounds() (string, string) {
	from := b.DayFrom
	if b.FromTs != "" {
		from = b.FromTs
	}
	to := b.DayTo
	if b.ToTs != "" {
		to = b.ToTs
	}
	return dayString(from), dayString(to)
}

type CompareParams struct {
	LocationIDs []string
	WasteTypes  []domain.WasteType
	RangeA      RangeBounds
	RangeB      RangeBounds
}

// Compare fetches both ranges concurrently, aggregates each over the same
// waste-type list and derives the diffs. Either fetch failing fails the whole
// comparison; there is never a partial result.
func (s *Service) Compare(ctx context.Context, params CompareParams) (*domain.ComparisonResult, error) {
	if len(params.LocationIDs) == 0 {
		// No locations selected. Fetching without a location filter would
		// mean "all locations", so short-circuit to an all-zero result.
		return zeroResult(params.WasteTypes), nil
	}

	requested := make([]string, len(params.WasteTypes))
	for i, wt := range params.WasteTypes {
		requested[i] = string(wt)
	}

	var rowsA, rowsB []*domain.TotalsRow

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		from, to := params.RangeA.bounds()
		var err error
		rowsA, err = s.store.SelectTotals(egCtx, store.SelectTotalsOpts{
			LocationIDs: params.LocationIDs,
			WasteTypes:  requested,
			DayFrom:     from,
			DayTo:       to,
		})
		if err != nil {
			return fmt.Errorf("select totals for range A: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		from, to := params.RangeB.bounds()
		var err error
		rowsB, err = s.store.SelectTotals(egCtx, store.SelectTotalsOpts{
			LocationIDs: params.LocationIDs,
			WasteTypes:  requested,
			DayFrom:     from,
			DayTo:       to,
		})
		if err != nil {
			return fmt.Errorf("select totals for range B: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	a := Aggregate(rowsA, params.WasteTypes)
	b := Aggregate(rowsB, params.WasteTypes)

	diff := make(map[domain.WasteType]float64, len(params.WasteTypes))
	for _, wt := range params.WasteTypes {
		diff[wt] = b[wt] - a[wt]
	}

	totalA := a.Sum(params.WasteTypes)
	totalB := b.Sum(params.WasteTypes)

	return &domain.ComparisonResult{
		A:         a,
		B:         b,
		Diff:      diff,
		TotalA:    totalA,
		TotalB:    totalB,
		TotalDiff: totalB - totalA,
		PctChange: domain.PercentChange(totalA, totalB-totalA),
	}, nil
}

func zeroResult(wasteTypes []domain.WasteType) *domain.ComparisonResult {
	return &domain.ComparisonResult{
		A:    Aggregate(nil, wasteTypes),
		B:    Aggregate(nil, wasteTypes),
		Diff: Aggregate(nil, wasteTypes),
	}
}
