package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/store/xpgx"
)

// SelectTotalsOpts bounds a totals query. DayFrom/DayTo are inclusive
// YYYY-MM-DD strings; the id and type lists may hold a single element.
type SelectTotalsOpts struct {
	LocationIDs []string
	WasteTypes  []string
	DayFrom     string
	DayTo       string
}

func selectTotalsQuery(opts SelectTotalsOpts) sq.SelectBuilder {
	return builder().
		Select("location_id", "day::text as day", "waste_type", "total_kg").
		From(viewWasteTotalsDaily).
		Where(sq.Eq{"location_id": opts.LocationIDs}).
		Where(sq.Eq{"waste_type": opts.WasteTypes}).
		Where(sq.GtOrEq{"day": opts.DayFrom}).
		Where(sq.LtOrEq{"day": opts.DayTo})
}

func (s *store) SelectTotals(ctx context.Context, opts SelectTotalsOpts) ([]*domain.TotalsRow, error) {
	rows, err := xpgx.Selectx[domain.TotalsRow](ctx, s.pool, selectTotalsQuery(opts))
	if err != nil {
		return nil, wrapErr(err)
	}
	return rows, nil
}
