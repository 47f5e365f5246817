package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
)

const (
	viewWasteTotalsDaily    = "vw_waste_totals_daily"
	tableLocations          = "locations"
	tableReportFavorites    = "report_favorites"
	tableFavoriteLocations  = "report_favorite_locations"
	tableFavoriteWasteTypes = "report_favorite_waste_types"
	tableWasteReports       = "waste_reports"
	tableWasteReportItems   = "waste_report_items"
	tableComplaints         = "complaints"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel builder with Postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
