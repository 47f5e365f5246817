package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/store/xpgx"
)

func (s *store) InsertWasteReport(ctx context.Context, report *domain.WasteReport) (string, error) {
	id := uuid.NewString()

	query := builder().
		Insert(tableWasteReports).
		Columns("id", "location_id", "created_by", "status", "notes").
		Values(id, report.LocationID, report.CreatedBy, report.Status, report.Notes)

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return "", fmt.Errorf("insert waste report: %w", wrapErr(err))
	}

	itemQuery := builder().
		Insert(tableWasteReportItems).
		Columns("waste_report_id", "waste_type", "kg", "description")
	for _, item := range report.Items {
		itemQuery = itemQuery.Values(id, string(item.WasteType), item.Kg, item.Description)
	}
	if _, err := xpgx.Execx(ctx, s.pool, itemQuery); err != nil {
		return "", fmt.Errorf("insert waste report items: %w", wrapErr(err))
	}

	return id, nil
}
