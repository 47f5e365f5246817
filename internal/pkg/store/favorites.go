package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/store/xpgx"
)

type InsertFavoriteOpts struct {
	OwnerID     string
	Name        string
	LocationIDs []string
	WasteTypes  []string
}

func (s *store) ListFavorites(ctx context.Context, ownerID string) ([]*domain.Favorite, error) {
	query := builder().
		Select("id", "name").
		From(tableReportFavorites).
		Where(sq.Eq{"owner_uid": ownerID}).
		OrderBy("created_at desc")

	selected, err := xpgx.Selectx[domain.Favorite](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

type favoriteLocationRow struct {
	LocationID string `db:"location_id"`
}

type favoriteWasteTypeRow struct {
	WasteType string `db:"waste_type"`
}

func (s *store) GetFavoriteDetails(ctx context.Context, favoriteID string) (*domain.FavoriteDetails, error) {
	locQuery := builder().
		Select("location_id").
		From(tableFavoriteLocations).
		Where(sq.Eq{"favorite_id": favoriteID})

	locRows, err := xpgx.Selectx[favoriteLocationRow](ctx, s.pool, locQuery)
	if err != nil {
		return nil, wrapErr(err)
	}

	typeQuery := builder().
		Select("waste_type").
		From(tableFavoriteWasteTypes).
		Where(sq.Eq{"favorite_id": favoriteID})

	typeRows, err := xpgx.Selectx[favoriteWasteTypeRow](ctx, s.pool, typeQuery)
	if err != nil {
		return nil, wrapErr(err)
	}

	details := &domain.FavoriteDetails{
		LocationIDs: make([]string, 0, len(locRows)),
		WasteTypes:  make([]string, 0, len(typeRows)),
	}
	for _, row := range locRows {
		details.LocationIDs = append(details.LocationIDs, row.LocationID)
	}
	for _, row := range typeRows {
		details.WasteTypes = append(details.WasteTypes, row.WasteType)
	}
	return details, nil
}

func (s *store) InsertFavorite(ctx context.Context, opts InsertFavoriteOpts) (string, error) {
	id := uuid.NewString()

	query := builder().
		Insert(tableReportFavorites).
		Columns("id", "owner_uid", "name").
		Values(id, opts.OwnerID, opts.Name)

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return "", fmt.Errorf("insert favorite: %w", wrapErr(err))
	}

	locQuery := builder().
		Insert(tableFavoriteLocations).
		Columns("favorite_id", "location_id")
	for _, locationID := range opts.LocationIDs {
		locQuery = locQuery.Values(id, locationID)
	}
	if _, err := xpgx.Execx(ctx, s.pool, locQuery); err != nil {
		return "", fmt.Errorf("insert favorite locations: %w", wrapErr(err))
	}

	typeQuery := builder().
		Insert(tableFavoriteWasteTypes).
		Columns("favorite_id", "waste_type")
	for _, wasteType := range opts.WasteTypes {
		typeQuery = typeQuery.Values(id, wasteType)
	}
	if _, err := xpgx.Execx(ctx, s.pool, typeQuery); err != nil {
		return "", fmt.Errorf("insert favorite waste types: %w", wrapErr(err))
	}

	return id, nil
}

func (s *store) DeleteFavorite(ctx context.Context, favoriteID, ownerID string) error {
	query := builder().
		Delete(tableReportFavorites).
		Where(sq.Eq{"id": favoriteID}).
		Where(sq.Eq{"owner_uid": ownerID})

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}
	return nil
}
