package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/store/xpgx"
)

func (s *store) ListActiveLocations(ctx context.Context) ([]*domain.Location, error) {
	query := builder().
		Select("id", "name").
		From(tableLocations).
		Where(sq.Eq{"is_active": true}).
		OrderBy("name asc")

	selected, err := xpgx.Selectx[domain.Location](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

// ListMenuLocations returns active locations that have the menu feed enabled
// and a non-empty feed URL.
func (s *store) ListMenuLocations(ctx context.Context) ([]*domain.MenuLocation, error) {
	query := builder().
		Select("id", "name", "menu_week_rss_url", "menu_source").
		From(tableLocations).
		Where(sq.Eq{"is_active": true}).
		Where(sq.Eq{"menu_enabled": true}).
		Where("menu_week_rss_url is not null").
		Where(sq.NotEq{"menu_week_rss_url": ""}).
		OrderBy("name asc")

	selected, err := xpgx.Selectx[domain.MenuLocation](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}
