// Package selection resolves the picker's selection token into a concrete
// query scope.
package selection

import (
	"context"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/logger"
)

type FavoritesStore interface {
	GetFavoriteDetails(ctx context.Context, favoriteID string) (*domain.FavoriteDetails, error)
}

// Scope is the resolved {locations, waste types} pair that bounds a query.
type Scope struct {
	Label       string             `json:"label"`
	LocationIDs []string           `json:"location_ids"`
	WasteTypes  []domain.WasteType `json:"waste_types"`
	IsFavorite  bool               `json:"is_favorite"`
}

// neutralScope renders as a "no data" screen: nothing selected, full type set.
func neutralScope() Scope {
	return Scope{
		LocationIDs: []string{},
		WasteTypes:  domain.AllWasteTypes(),
	}
}

type Resolver struct {
	store FavoritesStore
}

func NewResolver(favoritesStore FavoritesStore) *Resolver {
	return &Resolver{store: favoritesStore}
}

// Resolve turns a selection token into a scope. A favorite whose stored
// waste-type list normalizes to empty gets the full enumeration, and a
// failing favorite lookup falls back to the neutral scope instead of
// propagating the error, so the screen still renders.
func (r *Resolver) Resolve(ctx context.Context, token string, locations []*domain.Location, favorites []*domain.Favorite) Scope {
	sel, err := domain.ParseSelection(token)
	if err != nil {
		return neutralScope()
	}

	switch sel.Kind {
	case domain.SelectionLocation:
		scope := neutralScope()
		scope.Label = locationName(locations, sel.ID)
		scope.LocationIDs = []string{sel.ID}
		return scope

	case domain.SelectionFavorite:
		scope := neutralScope()
		scope.Label = favoriteName(favorites, sel.ID)

		details, err := r.store.GetFavoriteDetails(ctx, sel.ID)
		if err != nil {
			logger.Warnf(ctx, "favorite %s details lookup failed, resetting scope: %s", sel.ID, err)
			return scope
		}

		picked := domain.NormalizeWasteTypes(details.WasteTypes)
		if len(picked) == 0 {
			picked = domain.AllWasteTypes()
		}
		scope.LocationIDs = details.LocationIDs
		scope.WasteTypes = picked
		scope.IsFavorite = true
		return scope
	}

	return neutralScope()
}

func locationName(locations []*domain.Location, id string) string {
	for _, l := range locations {
		if l.ID == id {
			return l.Name
		}
	}
	return ""
}

func favoriteName(favorites []*domain.Favorite, id string) string {
	for _, f := range favorites {
		if f.ID == id {
			return f.Name
		}
	}
	return ""
}
