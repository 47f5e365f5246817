// Package favorites manages the saved report scopes.
package favorites

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/store"
)

type Store interface {
	ListFavorites(ctx context.Context, ownerID string) ([]*domain.Favorite, error)
	GetFavoriteDetails(ctx context.Context, favoriteID string) (*domain.FavoriteDetails, error)
	InsertFavorite(ctx context.Context, opts store.InsertFavoriteOpts) (string, error)
	DeleteFavorite(ctx context.Context, favoriteID, ownerID string) error
}

type Service struct {
	store Store
}

func NewService(favoritesStore Store) *Service {
	return &Service{store: favoritesStore}
}

func (s *Service) List(ctx context.Context, ownerID string) ([]*domain.Favorite, error) {
	favorites, err := s.store.ListFavorites(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

func (s *Service) Details(ctx context.Context, favoriteID string) (*domain.FavoriteDetails, error) {
	details, err := s.store.GetFavoriteDetails(ctx, favoriteID)
	if err != nil {
		return nil, fmt.Errorf("favorite details: %w", err)
	}
	return details, nil
}

// Save validates and persists a new favorite, returning its generated id.
func (s *Service) Save(ctx context.Context, ownerID, name string, locationIDs, wasteTypes []string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) < 2 {
		return "", constants.NewValidationError("name your favorite (at least 2 characters)")
	}
	if len(locationIDs) == 0 {
		return "", constants.NewValidationError("select at least one location")
	}

	picked := domain.NormalizeWasteTypes(wasteTypes)
	if len(picked) == 0 {
		return "", constants.NewValidationError("select at least one waste type")
	}
	normalized := make([]string, len(picked))
	for i, wt := range picked {
		normalized[i] = string(wt)
	}

	id, err := s.store.InsertFavorite(ctx, store.InsertFavoriteOpts{
		OwnerID:     ownerID,
		Name:        trimmed,
		LocationIDs: locationIDs,
		WasteTypes:  normalized,
	})
	if err != nil {
		return "", fmt.Errorf("save favorite: %w", err)
	}
	return id, nil
}

func (s *Service) Delete(ctx context.Context, favoriteID, ownerID string) error {
	if err := s.store.DeleteFavorite(ctx, favoriteID, ownerID); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}
