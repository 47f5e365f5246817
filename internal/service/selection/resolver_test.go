package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
)

type mockFavoritesStore struct {
	getFavoriteDetails func(favoriteID string) (*domain.FavoriteDetails, error)
}

func (m *mockFavoritesStore) GetFavoriteDetails(_ context.Context, favoriteID string) (*domain.FavoriteDetails, error) {
	return m.getFavoriteDetails(favoriteID)
}

var (
	testLocations = []*domain.Location{
		{ID: "loc-1", Name: "Keskuskeittiö"},
		{ID: "loc-2", Name: "Kampuksen ravintola"},
	}
	testFavorites = []*domain.Favorite{
		{ID: "fav-1", Name: "Omat kohteet"},
	}
)

func TestResolve(t *testing.T) {
	t.Run("location token", func(t *testing.T) {
		r := NewResolver(&mockFavoritesStore{})

		scope := r.Resolve(context.Background(), "location:loc-2", testLocations, testFavorites)

		assert.Equal(t, "Kampuksen ravintola", scope.Label)
		assert.Equal(t, []string{"loc-2"}, scope.LocationIDs)
		assert.Equal(t, domain.AllWasteTypes(), scope.WasteTypes)
		assert.False(t, scope.IsFavorite)
	})

	t.Run("favorite token loads the stored scope", func(t *testing.T) {
		r := NewResolver(&mockFavoritesStore{getFavoriteDetails: func(id string) (*domain.FavoriteDetails, error) {
			require.Equal(t, "fav-1", id)
			return &domain.FavoriteDetails{
				LocationIDs: []string{"loc-1", "loc-2"},
				WasteTypes:  []string{"bio", "MIXED"},
			}, nil
		}})

		scope := r.Resolve(context.Background(), "favorite:fav-1", testLocations, testFavorites)

		assert.Equal(t, "Omat kohteet", scope.Label)
		assert.Equal(t, []string{"loc-1", "loc-2"}, scope.LocationIDs)
		assert.Equal(t, []domain.WasteType{domain.WasteTypeBio, domain.WasteTypeMixed}, scope.WasteTypes)
		assert.True(t, scope.IsFavorite)
	})

	t.Run("favorite with no stored waste types gets the full set", func(t *testing.T) {
		r := NewResolver(&mockFavoritesStore{getFavoriteDetails: func(string) (*domain.FavoriteDetails, error) {
			return &domain.FavoriteDetails{
				LocationIDs: []string{"loc-1"},
				WasteTypes:  []string{"not-a-type"},
			}, nil
		}})

		scope := r.Resolve(context.Background(), "favorite:fav-1", testLocations, testFavorites)

		assert.Equal(t, domain.AllWasteTypes(), scope.WasteTypes)
	})

	t.Run("failing favorite lookup falls back to a neutral scope", func(t *testing.T) {
		r := NewResolver(&mockFavoritesStore{getFavoriteDetails: func(string) (*domain.FavoriteDetails, error) {
			return nil, errors.New("connection reset")
		}})

		scope := r.Resolve(context.Background(), "favorite:fav-1", testLocations, testFavorites)

		assert.Equal(t, "Omat kohteet", scope.Label)
		assert.Empty(t, scope.LocationIDs)
		assert.Equal(t, domain.AllWasteTypes(), scope.WasteTypes)
		assert.False(t, scope.IsFavorite)
	})

	t.Run("unparseable token resolves to the neutral scope", func(t *testing.T) {
		r := NewResolver(&mockFavoritesStore{})

		for _, token := range []string{"", "loc-1", "location:", "user:abc"} {
			scope := r.Resolve(context.Background(), token, testLocations, testFavorites)
			assert.Emptyf(t, scope.LocationIDs, "token %q", token)
			assert.Equalf(t, domain.AllWasteTypes(), scope.WasteTypes, "token %q", token)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("existing tokens pass through", func(t *testing.T) {
		assert.Equal(t, "location:loc-1", Validate("location:loc-1", testLocations, testFavorites, true))
		assert.Equal(t, "favorite:fav-1", Validate("favorite:fav-1", testLocations, testFavorites, true))
	})

	t.Run("stale token falls back to the first location", func(t *testing.T) {
		got := Validate("favorite:deleted", testLocations, testFavorites, true)
		assert.Equal(t, "location:loc-1", got)
	})

	t.Run("stale token clears without default", func(t *testing.T) {
		assert.Empty(t, Validate("favorite:deleted", testLocations, testFavorites, false))
	})

	t.Run("no locations to fall back to", func(t *testing.T) {
		assert.Empty(t, Validate("location:gone", nil, nil, true))
	})
}
