package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/store"
)

type mockStore struct {
	listFavorites      func(ownerID string) ([]*domain.Favorite, error)
	getFavoriteDetails func(favoriteID string) (*domain.FavoriteDetails, error)
	insertFavorite     func(opts store.InsertFavoriteOpts) (string, error)
	deleteFavorite     func(favoriteID, ownerID string) error
}

func (m *mockStore) ListFavorites(_ context.Context, ownerID string) ([]*domain.Favorite, error) {
	return m.listFavorites(ownerID)
}

func (m *mockStore) GetFavoriteDetails(_ context.Context, favoriteID string) (*domain.FavoriteDetails, error) {
	return m.getFavoriteDetails(favoriteID)
}

func (m *mockStore) InsertFavorite(_ context.Context, opts store.InsertFavoriteOpts) (string, error) {
	return m.insertFavorite(opts)
}

func (m *mockStore) DeleteFavorite(_ context.Context, favoriteID, ownerID string) error {
	return m.deleteFavorite(favoriteID, ownerID)
}

func TestSave(t *testing.T) {
	t.Run("persists a normalized favorite", func(t *testing.T) {
		var inserted store.InsertFavoriteOpts
		svc := NewService(&mockStore{insertFavorite: func(opts store.InsertFavoriteOpts) (string, error) {
			inserted = opts
			return "fav-1", nil
		}})

		id, err := svc.Save(context.Background(), "user-1", "  Omat kohteet  ", []string{"loc-1"}, []string{"bio", "Mixed"})

		require.NoError(t, err)
		assert.Equal(t, "fav-1", id)
		assert.Equal(t, "user-1", inserted.OwnerID)
		assert.Equal(t, "Omat kohteet", inserted.Name)
		assert.Equal(t, []string{"loc-1"}, inserted.LocationIDs)
		assert.Equal(t, []string{"BIO", "MIXED"}, inserted.WasteTypes)
	})

	t.Run("name too short", func(t *testing.T) {
		svc := NewService(&mockStore{})

		_, err := svc.Save(context.Background(), "user-1", " a ", []string{"loc-1"}, []string{"bio"})
		assert.EqualError(t, err, "name your favorite (at least 2 characters)")
	})

	t.Run("no locations", func(t *testing.T) {
		svc := NewService(&mockStore{})

		_, err := svc.Save(context.Background(), "user-1", "Omat", nil, []string{"bio"})
		assert.EqualError(t, err, "select at least one location")
	})

	t.Run("no recognizable waste types", func(t *testing.T) {
		svc := NewService(&mockStore{})

		_, err := svc.Save(context.Background(), "user-1", "Omat", []string{"loc-1"}, []string{"styrofoam"})
		assert.EqualError(t, err, "select at least one waste type")
	})
}
