package menu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/cache"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
)

type mockLocationsStore struct {
	locations []*domain.MenuLocation
	err       error
}

func (m *mockLocationsStore) ListMenuLocations(context.Context) ([]*domain.MenuLocation, error) {
	return m.locations, m.err
}

const testFeed = `<?xml version="1.0"?>
<rss version="2.0"><channel>
<item><title>Ma 12.2</title><description>Keitto:&lt;br&gt;Hernekeitto</description></item>
</channel></rss>`

func TestWeeklyMenu(t *testing.T) {
	t.Run("fetches, parses and caches by feed URL", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests.Add(1)
			_, _ = w.Write([]byte(testFeed))
		}))
		defer server.Close()

		store := &mockLocationsStore{locations: []*domain.MenuLocation{
			{ID: "loc-1", Name: "Keskuskeittiö", MenuWeekRSSURL: server.URL},
		}}
		svc := NewService(store, cache.NewMemory(), time.Hour)

		weekly, err := svc.WeeklyMenu(context.Background(), "loc-1")
		require.NoError(t, err)
		assert.Equal(t, "Keskuskeittiö", weekly.LocationName)

		mon := weekly.Days[domain.WeekdayMon]
		require.NotEmpty(t, mon.Sections)
		assert.Equal(t, "Keitto", mon.Sections[0].Title)
		assert.Equal(t, []string{"Hernekeitto"}, mon.Sections[0].Items)

		// Second call within the TTL is served from cache.
		again, err := svc.WeeklyMenu(context.Background(), "loc-1")
		require.NoError(t, err)
		assert.Equal(t, weekly.LocationName, again.LocationName)
		assert.Equal(t, int32(1), requests.Load())
	})

	t.Run("unknown location", func(t *testing.T) {
		svc := NewService(&mockLocationsStore{}, cache.NewMemory(), time.Hour)

		_, err := svc.WeeklyMenu(context.Background(), "missing")
		assert.ErrorIs(t, err, constants.ErrDBNotFound)
	})

	t.Run("location without a feed URL", func(t *testing.T) {
		store := &mockLocationsStore{locations: []*domain.MenuLocation{
			{ID: "loc-1", Name: "Keskuskeittiö"},
		}}
		svc := NewService(store, cache.NewMemory(), time.Hour)

		_, err := svc.WeeklyMenu(context.Background(), "loc-1")
		require.Error(t, err)

		var coded *constants.CodedError
		require.ErrorAs(t, err, &coded)
		assert.Equal(t, http.StatusBadRequest, coded.Code())
	})

	t.Run("non-feed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html><body>maintenance</body></html>"))
		}))
		defer server.Close()

		store := &mockLocationsStore{locations: []*domain.MenuLocation{
			{ID: "loc-1", Name: "Keskuskeittiö", MenuWeekRSSURL: server.URL},
		}}
		svc := NewService(store, cache.NewMemory(), time.Hour)

		_, err := svc.WeeklyMenu(context.Background(), "loc-1")
		assert.ErrorIs(t, err, constants.ErrNotAFeed)
	})
}
