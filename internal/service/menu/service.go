// Package menu turns per-location RSS lunch feeds into structured weekly
// menus, cached per feed URL.
package menu

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/cache"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/logger"
)

type LocationsStore interface {
	ListMenuLocations(ctx context.Context) ([]*domain.MenuLocation, error)
}

type Service struct {
	store  LocationsStore
	cache  cache.Cache
	client *http.Client
	ttl    time.Duration
	now    func() time.Time
}

func NewService(locationsStore LocationsStore, menuCache cache.Cache, ttl time.Duration) *Service {
	return &Service{
		store:  locationsStore,
		cache:  menuCache,
		client: &http.Client{Timeout: 15 * time.Second},
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Service) Locations(ctx context.Context) ([]*domain.MenuLocation, error) {
	locations, err := s.store.ListMenuLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu locations: %w", err)
	}
	return locations, nil
}

// WeeklyMenu returns the structured menu for a location, serving from cache
// when a fresh entry exists for the location's feed URL.
func (s *Service) WeeklyMenu(ctx context.Context, locationID string) (*domain.WeeklyMenu, error) {
	locations, err := s.store.ListMenuLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu locations: %w", err)
	}

	var location *domain.MenuLocation
	for _, l := range locations {
		if l.ID == locationID {
			location = l
			break
		}
	}
	if location == nil {
		return nil, constants.ErrDBNotFound
	}
	if location.MenuWeekRSSURL == "" {
		return nil, constants.NewValidationError("the RSS URL is missing from the selected location")
	}

	var cached domain.WeeklyMenu
	if err := s.cache.Get(ctx, location.MenuWeekRSSURL, &cached); err == nil {
		return &cached, nil
	}

	feedXML, err := s.fetchFeed(ctx, location.MenuWeekRSSURL)
	if err != nil {
		return nil, err
	}

	weekly := MapToWeeklyMenu(location.Name, ParseFeedItems(feedXML), s.now())

	if err := s.cache.Set(ctx, location.MenuWeekRSSURL, weekly, s.ttl); err != nil {
		logger.Warnf(ctx, "menu cache set for %s: %s", location.MenuWeekRSSURL, err)
	}

	return weekly, nil
}

func (s *Service) fetchFeed(ctx context.Context, url string) (string, error) {
	var body []byte

	err := backoff.Retry(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return backoff.Permanent(err)
			}
			req.Header.Set("Cache-Control", "no-cache")

			resp, err := s.client.Do(req)
			if err != nil {
				return fmt.Errorf("get feed: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			body, err = io.ReadAll(resp.Body)
			return err
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 3),
			ctx,
		),
	)
	if err != nil {
		return "", constants.NewCodedError(http.StatusBadGateway, fmt.Sprintf("menu feed fetch failed: %s", err))
	}

	feedXML := string(body)
	lower := strings.ToLower(feedXML)
	if !strings.Contains(lower, "<rss") && !strings.Contains(lower, "<feed") {
		return "", constants.ErrNotAFeed
	}
	return feedXML, nil
}
