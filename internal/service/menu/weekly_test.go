package menu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
)

func TestSplitToLines(t *testing.T) {
	t.Run("br and p breaks", func(t *testing.T) {
		lines := splitToLines(`<p>Keitto:</p>Hernekeitto<br/>Pannukakku<br>hilloa`)
		assert.Equal(t, []string{"Keitto:", "Hernekeitto", "Pannukakku", "hilloa"}, lines)
	})

	t.Run("markup is dropped and whitespace collapsed", func(t *testing.T) {
		lines := splitToLines("<div><strong>Kasvis:</strong>  herne   keitto</div>")
		assert.Equal(t, []string{"Kasvis: herne keitto"}, lines)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, splitToLines("  \n  "))
	})
}

func TestGroupIntoSections(t *testing.T) {
	t.Run("header lines start sections", func(t *testing.T) {
		sections := groupIntoSections([]string{"Soup:", "Pea soup", "Pancake:", "With jam"})

		require.Len(t, sections, 2)
		assert.Equal(t, domain.MenuSection{Title: "Soup", Items: []string{"Pea soup"}}, sections[0])
		assert.Equal(t, domain.MenuSection{Title: "Pancake", Items: []string{"With jam"}}, sections[1])
	})

	t.Run("lines before the first header get a default section", func(t *testing.T) {
		sections := groupIntoSections([]string{"Hernekeitto", "Keitto:", "Kalakeitto"})

		require.Len(t, sections, 2)
		assert.Equal(t, "Menu", sections[0].Title)
		assert.Equal(t, []string{"Hernekeitto"}, sections[0].Items)
	})

	t.Run("no lines yields the placeholder", func(t *testing.T) {
		sections := groupIntoSections(nil)

		require.Len(t, sections, 1)
		assert.Equal(t, "No information", sections[0].Title)
	})
}

func TestMapToWeeklyMenu(t *testing.T) {
	fetchedAt := time.Date(2024, time.February, 12, 9, 0, 0, 0, time.UTC)

	t.Run("matches items to weekdays by title", func(t *testing.T) {
		items := []RssItem{
			{Title: "Ma 12.2", Description: "Soup:<br>Pea soup<br>Pancake:<br>With jam"},
			{Title: "Tiistai", Description: "Lohikeitto"},
		}

		weekly := MapToWeeklyMenu("Keskuskeittiö", items, fetchedAt)

		assert.Equal(t, "Keskuskeittiö", weekly.LocationName)
		assert.Equal(t, fetchedAt, weekly.FetchedAt)
		require.Len(t, weekly.Days, 5)

		mon := weekly.Days[domain.WeekdayMon]
		require.Len(t, mon.Sections, 2)
		assert.Equal(t, domain.MenuSection{Title: "Soup", Items: []string{"Pea soup"}}, mon.Sections[0])
		assert.Equal(t, domain.MenuSection{Title: "Pancake", Items: []string{"With jam"}}, mon.Sections[1])

		tue := weekly.Days[domain.WeekdayTue]
		require.Len(t, tue.Sections, 1)
		assert.Equal(t, []string{"Lohikeitto"}, tue.Sections[0].Items)
	})

	t.Run("weekday without an item gets the placeholder", func(t *testing.T) {
		weekly := MapToWeeklyMenu("Keskuskeittiö", nil, fetchedAt)

		for _, wd := range domain.Weekdays {
			day := weekly.Days[wd.Key]
			require.Lenf(t, day.Sections, 1, "weekday %s", wd.Key)
			assert.Equal(t, "No information", day.Sections[0].Title)
			assert.Equal(t, []string{"Menu not available."}, day.Sections[0].Items)
		}
	})

	t.Run("falls back to description lines when titles do not name days", func(t *testing.T) {
		items := []RssItem{
			{Title: "Viikon lounas", Description: "Keskiviikko<br>Kasvispihvit"},
		}

		weekly := MapToWeeklyMenu("Keskuskeittiö", items, fetchedAt)

		wed := weekly.Days[domain.WeekdayWed]
		require.NotEmpty(t, wed.Sections)
		assert.Contains(t, wed.Sections[0].Items, "Kasvispihvit")

		// Days the description never mentions stay unavailable.
		assert.Equal(t, "No information", weekly.Days[domain.WeekdayFri].Sections[0].Title)
	})

	t.Run("english weekday abbreviations", func(t *testing.T) {
		items := []RssItem{{Title: "Thu lunch", Description: "Chicken curry"}}

		weekly := MapToWeeklyMenu("Campus", items, fetchedAt)

		assert.Equal(t, []string{"Chicken curry"}, weekly.Days[domain.WeekdayThu].Sections[0].Items)
	})
}
