package menu

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
)

// Three spelling variants per weekday: Finnish abbreviation, full Finnish,
// English. Titles look like "Ma 12.2" or "Keskiviikko".
var dayPatterns = map[domain.WeekdayKey][]*regexp.Regexp{
	domain.WeekdayMon: {
		regexp.MustCompile(`(?i)^ma\b`),
		regexp.MustCompile(`(?i)^maanantai\b`),
		regexp.MustCompile(`(?i)^mon(day)?\b`),
	},
	domain.WeekdayTue: {
		regexp.MustCompile(`(?i)^ti\b`),
		regexp.MustCompile(`(?i)^tiistai\b`),
		regexp.MustCompile(`(?i)^tue(sday)?\b`),
	},
	domain.WeekdayWed: {
		regexp.MustCompile(`(?i)^ke\b`),
		regexp.MustCompile(`(?i)^keskiviikko\b`),
		regexp.MustCompile(`(?i)^wed(nesday)?\b`),
	},
	domain.WeekdayThu: {
		regexp.MustCompile(`(?i)^to\b`),
		regexp.MustCompile(`(?i)^torstai\b`),
		regexp.MustCompile(`(?i)^thu(rsday)?\b`),
	},
	domain.WeekdayFri: {
		regexp.MustCompile(`(?i)^pe\b`),
		regexp.MustCompile(`(?i)^perjantai\b`),
		regexp.MustCompile(`(?i)^fri(day)?\b`),
	},
}

var (
	brTagRe         = regexp.MustCompile(`(?i)<br\s*/?>`)
	pCloseRe        = regexp.MustCompile(`(?i)</p>`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	sectionHeaderRe = regexp.MustCompile(`^(.{2,40}):\s*$`)
)

// splitToLines strips the HTML of a feed description down to non-empty text
// lines. <br> and </p> become line breaks, all other markup is dropped.
func splitToLines(description string) []string {
	withBreaks := pCloseRe.ReplaceAllString(brTagRe.ReplaceAllString(description, "\n"), "\n")

	text := withBreaks
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(withBreaks)); err == nil {
		text = doc.Text()
	}

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(whitespaceRe.ReplaceAllString(raw, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// groupIntoSections splits lines at `"Header:"` lines; everything until the
// next header belongs to the current section.
func groupIntoSections(lines []string) []domain.MenuSection {
	var sections []domain.MenuSection
	current := -1

	for _, line := range lines {
		if m := sectionHeaderRe.FindStringSubmatch(line); m != nil {
			sections = append(sections, domain.MenuSection{Title: m[1], Items: []string{}})
			current = len(sections) - 1
			continue
		}
		if current == -1 {
			sections = append(sections, domain.MenuSection{Title: "Menu", Items: []string{}})
			current = 0
		}
		sections[current].Items = append(sections[current].Items, line)
	}

	if len(sections) == 0 {
		return notAvailableSections()
	}
	return sections
}

func notAvailableSections() []domain.MenuSection {
	return []domain.MenuSection{{Title: "No information", Items: []string{"Menu not available."}}}
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// findItemForWeekday prefers a title match and falls back to scanning the
// description lines for the same weekday patterns.
func findItemForWeekday(items []RssItem, key domain.WeekdayKey) *RssItem {
	patterns := dayPatterns[key]

	for i := range items {
		if matchesAny(patterns, strings.TrimSpace(items[i].Title)) {
			return &items[i]
		}
	}

	for i := range items {
		for _, line := range splitToLines(items[i].Description) {
			if matchesAny(patterns, line) {
				return &items[i]
			}
		}
	}

	return nil
}

// MapToWeeklyMenu builds the Monday-to-Friday menu from feed items. A weekday
// with no matching item gets the "not available" placeholder section.
func MapToWeeklyMenu(locationName string, items []RssItem, fetchedAt time.Time) *domain.WeeklyMenu {
	days := make(map[domain.WeekdayKey]domain.MenuDay, len(domain.Weekdays))

	for _, wd := range domain.Weekdays {
		item := findItemForWeekday(items, wd.Key)

		sections := notAvailableSections()
		if item != nil {
			if lines := splitToLines(item.Description); len(lines) > 0 {
				sections = groupIntoSections(lines)
			}
		}

		days[wd.Key] = domain.MenuDay{Weekday: wd.Key, Sections: sections}
	}

	return &domain.WeeklyMenu{
		LocationName: locationName,
		Days:         days,
		FetchedAt:    fetchedAt,
	}
}
