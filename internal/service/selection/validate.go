package selection

import "github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"

// Validate checks that an externally-held token still refers to an existing
// location or favorite. A stale or unparseable token falls back to the first
// location when defaultToFirst is set, otherwise clears the selection.
func Validate(token string, locations []*domain.Location, favorites []*domain.Favorite, defaultToFirst bool) string {
	if token == "" {
		return fallback(locations, defaultToFirst)
	}

	sel, err := domain.ParseSelection(token)
	if err != nil {
		return fallback(locations, defaultToFirst)
	}

	if exists(sel, locations, favorites) {
		return token
	}
	// viimeksi katsottu ei ole enää olemassa -> fallback
	return fallback(locations, defaultToFirst)
}

func exists(sel domain.Selection, locations []*domain.Location, favorites []*domain.Favorite) bool {
	if sel.Kind == domain.SelectionLocation {
		for _, l := range locations {
			if l.ID == sel.ID {
				return true
			}
		}
		return false
	}
	for _, f := range favorites {
		if f.ID == sel.ID {
			return true
		}
	}
	return false
}

func fallback(locations []*domain.Location, defaultToFirst bool) string {
	if defaultToFirst && len(locations) > 0 {
		return domain.Selection{Kind: domain.SelectionLocation, ID: locations[0].ID}.Token()
	}
	return ""
}
