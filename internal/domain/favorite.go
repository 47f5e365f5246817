package domain

// Favorite is a named, owner-scoped saved combination of locations and waste
// types, used to quickly re-run reports.
type Favorite struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// FavoriteDetails holds the stored scope of a favorite. WasteTypes is raw text
// as persisted; normalize before use.
type FavoriteDetails struct {
	LocationIDs []string `json:"location_ids"`
	WasteTypes  []string `json:"waste_types"`
}
