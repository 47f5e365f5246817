package domain

type Location struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// MenuLocation is a location with the cafeteria menu feed enabled.
type MenuLocation struct {
	ID             string  `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	MenuWeekRSSURL string  `db:"menu_week_rss_url" json:"menu_week_rss_url"`
	MenuSource     *string `db:"menu_source" json:"menu_source"`
}
