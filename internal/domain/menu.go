package domain

import "time"

type WeekdayKey string

const (
	WeekdayMon WeekdayKey = "mon"
	WeekdayTue WeekdayKey = "tue"
	WeekdayWed WeekdayKey = "wed"
	WeekdayThu WeekdayKey = "thu"
	WeekdayFri WeekdayKey = "fri"
)

type WeekdayDef struct {
	Key   WeekdayKey `json:"key"`
	Label string     `json:"label"`
}

// Weekdays covers the lunch week only, Monday through Friday.
var Weekdays = []WeekdayDef{
	{Key: WeekdayMon, Label: "Mon"},
	{Key: WeekdayTue, Label: "Tue"},
	{Key: WeekdayWed, Label: "Wed"},
	{Key: WeekdayThu, Label: "Thu"},
	{Key: WeekdayFri, Label: "Fri"},
}

// DefaultWeekdayKey maps weekends to Monday so the menu screen always opens on
// a day that has content.
func DefaultWeekdayKey(now time.Time) WeekdayKey {
	d := now.Weekday()
	if d == time.Sunday || d == time.Saturday {
		return WeekdayMon
	}
	return Weekdays[int(d)-1].Key
}

type MenuSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type MenuDay struct {
	Weekday  WeekdayKey    `json:"weekday"`
	Sections []MenuSection `json:"sections"`
}

type WeeklyMenu struct {
	LocationName string                 `json:"location_name"`
	Days         map[WeekdayKey]MenuDay `json:"days"`
	FetchedAt    time.Time              `json:"fetched_at"`
}
