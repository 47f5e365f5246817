// Package daterange builds the calendar-aligned day, ISO-week and month ranges
// the comparison reports run over. All day strings use local calendar fields.
package daterange

import (
	"fmt"
	"time"
)

const dayFormat = "2006-01-02"

// DateRange spans whole local days: FromTs is local midnight of DayFrom and
// ToTs is 23:59:59.999 of DayTo.
type DateRange struct {
	DayFrom string    `json:"day_from"`
	DayTo   string    `json:"day_to"`
	Label   string    `json:"label"`
	FromTs  time.Time `json:"from_ts"`
	ToTs    time.Time `json:"to_ts"`
}

// Finnish month names, the app renders labels in fi-FI.
var monthNames = [12]string{
	"tammikuu", "helmikuu", "maaliskuu", "huhtikuu", "toukokuu", "kesäkuu",
	"heinäkuu", "elokuu", "syyskuu", "lokakuu", "marraskuu", "joulukuu",
}

func toYMD(t time.Time) string {
	return t.Format(dayFormat)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// isoWeekday returns 1 for Monday through 7 for Sunday.
func isoWeekday(t time.Time) int {
	d := int(t.Weekday())
	if d == 0 {
		return 7
	}
	return d
}

func dayMonthLabel(t time.Time) string {
	return fmt.Sprintf("%d.%d", t.Day(), int(t.Month()))
}

func fullDateLabel(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[int(t.Month())-1], t.Year())
}

// BuildDayRange covers a single calendar day.
func BuildDayRange(date time.Time) DateRange {
	start := startOfDay(date)
	end := endOfDay(date)
	return DateRange{
		DayFrom: toYMD(start),
		DayTo:   toYMD(start),
		Label:   fullDateLabel(start),
		FromTs:  start,
		ToTs:    end,
	}
}

// BuildMonthRange covers the first through last day of a month. monthIndex0 is
// zero-based, matching the picker wheel in the app.
func BuildMonthRange(year, monthIndex0 int) DateRange {
	first := time.Date(year, time.Month(monthIndex0+1), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	start := startOfDay(first)
	end := endOfDay(last)
	return DateRange{
		DayFrom: toYMD(start),
		DayTo:   toYMD(end),
		Label:   monthLabel(first),
		FromTs:  start,
		ToTs:    end,
	}
}

// BuildIsoWeekRange covers the Monday-start ISO week. Week 1 is the week
// containing January 4th; the Monday of week n is that Monday plus (n-1)*7 days.
func BuildIsoWeekRange(year, week int) DateRange {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.Local)
	mondayWeek1 := jan4.AddDate(0, 0, -(isoWeekday(jan4) - 1))

	from := mondayWeek1.AddDate(0, 0, (week-1)*7)
	to := from.AddDate(0, 0, 6)

	start := startOfDay(from)
	end := endOfDay(to)
	return DateRange{
		DayFrom: toYMD(start),
		DayTo:   toYMD(end),
		Label:   fmt.Sprintf("%s – %s.%d (week %d)", dayMonthLabel(from), dayMonthLabel(to), year, week),
		FromTs:  start,
		ToTs:    end,
	}
}

func startOfISOWeek(t time.Time) time.Time {
	return startOfDay(t.AddDate(0, 0, -(isoWeekday(t) - 1)))
}

// CurrentWeekRange is the Monday-start week containing the reference date.
func CurrentWeekRange(reference time.Time) DateRange {
	from := startOfISOWeek(reference)
	to := from.AddDate(0, 0, 6)
	return DateRange{
		DayFrom: toYMD(from),
		DayTo:   toYMD(to),
		Label:   fmt.Sprintf("%s - %s", fullDateLabel(from), fullDateLabel(to)),
		FromTs:  from,
		ToTs:    endOfDay(to),
	}
}

// PreviousWeekRange is the week exactly seven days before the reference date.
func PreviousWeekRange(reference time.Time) DateRange {
	return CurrentWeekRange(reference.AddDate(0, 0, -7))
}

func currentMonthRange(reference time.Time) DateRange {
	return BuildMonthRange(reference.Year(), int(reference.Month())-1)
}

func previousMonthRange(reference time.Time) DateRange {
	prev := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location()).AddDate(0, -1, 0)
	return BuildMonthRange(prev.Year(), int(prev.Month())-1)
}
