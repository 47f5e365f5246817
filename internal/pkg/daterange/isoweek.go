package daterange

import "time"

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// IsoWeeksInYear returns 53 when January 1st falls on a Thursday, or on a
// Wednesday in a leap year; otherwise 52.
func IsoWeeksInYear(year int) int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	switch iso := isoWeekday(jan1); {
	case iso == 4:
		return 53
	case iso == 3 && isLeapYear(year):
		return 53
	default:
		return 52
	}
}

// ClampWeek bounds a stored week number when the year changes under it.
func ClampWeek(year, week int) int {
	if week < 1 {
		return 1
	}
	if max := IsoWeeksInYear(year); week > max {
		return max
	}
	return week
}
