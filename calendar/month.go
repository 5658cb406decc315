package calendar

import (
	"strings"
	"time"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthIndex parses an English month name, case-insensitively.
// Returns 1..12 and true, or false for anything else.
func MonthIndex(name string) (int, bool) {
	needle := strings.TrimSpace(name)
	for i, m := range monthNames {
		if strings.EqualFold(m, needle) {
			return i + 1, true
		}
	}
	return 0, false
}

// NextMonth returns the month name following the given one. December rolls
// over to January; the implied year increment is the caller's concern, since
// month sheets carry no year in their titles.
func NextMonth(name string) (string, bool) {
	idx, ok := MonthIndex(name)
	if !ok {
		return "", false
	}
	return monthNames[idx%12], true
}

// NextWeekdays returns the next count occurrences of the given weekday
// strictly after the from date, one week apart. A from date falling on the
// weekday itself starts the horizon a full week later.
func NextWeekdays(from time.Time, weekday time.Weekday, count int) []time.Time {
	ahead := (int(weekday) - int(from.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	first := from.AddDate(0, 0, ahead)
	dates := make([]time.Time, count)
	for i := range dates {
		dates[i] = first.AddDate(0, 0, 7*i)
	}
	return dates
}
