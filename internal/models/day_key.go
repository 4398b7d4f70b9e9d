package models

import (
	"fmt"
	"strconv"
	"time"
)

// DayKey is the year-independent calendar day a record falls on, formatted as
// "<month-abbrev> <zero-padded day>", e.g. "Sep 14". Callers exchange day keys in this exact
// format, so it must not change.
//
// Records from the same month and day of different years share one DayKey. Use DateKey when
// years must stay apart.
type DayKey string

// DateKey is the year-aware calendar day a record falls on, formatted as "2006-01-02".
type DateKey string

const (
	dayKeyLayout  = "Jan 02"
	dateKeyLayout = "2006-01-02"
)

var monthsByAbbrev = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// MonthFromAbbrev maps a case-sensitive three-letter month abbreviation to its month.
func MonthFromAbbrev(abbrev string) (time.Month, bool) {
	month, ok := monthsByAbbrev[abbrev]
	return month, ok
}

// DayKeyOf returns the day key of t in t's own location.
func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.Format(dayKeyLayout))
}

// DateKeyOf returns the date key of t in t's own location.
func DateKeyOf(t time.Time) DateKey {
	return DateKey(t.Format(dateKeyLayout))
}

// ParseDayKey validates s as a day key. Day 29 of February is accepted since day keys carry
// no year.
func ParseDayKey(s string) (DayKey, error) {
	if len(s) != len(dayKeyLayout) || s[3] != ' ' {
		return "", fmt.Errorf("day key %q: want format %q", s, "Sep 14")
	}
	month, ok := MonthFromAbbrev(s[:3])
	if !ok {
		return "", fmt.Errorf("day key %q: unknown month %q", s, s[:3])
	}
	day, err := strconv.Atoi(s[4:])
	if err != nil || s[4] < '0' || s[4] > '9' {
		return "", fmt.Errorf("day key %q: invalid day %q", s, s[4:])
	}
	// 2000 is a leap year, so Feb 29 stays valid.
	if day < 1 || day > DaysIn(month, 2000) {
		return "", fmt.Errorf("day key %q: day %d out of range for %s", s, day, month)
	}
	return DayKey(s), nil
}

// DaysIn returns the number of days of month in year.
func DaysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
