package aggregators

import (
	"fmt"
	"time"

	"weblog-stats/internal/models"
)

// DateLayout is the calendar date format accepted by DayRange.
const DateLayout = "2006-01-02"

// UniqueClientsInDateRange returns the distinct addresses with start <= timestamp <= end.
// Timestamps are compared by the wall clock they were logged with, read in start's location, so a
// record falls on the same calendar date here as in its day key. A zero bound or start after end
// yields an empty result.
func UniqueClientsInDateRange(records []models.LogRecord, start, end time.Time) []string {
	if start.IsZero() || end.IsZero() || start.After(end) {
		return []string{}
	}
	loc := start.Location()
	set := make(map[string]struct{})
	for i := range records {
		if !records[i].HasTimestamp() {
			continue
		}
		ts := wallClockIn(records[i].Timestamp, loc)
		if !ts.Before(start) && !ts.After(end) {
			set[records[i].ClientAddress] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func wallClockIn(ts time.Time, loc *time.Location) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), loc)
}

// DayRange turns two calendar dates into the first instant of startDate and the last instant of
// endDate in loc. Dates that do not exist, like 2015-02-30, are rejected rather than rolled over.
func DayRange(startDate, endDate string, loc *time.Location) (start, end time.Time, err error) {
	if loc == nil {
		loc = time.UTC
	}
	first, err := time.ParseInLocation(DateLayout, startDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start %q", ErrInvalidDate, startDate)
	}
	last, err := time.ParseInLocation(DateLayout, endDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %q", ErrInvalidDate, endDate)
	}

	start = time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, loc)
	end = time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), loc)
	return start, end, nil
}
