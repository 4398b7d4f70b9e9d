package aggregators

import (
	"weblog-stats/internal/models"
)

// VisitsByCalendarDay groups client addresses by "Mon DD", ignoring the year. The same calendar
// day of different years lands in one bucket. Records without timestamp are left out.
func VisitsByCalendarDay(records []models.LogRecord) *models.DayVisits {
	days := models.NewDayVisits()
	for i := range records {
		if !records[i].HasTimestamp() {
			continue
		}
		days.Add(models.DayKeyOf(records[i].Timestamp), records[i].ClientAddress)
	}
	return days
}

// VisitsByDate is the year-aware counterpart of VisitsByCalendarDay, keyed by "2006-01-02".
func VisitsByDate(records []models.LogRecord) map[models.DateKey][]string {
	dates := make(map[models.DateKey][]string)
	for i := range records {
		if !records[i].HasTimestamp() {
			continue
		}
		key := models.DateKeyOf(records[i].Timestamp)
		dates[key] = append(dates[key], records[i].ClientAddress)
	}
	return dates
}

// BusiestDay returns the day with the most visits. Ties go to the lexicographically smallest key.
func BusiestDay(days *models.DayVisits) (models.DayKey, bool) {
	if days == nil || days.Len() == 0 {
		return "", false
	}
	var busiest models.DayKey
	maxVisits := -1
	for _, day := range days.Keys() {
		visits := days.VisitCount(day)
		if visits > maxVisits || (visits == maxVisits && day < busiest) {
			busiest, maxVisits = day, visits
		}
	}
	return busiest, true
}

// ClientsWithMostVisitsOnDay counts visits within day only and returns the addresses tied for the
// maximum, sorted. An absent day yields an empty result.
func ClientsWithMostVisitsOnDay(days *models.DayVisits, day models.DayKey) []string {
	if days == nil {
		return []string{}
	}
	addresses, ok := days.Get(day)
	if !ok {
		return []string{}
	}
	return ClientsWithMaxVisits(countAddresses(addresses))
}

// UniqueClientsOnCalendarDay returns the distinct addresses seen on day in any year.
func UniqueClientsOnCalendarDay(records []models.LogRecord, day models.DayKey) []string {
	set := make(map[string]struct{})
	for i := range records {
		if records[i].HasTimestamp() && models.DayKeyOf(records[i].Timestamp) == day {
			set[records[i].ClientAddress] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func countAddresses(addresses []string) map[string]int {
	counts := make(map[string]int, len(addresses))
	for _, address := range addresses {
		counts[address]++
	}
	return counts
}
