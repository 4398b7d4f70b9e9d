package aggregators

import (
	"time"

	"weblog-stats/internal/models"
)

// Summary gathers the headline statistics of a loaded log.
type Summary struct {
	TotalRecords  int      `json:"totalRecords"`
	UniqueClients int      `json:"uniqueClients"`
	MaxVisits     int      `json:"maxVisits"`
	TopClients    []string `json:"topClients"`
	ActiveDays    int      `json:"activeDays"`

	BusiestDay       models.DayKey `json:"busiestDay,omitempty"`
	BusiestDayVisits int           `json:"busiestDayVisits"`
	// TopClientsOnBusiestDay are the addresses with TopVisitsOnBusiestDay visits on BusiestDay.
	TopClientsOnBusiestDay []string `json:"topClientsOnBusiestDay"`
	TopVisitsOnBusiestDay  int      `json:"topVisitsOnBusiestDay"`

	EarliestTimestamp *time.Time `json:"earliestTimestamp"`
	LatestTimestamp   *time.Time `json:"latestTimestamp"`
}

// Summarize composes the per-client and per-day queries into one Summary.
func Summarize(records []models.LogRecord, earliest, latest *time.Time) Summary {
	counts := VisitsPerClient(records)
	days := VisitsByCalendarDay(records)

	summary := Summary{
		TotalRecords:           len(records),
		UniqueClients:          len(counts),
		MaxVisits:              MaxVisitCount(counts),
		TopClients:             ClientsWithMaxVisits(counts),
		ActiveDays:             days.Len(),
		TopClientsOnBusiestDay: []string{},
		EarliestTimestamp:      earliest,
		LatestTimestamp:        latest,
	}

	busiest, ok := BusiestDay(days)
	if !ok {
		return summary
	}
	summary.BusiestDay = busiest
	summary.BusiestDayVisits = days.VisitCount(busiest)
	summary.TopClientsOnBusiestDay = ClientsWithMostVisitsOnDay(days, busiest)

	addresses, _ := days.Get(busiest)
	summary.TopVisitsOnBusiestDay = MaxVisitCount(countAddresses(addresses))

	return summary
}
