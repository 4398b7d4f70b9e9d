package http

import (
	"encoding/json"
	"net/http"
	"time"

	"weblog-stats/internal/aggregators"
	"weblog-stats/internal/models"
)

type boundsResponse struct {
	State             aggregators.State `json:"state"`
	EarliestTimestamp *time.Time        `json:"earliestTimestamp"`
	LatestTimestamp   *time.Time        `json:"latestTimestamp"`
}

type countResponse struct {
	Count int `json:"count"`
}

type clientVisits struct {
	ClientAddress string `json:"clientAddress"`
	Visits        int    `json:"visits"`
}

type clientVisitsResponse struct {
	Clients []clientVisits `json:"clients"`
}

type topClientsResponse struct {
	MaxVisits int      `json:"maxVisits"`
	Clients   []string `json:"clients"`
}

type statusRangeResponse struct {
	Low     int      `json:"low"`
	High    int      `json:"high"`
	Count   int      `json:"count"`
	Clients []string `json:"clients"`
}

type dateRangeResponse struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Clients []string  `json:"clients"`
}

type recordsResponse struct {
	Threshold int                `json:"threshold"`
	Records   []models.LogRecord `json:"records"`
}

type dayVisits struct {
	Day     models.DayKey `json:"day"`
	Visits  int           `json:"visits"`
	Clients []string      `json:"clients"`
}

type daysResponse struct {
	Days []dayVisits `json:"days"`
}

type busiestDayResponse struct {
	Found  bool          `json:"found"`
	Day    models.DayKey `json:"day,omitempty"`
	Visits int           `json:"visits"`
}

type dayClientsResponse struct {
	Day     models.DayKey `json:"day"`
	Clients []string      `json:"clients"`
}

type dateVisits struct {
	Date          models.DateKey `json:"date"`
	Visits        int            `json:"visits"`
	UniqueClients int            `json:"uniqueClients"`
}

type datesResponse struct {
	Dates []dateVisits `json:"dates"`
}

type agentsResponse struct {
	Agents map[string]int `json:"agents"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
