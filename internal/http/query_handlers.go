package http

import (
	"cmp"
	"net/http"
	"slices"
	"time"

	"weblog-stats/internal/aggregators"
)

// appHandlerFunc adapts a plain function to AppHttpHandler.
type appHandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f appHandlerFunc) Handle(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

type queryHandlers struct {
	queryService aggregators.QueryService
	// location turns calendar dates of /clients/by-date into instants
	location *time.Location
}

func newQueryHandlers(queryService aggregators.QueryService, location *time.Location) *queryHandlers {
	if location == nil {
		location = time.UTC
	}
	return &queryHandlers{queryService: queryService, location: location}
}

// bounds handles GET /bounds.
func (h *queryHandlers) bounds(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, boundsResponse{
		State:             h.queryService.State(),
		EarliestTimestamp: h.queryService.EarliestTimestamp(),
		LatestTimestamp:   h.queryService.LatestTimestamp(),
	})
	return nil
}

// countClients handles GET /clients/count.
func (h *queryHandlers) countClients(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, countResponse{Count: h.queryService.CountUniqueClients()})
	return nil
}

// clientVisits handles GET /clients/visits, sorted by address.
func (h *queryHandlers) clientVisits(w http.ResponseWriter, r *http.Request) error {
	counts := h.queryService.VisitsPerClient()
	clients := make([]clientVisits, 0, len(counts))
	for address, visits := range counts {
		clients = append(clients, clientVisits{ClientAddress: address, Visits: visits})
	}
	slices.SortFunc(clients, func(a, b clientVisits) int {
		return cmp.Compare(a.ClientAddress, b.ClientAddress)
	})
	writeJSON(w, http.StatusOK, clientVisitsResponse{Clients: clients})
	return nil
}

// topClients handles GET /clients/top.
func (h *queryHandlers) topClients(w http.ResponseWriter, r *http.Request) error {
	maxVisits, clients := h.queryService.TopClients()
	writeJSON(w, http.StatusOK, topClientsResponse{MaxVisits: maxVisits, Clients: clients})
	return nil
}

// clientsByStatus handles GET /clients/by-status?low=&high=.
func (h *queryHandlers) clientsByStatus(w http.ResponseWriter, r *http.Request) error {
	params, err := bindStatusRange(r)
	if err != nil {
		return err
	}
	clients := h.queryService.UniqueClientsInStatusRange(params.Low, params.High)
	writeJSON(w, http.StatusOK, statusRangeResponse{
		Low:     params.Low,
		High:    params.High,
		Count:   len(clients),
		Clients: clients,
	})
	return nil
}

// clientsByDate handles GET /clients/by-date?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *queryHandlers) clientsByDate(w http.ResponseWriter, r *http.Request) error {
	params, err := bindDateRange(r)
	if err != nil {
		return err
	}
	start, end, err := aggregators.DayRange(params.Start, params.End, h.location)
	if err != nil {
		return errInvalidQueryParams(err.Error(), err)
	}
	writeJSON(w, http.StatusOK, dateRangeResponse{
		Start:   start,
		End:     end,
		Clients: h.queryService.UniqueClientsInDateRange(start, end),
	})
	return nil
}

// recordsAboveStatus handles GET /records/above-status?threshold=.
func (h *queryHandlers) recordsAboveStatus(w http.ResponseWriter, r *http.Request) error {
	params, err := bindThreshold(r)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, recordsResponse{
		Threshold: params.Threshold,
		Records:   h.queryService.RecordsAboveStatus(params.Threshold),
	})
	return nil
}

// days handles GET /days in first-encountered day order.
func (h *queryHandlers) days(w http.ResponseWriter, r *http.Request) error {
	visits := h.queryService.VisitsByCalendarDay()
	days := make([]dayVisits, 0, visits.Len())
	for _, day := range visits.Keys() {
		clients, _ := visits.Get(day)
		days = append(days, dayVisits{Day: day, Visits: len(clients), Clients: clients})
	}
	writeJSON(w, http.StatusOK, daysResponse{Days: days})
	return nil
}

// busiestDay handles GET /days/busiest.
func (h *queryHandlers) busiestDay(w http.ResponseWriter, r *http.Request) error {
	day, visits, found := h.queryService.BusiestDay()
	writeJSON(w, http.StatusOK, busiestDayResponse{Found: found, Day: day, Visits: visits})
	return nil
}

// dayClients handles GET /days/clients?day=Mon%20DD.
func (h *queryHandlers) dayClients(w http.ResponseWriter, r *http.Request) error {
	day, err := bindDay(r)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, dayClientsResponse{Day: day, Clients: h.queryService.UniqueClientsOnCalendarDay(day)})
	return nil
}

// dayTopClients handles GET /days/top-clients?day=Mon%20DD.
func (h *queryHandlers) dayTopClients(w http.ResponseWriter, r *http.Request) error {
	day, err := bindDay(r)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, dayClientsResponse{Day: day, Clients: h.queryService.ClientsWithMostVisitsOnDay(day)})
	return nil
}

// dates handles GET /dates, the year-aware grouping, sorted by date.
func (h *queryHandlers) dates(w http.ResponseWriter, r *http.Request) error {
	byDate := h.queryService.VisitsByDate()
	dates := make([]dateVisits, 0, len(byDate))
	for date, clients := range byDate {
		unique := make(map[string]struct{}, len(clients))
		for _, client := range clients {
			unique[client] = struct{}{}
		}
		dates = append(dates, dateVisits{Date: date, Visits: len(clients), UniqueClients: len(unique)})
	}
	slices.SortFunc(dates, func(a, b dateVisits) int {
		return cmp.Compare(a.Date, b.Date)
	})
	writeJSON(w, http.StatusOK, datesResponse{Dates: dates})
	return nil
}

// agents handles GET /agents.
func (h *queryHandlers) agents(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, agentsResponse{Agents: h.queryService.VisitsPerAgentFamily()})
	return nil
}

// summary handles GET /summary.
func (h *queryHandlers) summary(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, h.queryService.Summary())
	return nil
}
