package aggregators

import (
	"time"

	"weblog-stats/internal/models"
	"weblog-stats/internal/stores"
)

type State string

const (
	StateEmpty  State = "empty"
	StateLoaded State = "loaded"
)

// QueryService answers every query against the current record store snapshot. Before the first
// load all queries return zero counts and empty collections.
//
//go:generate mockgen -source=query_service.go -destination=./mocks/query_service_mock.go -package=mocks
type QueryService interface {
	State() State
	EarliestTimestamp() *time.Time
	LatestTimestamp() *time.Time

	CountUniqueClients() int
	VisitsPerClient() map[string]int
	// MaxVisitCount and ClientsWithMaxVisits apply to VisitsPerClient.
	MaxVisitCount() int
	ClientsWithMaxVisits() []string
	// TopClients answers MaxVisitCount and ClientsWithMaxVisits from one snapshot.
	TopClients() (maxVisits int, clients []string)

	UniqueClientsInStatusRange(low, high int) []string
	CountUniqueClientsInStatusRange(low, high int) int
	RecordsAboveStatus(threshold int) []models.LogRecord
	UniqueClientsInDateRange(start, end time.Time) []string

	VisitsByCalendarDay() *models.DayVisits
	// BusiestDay also returns the visit count of the day it picks, read from the same snapshot.
	BusiestDay() (day models.DayKey, visits int, found bool)
	ClientsWithMostVisitsOnDay(day models.DayKey) []string
	UniqueClientsOnCalendarDay(day models.DayKey) []string
	VisitsByDate() map[models.DateKey][]string

	VisitsPerAgentFamily() map[string]int
	Summary() Summary
}

type queryService struct {
	store stores.RecordStore
}

func NewQueryService(store stores.RecordStore) QueryService {
	return &queryService{store: store}
}

func (s *queryService) records(query string) []models.LogRecord {
	metricQueriesTotal.WithLabelValues(query).Inc()
	return s.store.Snapshot().Records
}

func (s *queryService) State() State {
	if s.store.Snapshot().Loaded() {
		return StateLoaded
	}
	return StateEmpty
}

func (s *queryService) EarliestTimestamp() *time.Time {
	return s.store.Snapshot().Earliest
}

func (s *queryService) LatestTimestamp() *time.Time {
	return s.store.Snapshot().Latest
}

func (s *queryService) CountUniqueClients() int {
	return CountUniqueClients(s.records("count_unique_clients"))
}

func (s *queryService) VisitsPerClient() map[string]int {
	return VisitsPerClient(s.records("visits_per_client"))
}

func (s *queryService) MaxVisitCount() int {
	return MaxVisitCount(VisitsPerClient(s.records("max_visit_count")))
}

func (s *queryService) ClientsWithMaxVisits() []string {
	return ClientsWithMaxVisits(VisitsPerClient(s.records("clients_with_max_visits")))
}

func (s *queryService) TopClients() (int, []string) {
	counts := VisitsPerClient(s.records("top_clients"))
	return MaxVisitCount(counts), ClientsWithMaxVisits(counts)
}

func (s *queryService) UniqueClientsInStatusRange(low, high int) []string {
	return UniqueClientsInStatusRange(s.records("unique_clients_in_status_range"), low, high)
}

func (s *queryService) CountUniqueClientsInStatusRange(low, high int) int {
	return CountUniqueClientsInStatusRange(s.records("count_unique_clients_in_status_range"), low, high)
}

func (s *queryService) RecordsAboveStatus(threshold int) []models.LogRecord {
	return RecordsAboveStatus(s.records("records_above_status"), threshold)
}

func (s *queryService) UniqueClientsInDateRange(start, end time.Time) []string {
	return UniqueClientsInDateRange(s.records("unique_clients_in_date_range"), start, end)
}

func (s *queryService) VisitsByCalendarDay() *models.DayVisits {
	return VisitsByCalendarDay(s.records("visits_by_calendar_day"))
}

func (s *queryService) BusiestDay() (models.DayKey, int, bool) {
	days := VisitsByCalendarDay(s.records("busiest_day"))
	day, found := BusiestDay(days)
	if !found {
		return "", 0, false
	}
	return day, days.VisitCount(day), true
}

func (s *queryService) ClientsWithMostVisitsOnDay(day models.DayKey) []string {
	return ClientsWithMostVisitsOnDay(VisitsByCalendarDay(s.records("clients_with_most_visits_on_day")), day)
}

func (s *queryService) UniqueClientsOnCalendarDay(day models.DayKey) []string {
	return UniqueClientsOnCalendarDay(s.records("unique_clients_on_calendar_day"), day)
}

func (s *queryService) VisitsByDate() map[models.DateKey][]string {
	return VisitsByDate(s.records("visits_by_date"))
}

func (s *queryService) VisitsPerAgentFamily() map[string]int {
	return VisitsPerAgentFamily(s.records("visits_per_agent_family"))
}

func (s *queryService) Summary() Summary {
	metricQueriesTotal.WithLabelValues("summary").Inc()
	snapshot := s.store.Snapshot()
	return Summarize(snapshot.Records, snapshot.Earliest, snapshot.Latest)
}
