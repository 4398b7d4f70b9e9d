package http

import (
	"net/http"
	"time"

	"weblog-stats/internal/aggregators"
	"weblog-stats/internal/ingestors"
	"weblog-stats/internal/shared/loggers"
	"weblog-stats/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// RouterOptions carries the transport settings taken from configuration.
type RouterOptions struct {
	// Location interprets the calendar dates of date range queries.
	Location *time.Location
	// MaxInlineLogBytes bounds a log posted as a text/plain body. Zero disables the limit.
	MaxInlineLogBytes int64
}

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, queryService aggregators.QueryService, opts RouterOptions, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	loadHandler := NewLoadHandler(ingestionService, opts.MaxInlineLogBytes)
	queries := newQueryHandlers(queryService, opts.Location)

	// Routes
	router.Post("/loads", errorHandlingAdapter(loadHandler))
	router.Get("/bounds", errorHandlingAdapter(appHandlerFunc(queries.bounds)))
	router.Get("/summary", errorHandlingAdapter(appHandlerFunc(queries.summary)))
	router.Get("/agents", errorHandlingAdapter(appHandlerFunc(queries.agents)))
	router.Get("/dates", errorHandlingAdapter(appHandlerFunc(queries.dates)))
	router.Get("/records/above-status", errorHandlingAdapter(appHandlerFunc(queries.recordsAboveStatus)))

	router.Route("/clients", func(r chi.Router) {
		r.Get("/count", errorHandlingAdapter(appHandlerFunc(queries.countClients)))
		r.Get("/visits", errorHandlingAdapter(appHandlerFunc(queries.clientVisits)))
		r.Get("/top", errorHandlingAdapter(appHandlerFunc(queries.topClients)))
		r.Get("/by-status", errorHandlingAdapter(appHandlerFunc(queries.clientsByStatus)))
		r.Get("/by-date", errorHandlingAdapter(appHandlerFunc(queries.clientsByDate)))
	})

	router.Route("/days", func(r chi.Router) {
		r.Get("/", errorHandlingAdapter(appHandlerFunc(queries.days)))
		r.Get("/busiest", errorHandlingAdapter(appHandlerFunc(queries.busiestDay)))
		r.Get("/clients", errorHandlingAdapter(appHandlerFunc(queries.dayClients)))
		r.Get("/top-clients", errorHandlingAdapter(appHandlerFunc(queries.dayTopClients)))
	})

	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
