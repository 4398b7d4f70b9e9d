package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"weblog-stats/internal/shared/loggers"
	"weblog-stats/internal/shared/svcerrors"
	"weblog-stats/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwRequestID(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwPrometheus)
	router.Use(mwRequestCompletionLog)
	router.Use(mwRecoverer)
}

// mwAppResponseWriter initializes the appResponseWriter once and passes it through the middleware chain.
func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appWriter := newAppResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(appWriter, r)
	})
}

// mwPrometheus records request counts and latency labelled by route pattern, not raw path,
// to keep label cardinality bounded.
func mwPrometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		status, errorCode := responseOutcome(w)
		labels := []string{r.Method, routePattern(r), strconv.Itoa(status), errorCode}

		metricHTTPRequestsTotal.WithLabelValues(labels...).Inc()
		metricHTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	})
}

// mwRequestID extracts or generates a request ID, echoes it in the response and attaches a
// request-scoped logger to context.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := requestID(r)
			if requestID == "" {
				requestID = ulid.NewULID()
				setRequestID(r, requestID)
			}
			w.Header().Set(headerRequestID, requestID)

			ctxWithReqLogger := httpLogger.With().
				Str(loggers.FieldRequestID, requestID).
				Logger().WithContext(r.Context())

			next.ServeHTTP(w, r.WithContext(ctxWithReqLogger))
		})
	}
}

// mwRequestCompletionLog logs one line per request; server errors at error level.
func mwRequestCompletionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			status, errorCode := responseOutcome(w)

			level := zerolog.InfoLevel
			if status >= http.StatusInternalServerError {
				level = zerolog.ErrorLevel
			}
			event := loggers.Ctx(r.Context()).WithLevel(level).
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Str(loggers.FieldHttpRoute, routePattern(r)).
				Int(loggers.FieldHttpStatus, status).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds())
			if errorCode != "" {
				event = event.Str(loggers.FieldErrorCode, errorCode)
				if appWriter, ok := w.(*appResponseWriter); ok {
					event = event.Str(loggers.FieldErrorCategory, appWriter.ErrorCategory())
				}
			}
			event.Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

// mwRecoverer turns a handler panic into a SYS_9000 error response.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				loggers.Ctx(r.Context()).Error().
					Bytes(loggers.FieldErrorStack, debug.Stack()).
					Msgf("http panic recovered: %v", p)

				panicErr, ok := p.(error)
				if !ok {
					panicErr = fmt.Errorf("%v", p)
				}
				writeErrorResponse(w, r, svcerrors.NewInternalErrorPanic(panicErr))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// responseOutcome reports the written status, 200 when nothing was written, and the error code.
func responseOutcome(w http.ResponseWriter) (int, string) {
	appWriter, ok := w.(*appResponseWriter)
	if !ok {
		return http.StatusOK, ""
	}
	status := appWriter.Status()
	if status == 0 {
		status = http.StatusOK
	}
	return status, appWriter.ErrorCode()
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
