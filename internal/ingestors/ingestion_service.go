package ingestors

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"weblog-stats/internal/models"
	"weblog-stats/internal/parsers"
	"weblog-stats/internal/shared/loggers"
	"weblog-stats/internal/shared/logsources"
	"weblog-stats/internal/shared/metrics"
	"weblog-stats/internal/shared/svcerrors"
	"weblog-stats/internal/shared/ulid"
	"weblog-stats/internal/stores"
)

const (
	defaultMaxLineBytes = 1024 * 1024
	initialLineBuffer   = 64 * 1024
)

const (
	outcomeParsed  = "parsed"
	outcomeSkipped = "skipped"
	outcomeBlank   = "blank"
)

// Options bounds a single load.
type Options struct {
	// MaxLineBytes is the longest line accepted; a longer line aborts the load.
	MaxLineBytes int
	// MaxReportedFailures caps the ParseFailure sample kept in the result. Every failure is still counted.
	MaxReportedFailures int
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Load reads r line by line and replaces the record store with the parsed records.
	// Unparsable lines are counted and skipped. The store is left untouched when reading fails.
	Load(ctx context.Context, source string, r io.Reader) (*models.IngestionResult, error)
	// LoadSource opens the log file stored under key and loads it.
	LoadSource(ctx context.Context, key string) (*models.IngestionResult, error)
}

type ingestionService struct {
	parser  parsers.LineParser
	store   stores.RecordStore
	sources logsources.Source
	opts    Options

	// loads are serialized; queries read store snapshots and never wait on it
	mu sync.Mutex
}

func NewIngestionService(parser parsers.LineParser, store stores.RecordStore, sources logsources.Source, opts Options) IngestionService {
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = defaultMaxLineBytes
	}
	if opts.MaxReportedFailures < 0 {
		opts.MaxReportedFailures = 0
	}
	return &ingestionService{
		parser:  parser,
		store:   store,
		sources: sources,
		opts:    opts,
	}
}

func (s *ingestionService) Load(ctx context.Context, source string, r io.Reader) (*models.IngestionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.load(ctx, source, r)
	recordLoadOutcome(err)
	return result, err
}

func (s *ingestionService) LoadSource(ctx context.Context, key string) (*models.IngestionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.loadSource(ctx, key)
	recordLoadOutcome(err)
	return result, err
}

func (s *ingestionService) loadSource(ctx context.Context, key string) (*models.IngestionResult, error) {
	rc, err := s.sources.Open(ctx, key)
	if err != nil {
		switch {
		case errors.Is(err, logsources.ErrInvalidKey):
			return nil, errInvalidSourceKey(key, err)
		case errors.Is(err, logsources.ErrSourceNotFound):
			return nil, errSourceNotFound(key, err)
		case errors.Is(err, logsources.ErrSourceTooLarge):
			return nil, errSourceTooLarge(err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, errInternalLoadCancelled(err)
		default:
			return nil, errInternalSourceReadFailed(err)
		}
	}
	defer rc.Close()

	return s.load(ctx, key, rc)
}

func (s *ingestionService) load(ctx context.Context, source string, r io.Reader) (*models.IngestionResult, error) {
	logger := loggers.Ctx(ctx)
	startedAt := time.Now()
	loadID := ulid.NewULIDAt(startedAt)
	logger.Debug().Str(loggers.FieldLoadID, loadID).Str(loggers.FieldSource, source).Msg("started loading log source")

	result := &models.IngestionResult{
		LoadID:   loadID,
		Source:   source,
		Failures: []models.ParseFailure{},
	}
	records := make([]models.LogRecord, 0, 1024)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(initialLineBuffer, s.opts.MaxLineBytes)), s.opts.MaxLineBytes)

	lineNumber := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, errInternalLoadCancelled(err)
		}
		lineNumber++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			result.BlankLines++
			continue
		}

		record, failure := s.parser.Parse(line)
		if failure != nil {
			failure.LineNumber = lineNumber
			result.LinesSkipped++
			if len(result.Failures) < s.opts.MaxReportedFailures {
				result.Failures = append(result.Failures, *failure)
			}
			logger.Debug().
				Str(loggers.FieldLoadID, loadID).
				Int(loggers.FieldLineNumber, lineNumber).
				Str(loggers.FieldParseReason, failure.Reason).
				Msg("skipped unparsable line")
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		switch {
		case errors.Is(err, bufio.ErrTooLong):
			return nil, errLineTooLong(lineNumber+1, s.opts.MaxLineBytes, err)
		case errors.Is(err, logsources.ErrSourceTooLarge):
			// compressed sources only find out while decoding
			return nil, errSourceTooLarge(err)
		default:
			return nil, errInternalSourceReadFailed(err)
		}
	}

	snapshot := s.store.Replace(loadID, source, records, time.Now().UTC())

	result.RecordsLoaded = len(records)
	result.EarliestTimestamp = snapshot.Earliest
	result.LatestTimestamp = snapshot.Latest
	result.LoadedAt = snapshot.LoadedAt

	metricLinesTotal.WithLabelValues(outcomeParsed).Add(float64(result.RecordsLoaded))
	metricLinesTotal.WithLabelValues(outcomeSkipped).Add(float64(result.LinesSkipped))
	metricLinesTotal.WithLabelValues(outcomeBlank).Add(float64(result.BlankLines))

	logger.Info().
		Str(loggers.FieldLoadID, loadID).
		Str(loggers.FieldSource, source).
		Int(loggers.FieldRecordsCount, result.RecordsLoaded).
		Int64(loggers.FieldDuration, time.Since(startedAt).Milliseconds()).
		Msgf("loaded log source (%d lines skipped, %d blank)", result.LinesSkipped, result.BlankLines)

	return result, nil
}

func recordLoadOutcome(err error) {
	if err == nil {
		metricLoadsTotal.WithLabelValues(metrics.ValueNoError).Inc()
		return
	}
	code := codeInternalSourceReadFailed
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	}
	metricLoadsTotal.WithLabelValues(code).Inc()
}
