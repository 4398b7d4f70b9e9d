package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"weblog-stats/internal/aggregators"
	internalhttp "weblog-stats/internal/http"
	"weblog-stats/internal/ingestors"
	"weblog-stats/internal/parsers"
	"weblog-stats/internal/shared/configs"
	"weblog-stats/internal/shared/loggers"
	"weblog-stats/internal/shared/logsources"
	"weblog-stats/internal/stores"
)

const bytesPerMB = 1 << 20

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	ingestionService ingestors.IngestionService
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.NewWithFormat(config.Log.Level, config.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "weblog-stats").
		Logger()

	location, err := time.LoadLocation(config.Query.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load query timezone: %w", err)
	}

	maxFileSizeBytes := int64(config.Source.MaxFileSizeMB) * bytesPerMB

	// Initialize log sources
	sources, err := logsources.NewDirSource(config.Source.RootDir, logsources.Options{
		MaxFileSizeBytes: maxFileSizeBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize log sources: %w", err)
	}

	// Initialize ingestion and queries over one shared record store
	recordStore := stores.NewRecordStore()
	lineParser := parsers.NewLineParser(parsers.Options{
		LenientTimestamps: config.Parser.LenientTimestamps,
	})
	ingestionService := ingestors.NewIngestionService(lineParser, recordStore, sources, ingestors.Options{
		MaxLineBytes:        config.Ingestion.MaxLineBytes,
		MaxReportedFailures: config.Ingestion.MaxReportedFailures,
	})
	queryService := aggregators.NewQueryService(recordStore)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, queryService, internalhttp.RouterOptions{
		Location:          location,
		MaxInlineLogBytes: maxFileSizeBytes,
	}, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:           config,
		appLogger:        appLogger,
		server:           server,
		ingestionService: ingestionService,
	}, nil
}

// Start loads the configured initial file, if any, then starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting weblog-stats service on port %d (log_level=%s, source_root_dir=%s, timezone=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Source.RootDir,
			app.config.Query.Timezone)

	app.loadInitialFile()

	return app.server.ListenAndServe()
}

// loadInitialFile never fails startup: the service comes up empty and a file can be loaded later.
func (app *App) loadInitialFile() {
	key := app.config.Source.InitialFile
	if key == "" {
		return
	}

	loadLogger := app.appLogger.With().
		Str(loggers.FieldComponent, "startup").
		Str(loggers.FieldSource, key).
		Logger()
	ctx := loadLogger.WithContext(context.Background())

	result, err := app.ingestionService.LoadSource(ctx, key)
	if err != nil {
		loadLogger.Error().Err(err).Msg("initial load failed, starting with an empty record store")
		return
	}
	loadLogger.Info().
		Int(loggers.FieldRecordsCount, result.RecordsLoaded).
		Int("linesSkipped", result.LinesSkipped).
		Msg("initial load completed")
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
