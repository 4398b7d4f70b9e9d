package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"weblog-stats/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `10.0.0.1 - - [14/Sep/2015:06:20:12 -0400] "GET / HTTP/1.1" 200 4263
10.0.0.2 - - [14/Sep/2015:06:21:40 -0400] "GET /favicon.ico HTTP/1.1" 404 209
not a log line
10.0.0.1 - - [15/Sep/2015:07:02:05 -0400] "POST /login HTTP/1.1" 302 -
`

func testConfig(rootDir, initialFile string) *configs.Config {
	return &configs.Config{
		Server: configs.ServerConfig{Port: 8080, ReadHeaderTimeout: 5, ReadTimeout: 10, WriteTimeout: 10, IdleTimeout: 60},
		Log:    configs.LogConfig{Level: "error", Format: "json"},
		Source: configs.SourceConfig{RootDir: rootDir, InitialFile: initialFile, MaxFileSizeMB: 1},
		Ingestion: configs.IngestionConfig{
			MaxLineBytes:        64 * 1024,
			MaxReportedFailures: 5,
		},
		Query: configs.QueryConfig{Timezone: "UTC"},
	}
}

func get(t *testing.T, app *App, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	app.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestApp_LoadsInitialFile(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(rootDir, "access.log"), []byte(sampleLog), 0o644))

	app, err := New(testConfig(rootDir, "access.log"))
	require.NoError(t, err)

	app.loadInitialFile()

	rr := get(t, app, "/clients/count")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":2}`, rr.Body.String())

	rr = get(t, app, "/days/busiest")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"found":true,"day":"Sep 14","visits":2}`, rr.Body.String())
}

func TestApp_MissingInitialFileStartsEmpty(t *testing.T) {
	t.Parallel()

	app, err := New(testConfig(t.TempDir(), "missing.log"))
	require.NoError(t, err)

	app.loadInitialFile()

	rr := get(t, app, "/bounds")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"state":"empty","earliestTimestamp":null,"latestTimestamp":null}`, rr.Body.String())
}

func TestApp_LoadsPostedLog(t *testing.T) {
	t.Parallel()

	app, err := New(testConfig(t.TempDir(), ""))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/loads", strings.NewReader(sampleLog))
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()
	app.server.Handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"recordsLoaded":3`)
	assert.Contains(t, rr.Body.String(), `"linesSkipped":1`)

	rr = get(t, app, "/clients/by-status?low=400&high=499")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"low":400,"high":499,"count":1,"clients":["10.0.0.2"]}`, rr.Body.String())
}

func TestApp_DateRangeKeepsLoggedCalendarDate(t *testing.T) {
	t.Parallel()

	const lateEvening = `10.0.0.3 - - [30/Sep/2015:23:59:59 -0400] "GET / HTTP/1.1" 200 4263
10.0.0.4 - - [01/Oct/2015:00:30:00 +0900] "GET / HTTP/1.1" 200 4263
`
	for _, timezone := range []string{"UTC", "America/New_York", "Asia/Tokyo"} {
		timezone := timezone
		t.Run(timezone, func(t *testing.T) {
			t.Parallel()

			rootDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(rootDir, "access.log"), []byte(lateEvening), 0o644))
			cfg := testConfig(rootDir, "access.log")
			cfg.Query.Timezone = timezone

			app, err := New(cfg)
			require.NoError(t, err)
			app.loadInitialFile()

			rr := get(t, app, "/days/clients?day=Sep%2030")
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), `"clients":["10.0.0.3"]`)

			rr = get(t, app, "/clients/by-date?start=2015-09-30&end=2015-09-30")
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), `"clients":["10.0.0.3"]`)

			rr = get(t, app, "/clients/by-date?start=2015-10-01&end=2015-10-01")
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), `"clients":["10.0.0.4"]`)
		})
	}
}

func TestNew_InvalidSettings(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t.TempDir(), "")
	cfg.Query.Timezone = "Mars/Olympus_Mons"
	_, err := New(cfg)
	assert.ErrorContains(t, err, "timezone")

	cfg = testConfig(t.TempDir(), "")
	cfg.Log.Level = "loud"
	_, err = New(cfg)
	assert.ErrorContains(t, err, "logger")

	cfg = testConfig("", "")
	_, err = New(cfg)
	assert.ErrorContains(t, err, "log sources")
}
