package parsers

import (
	"testing"
	"time"

	"weblog-stats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineParser_Parse_CommonFormat(t *testing.T) {
	t.Parallel()

	parser := NewLineParser(Options{})

	record, failure := parser.Parse(`10.0.0.1 - frank [10/Sep/2015:13:55:36 -0700] "GET /apache_pb.gif HTTP/1.0" 200 2326`)
	require.Nil(t, failure)

	expectedTime := time.Date(2015, 9, 10, 13, 55, 36, 0, time.FixedZone("", -7*3600))
	assert.Equal(t, "10.0.0.1", record.ClientAddress)
	assert.Equal(t, "", record.Identity)
	assert.Equal(t, "frank", record.AuthUser)
	assert.True(t, expectedTime.Equal(record.Timestamp))
	_, offset := record.Timestamp.Zone()
	assert.Equal(t, -7*3600, offset, "recorded offset is kept")
	assert.Equal(t, "GET", record.Method)
	assert.Equal(t, "/apache_pb.gif", record.Path)
	assert.Equal(t, "HTTP/1.0", record.Protocol)
	assert.Equal(t, 200, record.StatusCode)
	assert.Equal(t, int64(2326), record.Bytes)
	assert.Empty(t, record.UserAgent)
	assert.Empty(t, record.AgentFamily)
}

func TestLineParser_Parse_CombinedFormat(t *testing.T) {
	t.Parallel()

	parser := NewLineParser(Options{})

	record, failure := parser.Parse(`84.189.158.117 - - [21/Sep/2015:07:59:14 -0400] "GET /favicon.ico HTTP/1.0" 404 0 "http://example.com/" "curl/7.68.0"`)
	require.Nil(t, failure)

	assert.Equal(t, "84.189.158.117", record.ClientAddress)
	assert.Equal(t, 404, record.StatusCode)
	assert.Equal(t, int64(0), record.Bytes)
	assert.Equal(t, "http://example.com/", record.Referer)
	assert.Equal(t, "curl/7.68.0", record.UserAgent)
	assert.Equal(t, "curl", record.AgentFamily)
}

func TestLineParser_Parse_BestEffortFields(t *testing.T) {
	t.Parallel()

	parser := NewLineParser(Options{})

	tests := []struct {
		name             string
		line             string
		expectedMethod   string
		expectedPath     string
		expectedProtocol string
		expectedBytes    int64
	}{
		{
			name:             "dash byte count",
			line:             `10.0.0.1 - - [10/Sep/2015:13:55:36 +0000] "GET / HTTP/1.1" 304 -`,
			expectedMethod:   "GET",
			expectedPath:     "/",
			expectedProtocol: "HTTP/1.1",
			expectedBytes:    0,
		},
		{
			name:             "missing byte count",
			line:             `10.0.0.1 - - [10/Sep/2015:13:55:36 +0000] "GET / HTTP/1.1" 200`,
			expectedMethod:   "GET",
			expectedPath:     "/",
			expectedProtocol: "HTTP/1.1",
			expectedBytes:    0,
		},
		{
			name:           "malformed byte count",
			line:           `10.0.0.1 - - [10/Sep/2015:13:55:36 +0000] "GET /" 200 12kb`,
			expectedMethod: "GET",
			expectedPath:   "/",
			expectedBytes:  0,
		},
		{
			name:          "empty request line",
			line:          `10.0.0.1 - - [10/Sep/2015:13:55:36 +0000] "" 400 15`,
			expectedBytes: 15,
		},
		{
			name:             "path with spaces",
			line:             `10.0.0.1 - - [10/Sep/2015:13:55:36 +0000] "GET /a b HTTP/1.1" 200 1`,
			expectedMethod:   "GET",
			expectedPath:     "/a b",
			expectedProtocol: "HTTP/1.1",
			expectedBytes:    1,
		},
		{
			name:             "trailing carriage return",
			line:             "10.0.0.1 - - [10/Sep/2015:13:55:36 +0000] \"GET / HTTP/1.1\" 200 7\r",
			expectedMethod:   "GET",
			expectedPath:     "/",
			expectedProtocol: "HTTP/1.1",
			expectedBytes:    7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, failure := parser.Parse(tt.line)
			require.Nil(t, failure)
			assert.Equal(t, tt.expectedMethod, record.Method)
			assert.Equal(t, tt.expectedPath, record.Path)
			assert.Equal(t, tt.expectedProtocol, record.Protocol)
			assert.Equal(t, tt.expectedBytes, record.Bytes)
		})
	}
}

func TestLineParser_Parse_Failures(t *testing.T) {
	t.Parallel()

	parser := NewLineParser(Options{})

	tests := []struct {
		name           string
		line           string
		expectedReason string
	}{
		{
			name:           "missing bracketed timestamp",
			line:           `10.0.0.1 - - "GET / HTTP/1.1" 200 12`,
			expectedReason: ReasonMissingTimestamp,
		},
		{
			name:           "leading whitespace leaves no client address",
			line:           ` 10.0.0.1 - - [10/Sep/2015:13:55:36 +0000] "GET / HTTP/1.1" 200 12`,
			expectedReason: ReasonMissingClient,
		},
		{
			name:           "missing request line",
			line:           `10.0.0.1 - - [10/Sep/2015:13:55:36 +0000] 200 12`,
			expectedReason: ReasonMissingRequest,
		},
		{
			name:           "missing status",
			line:           `10.0.0.1 - - [10/Sep/2015:13:55:36 +0000] "GET / HTTP/1.1"`,
			expectedReason: ReasonMissingStatus,
		},
		{
			name:           "non integer status",
			line:           `10.0.0.1 - - [10/Sep/2015:13:55:36 +0000] "GET / HTTP/1.1" OK 12`,
			expectedReason: `invalid status code "OK"`,
		},
		{
			name:           "unknown month",
			line:           `10.0.0.1 - - [10/Sept/2015:13:55:36 +0000] "GET / HTTP/1.1" 200 12`,
			expectedReason: `malformed timestamp "10/Sept/2015:13:55:36 +0000"`,
		},
		{
			name:           "unknown month abbreviation",
			line:           `10.0.0.1 - - [10/Xyz/2015:13:55:36 +0000] "GET / HTTP/1.1" 200 12`,
			expectedReason: `unknown month "Xyz"`,
		},
		{
			name:           "lowercase month",
			line:           `10.0.0.1 - - [10/sep/2015:13:55:36 +0000] "GET / HTTP/1.1" 200 12`,
			expectedReason: `unknown month "sep"`,
		},
		{
			name:           "day out of range for month",
			line:           `10.0.0.1 - - [31/Sep/2015:13:55:36 +0000] "GET / HTTP/1.1" 200 12`,
			expectedReason: "day 31 out of range for September 2015",
		},
		{
			name:           "february 29 outside leap year",
			line:           `10.0.0.1 - - [29/Feb/2015:13:55:36 +0000] "GET / HTTP/1.1" 200 12`,
			expectedReason: "day 29 out of range for February 2015",
		},
		{
			name:           "single digit day",
			line:           `10.0.0.1 - - [1/Sep/2015:13:55:36 +0000] "GET / HTTP/1.1" 200 12`,
			expectedReason: `malformed timestamp "1/Sep/2015:13:55:36 +0000"`,
		},
		{
			name:           "unpadded hour",
			line:           `10.0.0.1 - - [10/Sep/2015:3:55:36 +0000] "GET / HTTP/1.1" 200 12`,
			expectedReason: `malformed timestamp "10/Sep/2015:3:55:36 +0000"`,
		},
		{
			name:           "hour out of range",
			line:           `10.0.0.1 - - [10/Sep/2015:24:00:00 +0000] "GET / HTTP/1.1" 200 12`,
			expectedReason: `time of day out of range in "10/Sep/2015:24:00:00"`,
		},
		{
			name:           "offset without sign",
			line:           `10.0.0.1 - - [10/Sep/2015:13:55:36 0700] "GET / HTTP/1.1" 200 12`,
			expectedReason: `malformed utc offset "0700"`,
		},
		{
			name:           "offset minutes out of range",
			line:           `10.0.0.1 - - [10/Sep/2015:13:55:36 +0075] "GET / HTTP/1.1" 200 12`,
			expectedReason: `malformed utc offset "+0075"`,
		},
		{
			name:           "missing offset",
			line:           `10.0.0.1 - - [10/Sep/2015:13:55:36] "GET / HTTP/1.1" 200 12`,
			expectedReason: `malformed timestamp "10/Sep/2015:13:55:36": missing utc offset`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, failure := parser.Parse(tt.line)
			require.NotNil(t, failure)
			assert.Equal(t, tt.expectedReason, failure.Reason)
			assert.Equal(t, tt.line, failure.Line, "failure keeps the original text")
			assert.Equal(t, models.LogRecord{}, record)
		})
	}
}

func TestLineParser_Parse_LenientTimestamps(t *testing.T) {
	t.Parallel()

	parser := NewLineParser(Options{LenientTimestamps: true})

	record, failure := parser.Parse(`10.0.0.1 - - [31/Sep/2015:13:55:36 +0000] "GET / HTTP/1.1" 404 12`)
	require.Nil(t, failure)
	assert.Equal(t, "10.0.0.1", record.ClientAddress)
	assert.Equal(t, 404, record.StatusCode)
	assert.False(t, record.HasTimestamp())

	// Structural failures are still failures.
	_, failure = parser.Parse(`10.0.0.1 - - "GET / HTTP/1.1" 200 12`)
	require.NotNil(t, failure)
	assert.Equal(t, ReasonMissingTimestamp, failure.Reason)
}

func TestLineParser_Parse_RoundTrip(t *testing.T) {
	t.Parallel()

	parser := NewLineParser(Options{})

	lines := []string{
		`10.0.0.1 - frank [10/Sep/2015:13:55:36 -0700] "GET /apache_pb.gif HTTP/1.0" 200 2326`,
		`10.0.0.2 - - [29/Feb/2016:00:00:00 +0530] "POST /login HTTP/1.1" 302 -`,
		`host.example.com - - [31/Dec/1999:23:59:59 +1400] "GET / HTTP/1.1" 500 17 "-" "curl/7.68.0"`,
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			record, failure := parser.Parse(line)
			require.Nil(t, failure)
			assert.Equal(t, line, record.String())

			again, failure := parser.Parse(record.String())
			require.Nil(t, failure)
			assert.Equal(t, record.ClientAddress, again.ClientAddress)
			assert.True(t, record.Timestamp.Equal(again.Timestamp))
			assert.Equal(t, record.StatusCode, again.StatusCode)
		})
	}
}

func TestParseTimestamp_KeepsOffset(t *testing.T) {
	t.Parallel()

	ts, err := ParseTimestamp("30/Sep/2015:23:30:00 -0700")
	require.NoError(t, err)
	assert.Equal(t, models.DayKey("Sep 30"), models.DayKeyOf(ts))
	assert.Equal(t, time.Date(2015, 10, 1, 6, 30, 0, 0, time.UTC), ts.UTC())
}
