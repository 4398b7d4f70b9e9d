package models

import (
	"fmt"
	"strconv"
	"time"
)

// TimestampLayout is the bracketed access-log timestamp layout.
const TimestampLayout = "02/Jan/2006:15:04:05 -0700"

// LogRecord is one parsed access-log line. Records are values and are never mutated after parsing.
//
// Example line (combined format):
//
//	10.0.0.1 - frank [10/Sep/2015:13:55:36 -0700] "GET /index.html HTTP/1.1" 200 2326 "-" "Mozilla/5.0 ..."
type LogRecord struct {
	ClientAddress string    `json:"clientAddress"`
	Identity      string    `json:"identity,omitempty"`
	AuthUser      string    `json:"authUser,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Method        string    `json:"method,omitempty"`
	Path          string    `json:"path,omitempty"`
	Protocol      string    `json:"protocol,omitempty"`
	StatusCode    int       `json:"statusCode"`
	Bytes         int64     `json:"bytes"`
	Referer       string    `json:"referer,omitempty"`
	UserAgent     string    `json:"userAgent,omitempty"`
	AgentFamily   string    `json:"agentFamily,omitempty"`
}

// HasTimestamp reports whether the record carries a valid timestamp.
// Records without one are excluded from every date and day aggregation.
func (r LogRecord) HasTimestamp() bool {
	return !r.Timestamp.IsZero()
}

// String renders the record back in the common log format.
func (r LogRecord) String() string {
	ts := "-"
	if r.HasTimestamp() {
		ts = r.Timestamp.Format(TimestampLayout)
	}
	bytes := "-"
	if r.Bytes > 0 {
		bytes = strconv.FormatInt(r.Bytes, 10)
	}
	line := fmt.Sprintf("%s %s %s [%s] \"%s %s %s\" %d %s",
		r.ClientAddress, dashIfEmpty(r.Identity), dashIfEmpty(r.AuthUser), ts,
		r.Method, r.Path, r.Protocol, r.StatusCode, bytes)
	if r.Referer != "" || r.UserAgent != "" {
		line += fmt.Sprintf(" %q %q", dashIfEmpty(r.Referer), dashIfEmpty(r.UserAgent))
	}
	return line
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
