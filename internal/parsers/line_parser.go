package parsers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"weblog-stats/internal/models"

	"github.com/mileusna/useragent"
)

// Failure reasons reported in models.ParseFailure.
const (
	ReasonMissingClient    = "missing client address"
	ReasonMissingTimestamp = "missing bracketed timestamp"
	ReasonMissingRequest   = "missing quoted request line"
	ReasonMissingStatus    = "missing status code"
	ReasonGrammarMismatch  = "line does not match access log grammar"
)

var (
	// <client> <ident> <auth> [<timestamp>] "<request>" <status> [<bytes>] ["<referer>" "<user-agent>"]
	linePattern = regexp.MustCompile(`^(\S+) (\S+) (\S+) \[([^\]]*)\] "((?:[^"\\]|\\.)*)" (\S+)(?: (\S+))?(?: "((?:[^"\\]|\\.)*)" "((?:[^"\\]|\\.)*)")?`)

	dateTimePattern = regexp.MustCompile(`^(\d{2})/([A-Za-z]{3})/(\d{4}):(\d{2}):(\d{2}):(\d{2})$`)
	offsetPattern   = regexp.MustCompile(`^([+-])(\d{2})(\d{2})$`)
)

// Options controls how strictly lines are parsed.
type Options struct {
	// LenientTimestamps keeps a line whose bracketed timestamp is present but invalid,
	// producing a record without timestamp instead of a failure.
	LenientTimestamps bool
}

//go:generate mockgen -source=line_parser.go -destination=./mocks/line_parser_mock.go -package=mocks
type LineParser interface {
	// Parse converts one raw access-log line into a record. It never panics; a rejected line
	// is reported as a ParseFailure without line number, which the caller fills in.
	Parse(raw string) (models.LogRecord, *models.ParseFailure)
}

type lineParser struct {
	opts Options
}

func NewLineParser(opts Options) LineParser {
	return &lineParser{opts: opts}
}

func (p *lineParser) Parse(raw string) (models.LogRecord, *models.ParseFailure) {
	line := strings.TrimRight(raw, " \t\r\n")

	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return models.LogRecord{}, failure(raw, diagnose(line))
	}

	record := models.LogRecord{
		ClientAddress: m[1],
		Identity:      dashToEmpty(m[2]),
		AuthUser:      dashToEmpty(m[3]),
	}

	ts, err := ParseTimestamp(m[4])
	if err != nil {
		if !p.opts.LenientTimestamps {
			return models.LogRecord{}, failure(raw, err.Error())
		}
	} else {
		record.Timestamp = ts
	}

	status, err := strconv.Atoi(m[6])
	if err != nil {
		return models.LogRecord{}, failure(raw, fmt.Sprintf("invalid status code %q", m[6]))
	}
	record.StatusCode = status

	record.Method, record.Path, record.Protocol = splitRequest(unescape(m[5]))
	record.Bytes = parseBytes(m[7])
	record.Referer = dashToEmpty(unescape(m[8]))
	record.UserAgent = dashToEmpty(unescape(m[9]))
	record.AgentFamily = normalizeUserAgent(record.UserAgent)

	return record, nil
}

// ParseTimestamp parses the content of the bracketed timestamp field,
// "DD/Mon/YYYY:HH:MM:SS ±hhmm". The result keeps the recorded offset.
func ParseTimestamp(s string) (time.Time, error) {
	dateTime, offset, ok := strings.Cut(s, " ")
	if !ok {
		return time.Time{}, fmt.Errorf("malformed timestamp %q: missing utc offset", s)
	}

	om := offsetPattern.FindStringSubmatch(offset)
	if om == nil {
		return time.Time{}, fmt.Errorf("malformed utc offset %q", offset)
	}
	offsetHours, _ := strconv.Atoi(om[2])
	offsetMinutes, _ := strconv.Atoi(om[3])
	if offsetHours > 23 || offsetMinutes > 59 {
		return time.Time{}, fmt.Errorf("malformed utc offset %q", offset)
	}
	offsetSeconds := offsetHours*3600 + offsetMinutes*60
	if om[1] == "-" {
		offsetSeconds = -offsetSeconds
	}

	dm := dateTimePattern.FindStringSubmatch(dateTime)
	if dm == nil {
		return time.Time{}, fmt.Errorf("malformed timestamp %q", s)
	}
	month, ok := models.MonthFromAbbrev(dm[2])
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month %q", dm[2])
	}
	day, _ := strconv.Atoi(dm[1])
	year, _ := strconv.Atoi(dm[3])
	hour, _ := strconv.Atoi(dm[4])
	minute, _ := strconv.Atoi(dm[5])
	second, _ := strconv.Atoi(dm[6])

	if day < 1 || day > models.DaysIn(month, year) {
		return time.Time{}, fmt.Errorf("day %d out of range for %s %d", day, month, year)
	}
	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, fmt.Errorf("time of day out of range in %q", dateTime)
	}

	return time.Date(year, month, day, hour, minute, second, 0, time.FixedZone("", offsetSeconds)), nil
}

// diagnose names the first structural element missing from a line the grammar rejected.
func diagnose(line string) string {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return ReasonMissingClient
	}
	open := strings.Index(line, "[")
	if open < 0 || strings.Index(line[open:], "]") < 0 {
		return ReasonMissingTimestamp
	}
	rest := line[open+strings.Index(line[open:], "]"):]
	if strings.Count(rest, `"`) < 2 {
		return ReasonMissingRequest
	}
	if strings.TrimSpace(rest[strings.LastIndex(rest, `"`)+1:]) == "" {
		return ReasonMissingStatus
	}
	return ReasonGrammarMismatch
}

// splitRequest splits a request line into method, path and protocol on a best-effort basis.
func splitRequest(request string) (method, path, protocol string) {
	fields := strings.Fields(request)
	switch len(fields) {
	case 0:
		return "", "", ""
	case 1:
		return fields[0], "", ""
	case 2:
		return fields[0], fields[1], ""
	default:
		return fields[0], strings.Join(fields[1:len(fields)-1], " "), fields[len(fields)-1]
	}
}

// parseBytes treats a dash, a missing field or a malformed count as zero.
func parseBytes(s string) int64 {
	if s == "" || s == "-" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// normalizeUserAgent parses user agent to extract family, or returns original if parsing fails.
func normalizeUserAgent(ua string) string {
	if ua == "" {
		return ""
	}
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}

func unescape(s string) string {
	return strings.ReplaceAll(s, `\"`, `"`)
}

func dashToEmpty(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

func failure(raw, reason string) *models.ParseFailure {
	return &models.ParseFailure{Line: raw, Reason: reason}
}
