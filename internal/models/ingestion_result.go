package models

import (
	"fmt"
	"time"
)

// ParseFailure describes one line the parser rejected. It is a diagnostic, never fatal.
type ParseFailure struct {
	LineNumber int    `json:"lineNumber"`
	Line       string `json:"line"`
	Reason     string `json:"reason"`
}

func (f *ParseFailure) Error() string {
	return fmt.Sprintf("line %d: %s", f.LineNumber, f.Reason)
}

// IngestionResult summarizes one load of a log source.
type IngestionResult struct {
	LoadID            string         `json:"loadId"`
	Source            string         `json:"source"`
	RecordsLoaded     int            `json:"recordsLoaded"`
	LinesSkipped      int            `json:"linesSkipped"`
	BlankLines        int            `json:"blankLines"`
	Failures          []ParseFailure `json:"failures"`
	EarliestTimestamp *time.Time     `json:"earliestTimestamp"`
	LatestTimestamp   *time.Time     `json:"latestTimestamp"`
	LoadedAt          time.Time      `json:"loadedAt"`
}
