package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/klauspost/compress/gzip"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalLines   = 20000 // Total number of lines written to the generated log
	totalClients = 250   // Number of distinct client addresses
	garbageEvery = 50    // Every Nth line is not an access log line
)

var (
	days       = []string{"14/Sep/2015", "15/Sep/2015", "16/Sep/2015", "17/Sep/2015"}
	dayKeys    = []string{"Sep 14", "Sep 15", "Sep 16", "Sep 17"}
	paths      = []string{"/", "/about", "/careers", "/contact"}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"curl/7.88.1",
	}
)

// ### End - fixed configs

// expectation is computed while generating the log, independently of the service.
type expectation struct {
	recordsLoaded    int
	linesSkipped     int
	visitsPerClient  map[string]int
	visitsPerDay     map[string]int
	serverErrClients map[string]struct{}
}

type summaryResponse struct {
	TotalRecords     int      `json:"totalRecords"`
	UniqueClients    int      `json:"uniqueClients"`
	MaxVisits        int      `json:"maxVisits"`
	TopClients       []string `json:"topClients"`
	ActiveDays       int      `json:"activeDays"`
	BusiestDay       string   `json:"busiestDay"`
	BusiestDayVisits int      `json:"busiestDayVisits"`
}

type loadResponse struct {
	LoadID        string `json:"loadId"`
	RecordsLoaded int    `json:"recordsLoaded"`
	LinesSkipped  int    `json:"linesSkipped"`
}

type statusRangeResponse struct {
	Count   int      `json:"count"`
	Clients []string `json:"clients"`
}

// main runs the e2e scenario: 001_basic_visit_stats
//
// This scenario generates a deterministic access log, loads it through the API from the
// configured source directory, and checks the visit statistics against values computed
// while generating the log.
//
// What it tests:
//   - Loading a plain and a gzip compressed log via POST /loads
//   - Skipping of lines that do not match the access log grammar
//   - Unique client, top client, busiest day and status range queries
//   - Queries issued concurrently with a reload see either the old or the new records, never a mix
//
// Expected results:
//   - Both loads report the same records loaded and lines skipped
//   - /summary matches the generated totals, top clients and busiest day
//   - /clients/by-status?low=500&high=599 lists exactly the clients that received a 5xx
//   - Concurrent readers only ever observe a total record count of 0 or the expected count
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("BASE_URL", "http://localhost:8080") // Base URL of the weblog-stats API server
	sourceDir := getEnv("SOURCE_DIR", "data")              // Source root directory relative to project root, must match source.root_dir
	readers := getEnvInt("READERS", 4)                     // Number of concurrent readers polling /summary during the reload
	wantCleanFiles := getEnvBool("CLEAN_FILES", true)      // If true, remove the generated files after the scenario

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	sourcePath := filepath.Join(projectRoot, sourceDir)

	fmt.Println("Starting e2e scenario: 001_basic_visit_stats")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("SOURCE_PATH: %s\n", sourcePath)
	fmt.Printf("READERS: %d\n", readers)
	fmt.Printf("TOTAL_LINES: %d\n", totalLines)
	fmt.Println()

	fmt.Printf("Generating %d log lines...\n", totalLines)
	logData, expected := generateLog()
	plainKey := "e2e/001_access.log"
	gzipKey := "e2e/001_access.log.gz"
	if err := writeSources(sourcePath, plainKey, gzipKey, logData); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write log sources: %v\n", err)
		os.Exit(1)
	}
	if wantCleanFiles {
		defer os.RemoveAll(filepath.Join(sourcePath, "e2e"))
	}
	fmt.Printf("Generated %d records and %d garbage lines\n", expected.recordsLoaded, expected.linesSkipped)
	fmt.Println()

	var failures []string
	check := func(name string, ok bool, got, want any) {
		if ok {
			fmt.Printf("PASS %s\n", name)
			return
		}
		failures = append(failures, name)
		fmt.Fprintf(os.Stderr, "FAIL %s: got %v, want %v\n", name, got, want)
	}

	// Initial load
	load, err := loadSource(baseURL, plainKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Load failed: %v\n", err)
		os.Exit(1)
	}
	check("load records", load.RecordsLoaded == expected.recordsLoaded, load.RecordsLoaded, expected.recordsLoaded)
	check("load skipped", load.LinesSkipped == expected.linesSkipped, load.LinesSkipped, expected.linesSkipped)

	// Reload the gzip copy while readers poll /summary
	var wg sync.WaitGroup
	var polls, mixedReads int64
	done := make(chan struct{})
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				var summary summaryResponse
				if err := getJSON(baseURL+"/summary", &summary); err != nil {
					continue
				}
				atomic.AddInt64(&polls, 1)
				if summary.TotalRecords != 0 && summary.TotalRecords != expected.recordsLoaded {
					atomic.AddInt64(&mixedReads, 1)
				}
			}
		}()
	}

	reload, err := loadSource(baseURL, gzipKey)
	close(done)
	wg.Wait()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Reload failed: %v\n", err)
		os.Exit(1)
	}
	check("reload records", reload.RecordsLoaded == expected.recordsLoaded, reload.RecordsLoaded, expected.recordsLoaded)
	check("reload has new load id", reload.LoadID != load.LoadID, reload.LoadID, "!= "+load.LoadID)
	check("no mixed reads", atomic.LoadInt64(&mixedReads) == 0, atomic.LoadInt64(&mixedReads), 0)

	// Summary
	var summary summaryResponse
	if err := getJSON(baseURL+"/summary", &summary); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Summary failed: %v\n", err)
		os.Exit(1)
	}
	maxVisits, topClients := expected.topClients()
	busiestDay, busiestVisits := expected.busiestDay()
	check("total records", summary.TotalRecords == expected.recordsLoaded, summary.TotalRecords, expected.recordsLoaded)
	check("unique clients", summary.UniqueClients == len(expected.visitsPerClient), summary.UniqueClients, len(expected.visitsPerClient))
	check("max visits", summary.MaxVisits == maxVisits, summary.MaxVisits, maxVisits)
	check("top clients", slices.Equal(summary.TopClients, topClients), summary.TopClients, topClients)
	check("active days", summary.ActiveDays == len(expected.visitsPerDay), summary.ActiveDays, len(expected.visitsPerDay))
	check("busiest day", summary.BusiestDay == busiestDay, summary.BusiestDay, busiestDay)
	check("busiest day visits", summary.BusiestDayVisits == busiestVisits, summary.BusiestDayVisits, busiestVisits)

	// Status range
	var byStatus statusRangeResponse
	if err := getJSON(baseURL+"/clients/by-status?low=500&high=599", &byStatus); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Status range query failed: %v\n", err)
		os.Exit(1)
	}
	serverErrClients := sortedKeys(expected.serverErrClients)
	check("5xx clients", slices.Equal(byStatus.Clients, serverErrClients), byStatus.Clients, serverErrClients)

	fmt.Println()
	fmt.Println("=== Statistics ===")
	fmt.Printf("Summary polls during reload: %d\n", atomic.LoadInt64(&polls))
	fmt.Printf("Failed checks: %d\n", len(failures))
	if len(failures) > 0 {
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// findProjectRoot walks up from the working directory until it finds go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from the project root")
		}
		dir = parent
	}
}

func generateLog() ([]byte, *expectation) {
	expected := &expectation{
		visitsPerClient:  make(map[string]int),
		visitsPerDay:     make(map[string]int),
		serverErrClients: make(map[string]struct{}),
	}

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	for i := 0; i < totalLines; i++ {
		if i%garbageEvery == garbageEvery-1 {
			fmt.Fprintf(w, "garbage line %d without timestamp\n", i)
			expected.linesSkipped++
			continue
		}

		// a few clients get extra traffic so the top client set is small
		client := i % totalClients
		if i%13 == 0 {
			client = i % 3
		}
		address := fmt.Sprintf("10.0.%d.%d", client/256, client%256)
		dayIndex := (i / 7) % len(days)

		status := 200
		switch {
		case i%97 == 0:
			status = 503
		case i%11 == 0:
			status = 404
		}

		timestamp := fmt.Sprintf("%s:%02d:%02d:%02d -0400", days[dayIndex], (i/60)%24, i%60, (i*7)%60)
		fmt.Fprintf(w, "%s - - [%s] \"GET %s HTTP/1.1\" %d %d \"-\" \"%s\"\n",
			address, timestamp, paths[i%len(paths)], status, 100+i%900, userAgents[i%len(userAgents)])

		expected.recordsLoaded++
		expected.visitsPerClient[address]++
		expected.visitsPerDay[dayKeys[dayIndex]]++
		if status >= 500 {
			expected.serverErrClients[address] = struct{}{}
		}
	}
	_ = w.Flush()
	return buf.Bytes(), expected
}

func (e *expectation) topClients() (int, []string) {
	maxVisits := 0
	for _, visits := range e.visitsPerClient {
		maxVisits = max(maxVisits, visits)
	}
	top := make(map[string]struct{})
	for address, visits := range e.visitsPerClient {
		if visits == maxVisits {
			top[address] = struct{}{}
		}
	}
	return maxVisits, sortedKeys(top)
}

// busiestDay breaks ties by the smallest day key.
func (e *expectation) busiestDay() (string, int) {
	var day string
	visits := 0
	for _, key := range dayKeys {
		if e.visitsPerDay[key] > visits {
			day, visits = key, e.visitsPerDay[key]
		}
	}
	return day, visits
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func writeSources(root, plainKey, gzipKey string, data []byte) error {
	plainPath := filepath.Join(root, plainKey)
	if err := os.MkdirAll(filepath.Dir(plainPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(plainPath, data, 0o644); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(root, gzipKey))
	if err != nil {
		return err
	}
	defer f.Close()
	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		return err
	}
	return zw.Close()
}

func loadSource(baseURL, key string) (*loadResponse, error) {
	body, err := json.Marshal(map[string]string{"source": key})
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Post(baseURL+"/loads", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(respBody))
	}

	var result loadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

func getJSON(url string, out any) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
