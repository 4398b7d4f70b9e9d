package aggregators

import (
	"slices"

	"weblog-stats/internal/models"
)

// unknownAgentFamily groups records logged without a user agent.
const unknownAgentFamily = "-"

// CountUniqueClients returns the number of distinct client addresses.
func CountUniqueClients(records []models.LogRecord) int {
	seen := make(map[string]struct{}, len(records))
	for i := range records {
		seen[records[i].ClientAddress] = struct{}{}
	}
	return len(seen)
}

// VisitsPerClient counts every record per client address.
func VisitsPerClient(records []models.LogRecord) map[string]int {
	counts := make(map[string]int)
	for i := range records {
		counts[records[i].ClientAddress]++
	}
	return counts
}

// MaxVisitCount returns the largest count, or 0 for an empty mapping.
func MaxVisitCount(counts map[string]int) int {
	maxCount := 0
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}
	return maxCount
}

// ClientsWithMaxVisits returns every address tied for the largest count, sorted.
func ClientsWithMaxVisits(counts map[string]int) []string {
	clients := []string{}
	if len(counts) == 0 {
		return clients
	}
	maxCount := MaxVisitCount(counts)
	for client, count := range counts {
		if count == maxCount {
			clients = append(clients, client)
		}
	}
	slices.Sort(clients)
	return clients
}

// UniqueClientsInStatusRange returns the distinct addresses with low <= status <= high.
func UniqueClientsInStatusRange(records []models.LogRecord, low, high int) []string {
	if low > high {
		return []string{}
	}
	set := make(map[string]struct{})
	for i := range records {
		if records[i].StatusCode >= low && records[i].StatusCode <= high {
			set[records[i].ClientAddress] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// CountUniqueClientsInStatusRange is the size of UniqueClientsInStatusRange.
func CountUniqueClientsInStatusRange(records []models.LogRecord, low, high int) int {
	return len(UniqueClientsInStatusRange(records, low, high))
}

// RecordsAboveStatus returns the records with a status strictly greater than threshold, in store order.
func RecordsAboveStatus(records []models.LogRecord, threshold int) []models.LogRecord {
	matched := []models.LogRecord{}
	for i := range records {
		if records[i].StatusCode > threshold {
			matched = append(matched, records[i])
		}
	}
	return matched
}

// VisitsPerAgentFamily counts records per normalized user agent family.
func VisitsPerAgentFamily(records []models.LogRecord) map[string]int {
	counts := make(map[string]int)
	for i := range records {
		family := records[i].AgentFamily
		if family == "" {
			family = unknownAgentFamily
		}
		counts[family]++
	}
	return counts
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
