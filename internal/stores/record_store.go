package stores

import (
	"slices"
	"sync"
	"time"

	"weblog-stats/internal/models"
)

// Snapshot is an immutable view of the store at one point in time. Records is shared by every
// reader of the same load and must not be modified. A later load swaps in a new slice, so callers
// may keep it across loads.
type Snapshot struct {
	LoadID   string
	Source   string
	LoadedAt time.Time
	Records  []models.LogRecord
	// Earliest and Latest are nil iff no record carries a valid timestamp.
	Earliest *time.Time
	Latest   *time.Time
}

// Loaded reports whether at least one load has completed.
func (s Snapshot) Loaded() bool {
	return s.LoadID != ""
}

//go:generate mockgen -source=record_store.go -destination=./mocks/record_store_mock.go -package=mocks
type RecordStore interface {
	// Replace discards the current contents and stores records in the given order.
	Replace(loadID, source string, records []models.LogRecord, loadedAt time.Time) Snapshot
	Snapshot() Snapshot
}

type recordStore struct {
	mu      sync.RWMutex
	current Snapshot
}

func NewRecordStore() RecordStore {
	return &recordStore{current: Snapshot{Records: []models.LogRecord{}}}
}

func (s *recordStore) Replace(loadID, source string, records []models.LogRecord, loadedAt time.Time) Snapshot {
	next := Snapshot{
		LoadID:   loadID,
		Source:   source,
		LoadedAt: loadedAt,
		Records:  slices.Clone(records),
	}
	if next.Records == nil {
		next.Records = []models.LogRecord{}
	}
	next.Earliest, next.Latest = TimestampBounds(next.Records)

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	return shareSnapshot(next)
}

func (s *recordStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return shareSnapshot(s.current)
}

// TimestampBounds returns the minimum and maximum valid timestamp in records, or nil for both
// when none of them has one.
func TimestampBounds(records []models.LogRecord) (earliest, latest *time.Time) {
	for i := range records {
		if !records[i].HasTimestamp() {
			continue
		}
		ts := records[i].Timestamp
		if earliest == nil || ts.Before(*earliest) {
			e := ts
			earliest = &e
		}
		if latest == nil || ts.After(*latest) {
			l := ts
			latest = &l
		}
	}
	return earliest, latest
}

// shareSnapshot hands out the stored records without copying them. The slice is clipped so an
// append by a reader reallocates instead of writing past it.
func shareSnapshot(s Snapshot) Snapshot {
	out := s
	out.Records = slices.Clip(s.Records)
	if s.Earliest != nil {
		e := *s.Earliest
		out.Earliest = &e
	}
	if s.Latest != nil {
		l := *s.Latest
		out.Latest = &l
	}
	return out
}
