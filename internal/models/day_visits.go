package models

// DayVisits groups client addresses by the day they were recorded on. Keys keep the order in
// which they were first encountered; each address sequence keeps store order and duplicates,
// so its length is the total number of visits on that day.
//
// Example (JSON view):
//
//	{
//	  "Sep 14": ["10.0.0.1", "10.0.0.2"],
//	  "Sep 30": ["10.0.0.3", "10.0.0.4", "10.0.0.3", "10.0.0.5"]
//	}
type DayVisits struct {
	keys  []DayKey
	byDay map[DayKey][]string
}

func NewDayVisits() *DayVisits {
	return &DayVisits{byDay: make(map[DayKey][]string)}
}

// Add appends one visit by clientAddress on day.
func (d *DayVisits) Add(day DayKey, clientAddress string) {
	if _, ok := d.byDay[day]; !ok {
		d.keys = append(d.keys, day)
	}
	d.byDay[day] = append(d.byDay[day], clientAddress)
}

// Keys returns the day keys in first-encountered order.
func (d *DayVisits) Keys() []DayKey {
	return append([]DayKey(nil), d.keys...)
}

// Get returns a copy of the addresses recorded on day, or false if day is absent.
func (d *DayVisits) Get(day DayKey) ([]string, bool) {
	addresses, ok := d.byDay[day]
	if !ok {
		return nil, false
	}
	return append([]string(nil), addresses...), true
}

// VisitCount returns the number of visits recorded on day.
func (d *DayVisits) VisitCount(day DayKey) int {
	return len(d.byDay[day])
}

func (d *DayVisits) Len() int {
	return len(d.keys)
}

// Map returns a copy of the grouping.
func (d *DayVisits) Map() map[DayKey][]string {
	out := make(map[DayKey][]string, len(d.byDay))
	for day, addresses := range d.byDay {
		out[day] = append([]string(nil), addresses...)
	}
	return out
}
